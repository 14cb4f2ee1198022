package models

import "time"

// Task is a single to-do record. OwnerID references the owning account and
// is immutable once the task is created.
type Task struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Done        bool
	CreatedAt   time.Time
}
