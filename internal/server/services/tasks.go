package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

// TaskService provides task CRUD scoped to the requesting identity. Every
// single-task operation runs through authorize before touching the row.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService bound to the repository manager.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{
		db:          db,
		repomanager: m,
	}
}

// authorize enforces ownership. Existence is checked first by the caller
// (a nil task means the lookup already failed), so a probing caller learns
// only whether a task exists, never whose it is.
func authorize(task *models.Task, identity *models.Identity) error {
	if task.OwnerID != identity.UserID {
		return common.ErrorForbidden
	}
	return nil
}

// Create inserts a task owned by the requesting identity.
func (s *TaskService) Create(ctx context.Context, identity *models.Identity, name, description string) (*models.Task, error) {
	if name == "" {
		return nil, common.ErrorValidation
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		OwnerID:     identity.UserID,
		Name:        name,
		Description: description,
	}

	repo := s.repomanager.Tasks(s.db)
	created, err := repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return created, nil
}

// List returns every task owned by the identity. Filtering happens in the
// repository query, never in the handler.
func (s *TaskService) List(ctx context.Context, identity *models.Identity) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	result, err := repo.ListByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return result, nil
}

// Get returns a single task: ErrorNotFound if no such row, ErrorForbidden if
// it belongs to someone else. An id that is not a UUID can match no row, so
// it resolves to not found without touching the database.
func (s *TaskService) Get(ctx context.Context, identity *models.Identity, id string) (*models.Task, error) {
	if uuid.Validate(id) != nil {
		return nil, common.ErrorNotFound
	}

	repo := s.repomanager.Tasks(s.db)
	task, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading task: %w", err)
	}
	if err := authorize(task, identity); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateDone sets the completion flag on a task the identity owns. The owner
// column is never written after creation, so there is no check-to-write race.
func (s *TaskService) UpdateDone(ctx context.Context, identity *models.Identity, id string, done bool) (*models.Task, error) {
	if _, err := s.Get(ctx, identity, id); err != nil {
		return nil, err
	}

	repo := s.repomanager.Tasks(s.db)
	updated, err := repo.UpdateDone(ctx, id, done)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating task: %w", err)
	}
	return updated, nil
}

// Delete removes a task the identity owns.
func (s *TaskService) Delete(ctx context.Context, identity *models.Identity, id string) error {
	if _, err := s.Get(ctx, identity, id); err != nil {
		return err
	}

	repo := s.repomanager.Tasks(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting task: %w", err)
	}
	return nil
}
