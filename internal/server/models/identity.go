package models

// Identity is the validated identity carried by a bearer token. It is
// produced once at the request boundary and passed explicitly to services.
type Identity struct {
	UserID string
	Name   string
	Email  string
}
