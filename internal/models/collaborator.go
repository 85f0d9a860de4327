package models

import "time"

// Collaborator is a managed roster record. It carries no relationship to the
// User that created it; users and collaborators are independent uniqueness
// domains for email.
type Collaborator struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Post      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CollaboratorFields is the writable subset of a collaborator, used for
// create and full-replacement update.
type CollaboratorFields struct {
	FirstName string
	LastName  string
	Email     string
	Post      string
}
