package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/collabhq/roster/internal/models"
	"github.com/collabhq/roster/internal/store"
)

type CollaboratorService struct {
	store *store.Store
}

func NewCollaboratorService(st *store.Store) *CollaboratorService {
	return &CollaboratorService{store: st}
}

func (s *CollaboratorService) Create(ctx context.Context, fields models.CollaboratorFields) (*models.Collaborator, error) {
	collab := &models.Collaborator{
		ID:        uuid.New().String(),
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Email:     fields.Email,
		Post:      fields.Post,
	}
	if err := s.store.Collaborators().Create(ctx, collab); err != nil {
		return nil, err
	}
	return collab, nil
}

func (s *CollaboratorService) List(ctx context.Context) ([]models.Collaborator, error) {
	return s.store.Collaborators().List(ctx)
}

func (s *CollaboratorService) Get(ctx context.Context, id string) (*models.Collaborator, error) {
	return s.store.Collaborators().Get(ctx, id)
}

func (s *CollaboratorService) Update(ctx context.Context, id string, fields models.CollaboratorFields) (*models.Collaborator, error) {
	return s.store.Collaborators().Update(ctx, id, fields)
}

func (s *CollaboratorService) Delete(ctx context.Context, id string) error {
	return s.store.Collaborators().Delete(ctx, id)
}
