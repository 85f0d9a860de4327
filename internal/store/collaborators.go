package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/collabhq/roster/internal/models"
	srvErrors "github.com/collabhq/roster/pkg/errors"
)

type CollaboratorStore struct {
	db QueryInterceptor
}

func NewCollaboratorStore(db QueryInterceptor) *CollaboratorStore {
	return &CollaboratorStore{db: db}
}

func (s *CollaboratorStore) Create(ctx context.Context, collab *models.Collaborator) error {
	now := time.Now().UTC()
	query, args, err := sq.Insert("collaborators").
		Columns("id", "first_name", "last_name", "email", "post", "created_at", "updated_at").
		Values(collab.ID, collab.FirstName, collab.LastName, collab.Email, collab.Post, now, now).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return srvErrors.NewDuplicateKeyError("Email")
		}
		return err
	}

	collab.CreatedAt = now
	collab.UpdatedAt = now
	return nil
}

// List returns all collaborators ordered by creation time.
func (s *CollaboratorStore) List(ctx context.Context) ([]models.Collaborator, error) {
	query, args, err := sq.Select("id", "first_name", "last_name", "email", "post", "created_at", "updated_at").
		From("collaborators").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	collabs := []models.Collaborator{}
	for rows.Next() {
		var c models.Collaborator
		err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Post, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		collabs = append(collabs, c)
	}

	return collabs, rows.Err()
}

func (s *CollaboratorStore) Get(ctx context.Context, id string) (*models.Collaborator, error) {
	query, args, err := sq.Select("id", "first_name", "last_name", "email", "post", "created_at", "updated_at").
		From("collaborators").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var c models.Collaborator
	row := s.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Post, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewCollaboratorNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update replaces the writable fields of the collaborator with the given id
// and returns the updated record.
func (s *CollaboratorStore) Update(ctx context.Context, id string, fields models.CollaboratorFields) (*models.Collaborator, error) {
	query, args, err := sq.Update("collaborators").
		Set("first_name", fields.FirstName).
		Set("last_name", fields.LastName).
		Set("email", fields.Email).
		Set("post", fields.Post).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, srvErrors.NewDuplicateKeyError("Email")
		}
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, srvErrors.NewCollaboratorNotFoundError()
	}

	return s.Get(ctx, id)
}

func (s *CollaboratorStore) Delete(ctx context.Context, id string) error {
	query, args, err := sq.Delete("collaborators").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return srvErrors.NewCollaboratorNotFoundError()
	}
	return nil
}
