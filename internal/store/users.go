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

type UserStore struct {
	db QueryInterceptor
}

func NewUserStore(db QueryInterceptor) *UserStore {
	return &UserStore{db: db}
}

// Create inserts the user and fills in its timestamps. Email uniqueness is
// enforced by the table constraint, not by a read-then-write check, so
// concurrent creates with the same email yield exactly one success.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	query, args, err := sq.Insert("users").
		Columns("id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at").
		Values(user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, now, now).
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

	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// GetByEmail returns the user with the given email, matched case-sensitively.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query, args, err := sq.Select("id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return s.scanUser(s.db.QueryRowContext(ctx, query, args...))
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	query, args, err := sq.Select("id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return s.scanUser(s.db.QueryRowContext(ctx, query, args...))
}

func (s *UserStore) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewUserNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
