package repository

import (
	"context"
	"errors"

	"github.com/alifrahman-dev/event-registration-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles persistence for user accounts.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and assigns the generated id back onto it.
// The username's uniqueness is left to the database: a violation comes
// back as ErrDuplicateUser, with no pre-flight lookup.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (username, password, name)
		 VALUES ($1, $2, $3)
		 RETURNING user_id`,
		user.Username, user.Password, user.Name,
	).Scan(&user.ID)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return ErrDuplicateUser
		}
		return wrapErr("insert user", err)
	}
	return nil
}

// GetByUsername returns the matching user or ErrNotFound.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx,
		`SELECT user_id, username, password, name FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapErr("get user", err)
	}
	return &u, nil
}
