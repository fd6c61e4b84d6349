package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository loads accounts for credential checks.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (Account, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) GetByUsername(ctx context.Context, username string) (Account, error) {
	query := `
		SELECT id, username, password_hash, permission_type_id, created_at
		FROM accounts
		WHERE username = $1 AND is_deleted = false
	`
	var a Account
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.PermissionTypeID, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrInvalidCredentials
	}
	return a, err
}
