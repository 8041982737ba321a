package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/driveport-backend/internal/model"
)

// AdminRepository handles admin account data access.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// GetByUsername retrieves an admin by username.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`, username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByID retrieves an admin by ID.
func (r *AdminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	a := &model.Admin{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE id = $1`, id,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new admin account.
func (r *AdminRepository) Create(ctx context.Context, a *model.Admin) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO admins (username, password_hash) VALUES ($1, $2)
		 RETURNING id, created_at`,
		a.Username, a.PasswordHash,
	).Scan(&a.ID, &a.CreatedAt)
}
