package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/driveport-backend/internal/model"
)

var ErrDuplicateName = errors.New("a record with this name already exists")

// CollegeRepository handles canonical college data access.
type CollegeRepository struct {
	pool *pgxpool.Pool
}

// NewCollegeRepository creates a new CollegeRepository.
func NewCollegeRepository(pool *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{pool: pool}
}

// GetByID retrieves a college by its ID.
func (r *CollegeRepository) GetByID(ctx context.Context, id int) (*model.College, error) {
	c := &model.College{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, is_approved, created_at FROM colleges WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.IsApproved, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByName retrieves a college by exact name, or nil if absent.
func (r *CollegeRepository) GetByName(ctx context.Context, name string) (*model.College, error) {
	c := &model.College{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, is_approved, created_at FROM colleges WHERE name = $1`, name,
	).Scan(&c.ID, &c.Name, &c.IsApproved, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves colleges, optionally restricted to an approval state.
func (r *CollegeRepository) List(ctx context.Context, approved *bool) ([]model.College, error) {
	query := `SELECT id, name, is_approved, created_at FROM colleges`
	var args []any
	if approved != nil {
		query += ` WHERE is_approved = $1`
		args = append(args, *approved)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []model.College
	for rows.Next() {
		var c model.College
		if err := rows.Scan(&c.ID, &c.Name, &c.IsApproved, &c.CreatedAt); err != nil {
			return nil, err
		}
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}

// Create inserts a new college.
func (r *CollegeRepository) Create(ctx context.Context, c *model.College) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO colleges (name, is_approved) VALUES ($1, $2)
		 RETURNING id, created_at`,
		c.Name, c.IsApproved,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

// Update modifies a college's name and approval flag.
func (r *CollegeRepository) Update(ctx context.Context, c *model.College) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE colleges SET name = $1, is_approved = $2 WHERE id = $3`,
		c.Name, c.IsApproved, c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateName
		}
	}
	return err
}

// Approve marks a college as canonical.
func (r *CollegeRepository) Approve(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `UPDATE colleges SET is_approved = TRUE WHERE id = $1`, id)
	return err
}

// Delete removes a college by ID.
func (r *CollegeRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	return err
}
