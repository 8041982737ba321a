package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/driveport-backend/internal/model"
)

// StudentGroupRepository handles canonical student group data access.
type StudentGroupRepository struct {
	pool *pgxpool.Pool
}

// NewStudentGroupRepository creates a new StudentGroupRepository.
func NewStudentGroupRepository(pool *pgxpool.Pool) *StudentGroupRepository {
	return &StudentGroupRepository{pool: pool}
}

// GetByID retrieves a student group by its ID.
func (r *StudentGroupRepository) GetByID(ctx context.Context, id int) (*model.StudentGroup, error) {
	g := &model.StudentGroup{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, is_approved, created_at FROM student_groups WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name, &g.IsApproved, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// GetByName retrieves a student group by exact name, or nil if absent.
func (r *StudentGroupRepository) GetByName(ctx context.Context, name string) (*model.StudentGroup, error) {
	g := &model.StudentGroup{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, is_approved, created_at FROM student_groups WHERE name = $1`, name,
	).Scan(&g.ID, &g.Name, &g.IsApproved, &g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// List retrieves student groups, optionally restricted to an approval state.
func (r *StudentGroupRepository) List(ctx context.Context, approved *bool) ([]model.StudentGroup, error) {
	query := `SELECT id, name, is_approved, created_at FROM student_groups`
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

	var groups []model.StudentGroup
	for rows.Next() {
		var g model.StudentGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.IsApproved, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Create inserts a new student group.
func (r *StudentGroupRepository) Create(ctx context.Context, g *model.StudentGroup) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO student_groups (name, is_approved) VALUES ($1, $2)
		 RETURNING id, created_at`,
		g.Name, g.IsApproved,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

// Update modifies a student group's name and approval flag.
func (r *StudentGroupRepository) Update(ctx context.Context, g *model.StudentGroup) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE student_groups SET name = $1, is_approved = $2 WHERE id = $3`,
		g.Name, g.IsApproved, g.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateName
		}
	}
	return err
}

// Approve marks a student group as canonical.
func (r *StudentGroupRepository) Approve(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `UPDATE student_groups SET is_approved = TRUE WHERE id = $1`, id)
	return err
}

// Delete removes a student group by ID.
func (r *StudentGroupRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM student_groups WHERE id = $1`, id)
	return err
}
