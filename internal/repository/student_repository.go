package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/driveport-backend/internal/model"
)

var ErrDuplicateRollNumber = errors.New("student with this roll number already exists in the drive")

// StudentRepository handles per-drive roster data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// ListByDrive retrieves a drive's roster ordered by roll number.
func (r *StudentRepository) ListByDrive(ctx context.Context, driveID int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, drive_id, roll_number, name, email, password_hash, created_at
		 FROM students WHERE drive_id = $1 ORDER BY roll_number`, driveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.DriveID, &s.RollNumber, &s.Name, &s.Email,
			&s.PasswordHash, &s.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// CountByDrive returns the roster size of a drive.
func (r *StudentRepository) CountByDrive(ctx context.Context, driveID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE drive_id = $1`, driveID).Scan(&n)
	return n, err
}

// Create inserts a single roster entry.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (drive_id, roll_number, name, email)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		s.DriveID, s.RollNumber, s.Name, s.Email,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateRollNumber
		}
		return err
	}
	return nil
}

// CreateBatch inserts roster entries in one batched round trip. Duplicate
// roll numbers within the drive are skipped rather than failing the batch.
func (r *StudentRepository) CreateBatch(ctx context.Context, students []model.Student) error {
	batch := &pgx.Batch{}
	for i := range students {
		s := &students[i]
		batch.Queue(
			`INSERT INTO students (drive_id, roll_number, name, email)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (drive_id, roll_number) DO NOTHING`,
			s.DriveID, s.RollNumber, s.Name, s.Email)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

// UpdatePassword stores the bcrypt hash of a student's generated assessment password.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	return err
}

// Delete removes a roster entry.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}
