package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/driveport-backend/internal/model"
)

// DriveRepository handles drive data access.
type DriveRepository struct {
	pool *pgxpool.Pool
}

// NewDriveRepository creates a new DriveRepository.
func NewDriveRepository(pool *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{pool: pool}
}

const driveColumns = `id, company_id, title, description, question_type, duration_minutes,
	scheduled_start, status, admin_notes, created_at, updated_at`

func scanDrive(row interface{ Scan(...any) error }) (*model.Drive, error) {
	d := &model.Drive{}
	err := row.Scan(&d.ID, &d.CompanyID, &d.Title, &d.Description, &d.QuestionType,
		&d.DurationMinutes, &d.ScheduledStart, &d.Status, &d.AdminNotes,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// GetByID retrieves a drive by its ID.
func (r *DriveRepository) GetByID(ctx context.Context, id int) (*model.Drive, error) {
	return scanDrive(r.pool.QueryRow(ctx,
		`SELECT `+driveColumns+` FROM drives WHERE id = $1`, id))
}

// GetByIDForCompany retrieves a drive owned by the given company.
func (r *DriveRepository) GetByIDForCompany(ctx context.Context, id, companyID int) (*model.Drive, error) {
	return scanDrive(r.pool.QueryRow(ctx,
		`SELECT `+driveColumns+` FROM drives WHERE id = $1 AND company_id = $2`, id, companyID))
}

// ListByCompany retrieves a company's drives with pagination, newest first.
func (r *DriveRepository) ListByCompany(ctx context.Context, companyID, limit, offset int) ([]model.Drive, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM drives WHERE company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+driveColumns+` FROM drives
		 WHERE company_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	drives, err := collectDrives(rows)
	return drives, total, err
}

// AdminFilter selects which drives an admin review listing shows.
type AdminFilter string

const (
	AdminFilterPending  AdminFilter = "pending"
	AdminFilterApproved AdminFilter = "approved"
	AdminFilterRejected AdminFilter = "rejected"
	AdminFilterAll      AdminFilter = "all"
)

// ListForAdmin retrieves drives for the admin review dashboard.
// pending = submitted and awaiting review; approved covers the whole
// approved family including scheduled states.
func (r *DriveRepository) ListForAdmin(ctx context.Context, filter AdminFilter, limit, offset int) ([]model.Drive, int, error) {
	where := ""
	switch filter {
	case AdminFilterPending:
		where = ` WHERE status = 'submitted'`
	case AdminFilterApproved:
		where = ` WHERE status IN ('approved', 'upcoming', 'live', 'ongoing', 'completed')`
	case AdminFilterRejected:
		where = ` WHERE status = 'rejected'`
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM drives`+where).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+driveColumns+` FROM drives`+where+
			` ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	drives, err := collectDrives(rows)
	return drives, total, err
}

// Create inserts a new drive.
func (r *DriveRepository) Create(ctx context.Context, d *model.Drive) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO drives (company_id, title, description, question_type, duration_minutes, scheduled_start, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		d.CompanyID, d.Title, d.Description, d.QuestionType,
		d.DurationMinutes, d.ScheduledStart, d.Status,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// Update modifies a drive's core fields.
func (r *DriveRepository) Update(ctx context.Context, d *model.Drive) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE drives
		 SET title = $1, description = $2, question_type = $3, duration_minutes = $4,
		     scheduled_start = $5, updated_at = NOW()
		 WHERE id = $6`,
		d.Title, d.Description, d.QuestionType, d.DurationMinutes, d.ScheduledStart, d.ID)
	return err
}

// UpdateStatus moves a drive to a new lifecycle status.
func (r *DriveRepository) UpdateStatus(ctx context.Context, id int, status model.DriveStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE drives SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

// UpdateReview records an admin review decision with notes.
func (r *DriveRepository) UpdateReview(ctx context.Context, id int, status model.DriveStatus, adminNotes string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE drives SET status = $1, admin_notes = NULLIF($2, ''), updated_at = NOW() WHERE id = $3`,
		status, adminNotes, id)
	return err
}

// Delete removes a drive. Targets, questions, students, and email config
// follow via ON DELETE CASCADE.
func (r *DriveRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM drives WHERE id = $1`, id)
	return err
}

// ListScheduled returns approved-family drives that have a scheduled start,
// for the status scheduler.
func (r *DriveRepository) ListScheduled(ctx context.Context) ([]model.Drive, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+driveColumns+` FROM drives
		 WHERE scheduled_start IS NOT NULL
		   AND status IN ('approved', 'upcoming', 'live', 'ongoing')
		 ORDER BY scheduled_start`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDrives(rows)
}

type pgxRows interface {
	Next() bool
	Scan(...any) error
	Err() error
}

func collectDrives(rows pgxRows) ([]model.Drive, error) {
	var drives []model.Drive
	for rows.Next() {
		d, err := scanDrive(rows)
		if err != nil {
			return nil, err
		}
		drives = append(drives, *d)
	}
	return drives, rows.Err()
}
