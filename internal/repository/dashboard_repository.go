package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/driveport-backend/internal/model"
)

// DashboardRepository aggregates the counts behind the admin dashboard.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSummaryCounts returns the headline totals in a single round trip.
func (r *DashboardRepository) GetSummaryCounts(ctx context.Context) (companies, drives, questions, students int, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM companies),
			(SELECT COUNT(*) FROM drives),
			(SELECT COUNT(*) FROM questions),
			(SELECT COUNT(*) FROM students)`).
		Scan(&companies, &drives, &questions, &students)
	return
}

// GetCompanyStatusCounts returns company counts grouped by review status.
func (r *DashboardRepository) GetCompanyStatusCounts(ctx context.Context) (map[model.CompanyStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM companies GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.CompanyStatus]int)
	for rows.Next() {
		var status model.CompanyStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// GetDriveStatusCounts returns drive counts grouped by lifecycle status.
func (r *DashboardRepository) GetDriveStatusCounts(ctx context.Context) (map[model.DriveStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM drives GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.DriveStatus]int)
	for rows.Next() {
		var status model.DriveStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// DashboardUpcomingDrive is one row of the dashboard's upcoming schedule.
type DashboardUpcomingDrive struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	CompanyName    string     `json:"company_name"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	StudentCount   int        `json:"student_count"`
}

// GetUpcomingDrives returns approved drives scheduled in the future, soonest
// first.
func (r *DashboardRepository) GetUpcomingDrives(ctx context.Context, limit int) ([]DashboardUpcomingDrive, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.title, c.name, d.scheduled_start,
		       (SELECT COUNT(*) FROM students s WHERE s.drive_id = d.id)
		FROM drives d
		JOIN companies c ON c.id = d.company_id
		WHERE d.status IN ('approved', 'upcoming', 'live')
		  AND d.scheduled_start IS NOT NULL
		  AND d.scheduled_start > NOW()
		ORDER BY d.scheduled_start ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drives []DashboardUpcomingDrive
	for rows.Next() {
		var d DashboardUpcomingDrive
		if err := rows.Scan(&d.ID, &d.Title, &d.CompanyName, &d.ScheduledStart, &d.StudentCount); err != nil {
			return nil, err
		}
		drives = append(drives, d)
	}
	return drives, rows.Err()
}

// GetPendingCustomCounts returns how many company-submitted names still wait
// for admin promotion.
func (r *DashboardRepository) GetPendingCustomCounts(ctx context.Context) (colleges, groups int, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM colleges WHERE is_approved = FALSE),
			(SELECT COUNT(*) FROM student_groups WHERE is_approved = FALSE)`).
		Scan(&colleges, &groups)
	return
}
