package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/driveport-backend/internal/model"
)

// DriveTargetRepository handles drive target data access.
type DriveTargetRepository struct {
	pool *pgxpool.Pool
}

// NewDriveTargetRepository creates a new DriveTargetRepository.
func NewDriveTargetRepository(pool *pgxpool.Pool) *DriveTargetRepository {
	return &DriveTargetRepository{pool: pool}
}

// ListByDrive retrieves all targets of a drive with resolved display names.
// Canonical ids resolve through the reference tables; custom names pass
// through as-is.
func (r *DriveTargetRepository) ListByDrive(ctx context.Context, driveID int) ([]model.DriveTarget, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.drive_id, t.college_id, t.custom_college_name,
		        t.student_group_id, t.custom_student_group_name, t.batch_year, t.created_at,
		        COALESCE(c.name, t.custom_college_name, '') AS college_name,
		        COALESCE(g.name, t.custom_student_group_name, '') AS student_group_name
		 FROM drive_targets t
		 LEFT JOIN colleges c ON c.id = t.college_id
		 LEFT JOIN student_groups g ON g.id = t.student_group_id
		 WHERE t.drive_id = $1
		 ORDER BY t.id`, driveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []model.DriveTarget
	for rows.Next() {
		var t model.DriveTarget
		if err := rows.Scan(&t.ID, &t.DriveID, &t.CollegeID, &t.CustomCollegeName,
			&t.StudentGroupID, &t.CustomStudentGroupName, &t.BatchYear, &t.CreatedAt,
			&t.CollegeName, &t.StudentGroupName); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

// ReplaceForDrive deletes a drive's targets and inserts the given set in one
// transaction. Used by drive create and update (targets are replaced
// wholesale, never patched).
func (r *DriveTargetRepository) ReplaceForDrive(ctx context.Context, driveID int, targets []model.DriveTarget) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM drive_targets WHERE drive_id = $1`, driveID); err != nil {
		return err
	}

	for i := range targets {
		t := &targets[i]
		t.DriveID = driveID
		err := tx.QueryRow(ctx,
			`INSERT INTO drive_targets (drive_id, college_id, custom_college_name, student_group_id, custom_student_group_name, batch_year)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, created_at`,
			t.DriveID, t.CollegeID, t.CustomCollegeName,
			t.StudentGroupID, t.CustomStudentGroupName, t.BatchYear,
		).Scan(&t.ID, &t.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// CopyForDrive duplicates all targets of srcDriveID onto dstDriveID.
func (r *DriveTargetRepository) CopyForDrive(ctx context.Context, srcDriveID, dstDriveID int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO drive_targets (drive_id, college_id, custom_college_name, student_group_id, custom_student_group_name, batch_year)
		 SELECT $1, college_id, custom_college_name, student_group_id, custom_student_group_name, batch_year
		 FROM drive_targets WHERE drive_id = $2`, dstDriveID, srcDriveID)
	return err
}

// CountByDrive returns the number of targets attached to a drive.
func (r *DriveTargetRepository) CountByDrive(ctx context.Context, driveID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM drive_targets WHERE drive_id = $1`, driveID).Scan(&n)
	return n, err
}

// PromoteCustomCollege rewrites every target that references the free-text
// college name to point at the canonical record. Returns the number of
// rewritten targets.
func (r *DriveTargetRepository) PromoteCustomCollege(ctx context.Context, name string, collegeID int) (int, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE drive_targets
		 SET college_id = $1, custom_college_name = NULL
		 WHERE custom_college_name = $2`, collegeID, name)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// PromoteCustomStudentGroup rewrites every target that references the
// free-text group name to point at the canonical record.
func (r *DriveTargetRepository) PromoteCustomStudentGroup(ctx context.Context, name string, groupID int) (int, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE drive_targets
		 SET student_group_id = $1, custom_student_group_name = NULL
		 WHERE custom_student_group_name = $2`, groupID, name)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
