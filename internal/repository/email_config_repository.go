package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/driveport-backend/internal/model"
)

// EmailConfigRepository handles per-drive email template storage.
type EmailConfigRepository struct {
	pool *pgxpool.Pool
}

// NewEmailConfigRepository creates a new EmailConfigRepository.
func NewEmailConfigRepository(pool *pgxpool.Pool) *EmailConfigRepository {
	return &EmailConfigRepository{pool: pool}
}

// GetByDrive retrieves a drive's email configuration, or nil if none was saved.
func (r *EmailConfigRepository) GetByDrive(ctx context.Context, driveID int) (*model.EmailConfig, error) {
	cfg := &model.EmailConfig{}
	err := r.pool.QueryRow(ctx,
		`SELECT drive_id, subject_template, body_template, use_custom_template, updated_at
		 FROM email_configs WHERE drive_id = $1`, driveID,
	).Scan(&cfg.DriveID, &cfg.SubjectTemplate, &cfg.BodyTemplate, &cfg.UseCustomTemplate, &cfg.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Upsert saves a drive's email configuration, replacing any previous one.
func (r *EmailConfigRepository) Upsert(ctx context.Context, cfg *model.EmailConfig) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO email_configs (drive_id, subject_template, body_template, use_custom_template, updated_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (drive_id) DO UPDATE
		 SET subject_template = EXCLUDED.subject_template,
		     body_template = EXCLUDED.body_template,
		     use_custom_template = EXCLUDED.use_custom_template,
		     updated_at = NOW()
		 RETURNING updated_at`,
		cfg.DriveID, cfg.SubjectTemplate, cfg.BodyTemplate, cfg.UseCustomTemplate,
	).Scan(&cfg.UpdatedAt)
}
