package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/config"
	"github.com/campushire/driveport-backend/internal/mailer"
	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
)

// Email pipeline errors.
var (
	ErrDriveNotApproved  = errors.New("drive is not approved")
	ErrNoStudentsToEmail = errors.New("drive has no rostered students")
)

// EmailService manages per-drive invitation templates and feeds the send
// queue. Actual delivery happens in the email worker.
type EmailService struct {
	cfg         *config.Config
	driveRepo   *repository.DriveRepository
	companyRepo *repository.CompanyRepository
	studentRepo *repository.StudentRepository
	emailRepo   *repository.EmailConfigRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewEmailService creates a new EmailService.
func NewEmailService(
	cfg *config.Config,
	driveRepo *repository.DriveRepository,
	companyRepo *repository.CompanyRepository,
	studentRepo *repository.StudentRepository,
	emailRepo *repository.EmailConfigRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *EmailService {
	return &EmailService{
		cfg:         cfg,
		driveRepo:   driveRepo,
		companyRepo: companyRepo,
		studentRepo: studentRepo,
		emailRepo:   emailRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "email_service").Logger(),
	}
}

// GetConfig retrieves a drive's email configuration, falling back to the
// default templates when none was saved.
func (s *EmailService) GetConfig(ctx context.Context, driveID, companyID int) (*model.EmailConfig, error) {
	if _, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID); err != nil {
		return nil, err
	}
	cfg, err := s.emailRepo.GetByDrive(ctx, driveID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return model.DefaultEmailConfig(driveID), nil
	}
	return cfg, nil
}

// UpdateConfig saves a drive's email templates.
func (s *EmailService) UpdateConfig(ctx context.Context, driveID, companyID int, req *model.UpdateEmailConfigRequest) (*model.EmailConfig, error) {
	if _, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID); err != nil {
		return nil, err
	}

	cfg := &model.EmailConfig{
		DriveID:           driveID,
		SubjectTemplate:   req.SubjectTemplate,
		BodyTemplate:      req.BodyTemplate,
		UseCustomTemplate: *req.UseCustomTemplate,
	}
	if err := s.emailRepo.Upsert(ctx, cfg); err != nil {
		return nil, fmt.Errorf("save email config: %w", err)
	}
	return cfg, nil
}

// Preview renders the given templates against the drive's real metadata and a
// sample student, so companies see exactly what will go out.
func (s *EmailService) Preview(ctx context.Context, driveID, companyID int, req *model.PreviewEmailRequest) (*model.PreviewEmailResponse, error) {
	drive, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID)
	if err != nil {
		return nil, err
	}
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	vars := s.renderVars(drive, company)
	vars["student_name"] = "Priya Sharma"
	vars["roll_number"] = "21CS001"
	vars["password"] = "s4mple-p4ss"

	return &model.PreviewEmailResponse{
		Subject: mailer.Render(req.SubjectTemplate, vars),
		Body:    mailer.Render(req.BodyTemplate, vars),
	}, nil
}

// Send enqueues one invitation job per rostered student. The gate: the drive
// must be approved and the roster non-empty. Counters are reset so progress
// reporting starts clean for this batch.
func (s *EmailService) Send(ctx context.Context, driveID, companyID int, useCustomTemplate *bool) (*model.EmailStatus, error) {
	drive, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID)
	if err != nil {
		return nil, err
	}
	if !drive.Status.Approved() {
		return nil, ErrDriveNotApproved
	}

	students, err := s.studentRepo.ListByDrive(ctx, driveID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	if len(students) == 0 {
		return nil, ErrNoStudentsToEmail
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	subject, body, err := s.resolveTemplates(ctx, driveID, useCustomTemplate)
	if err != nil {
		return nil, err
	}
	baseVars := s.renderVars(drive, company)

	pipe := s.rdb.Pipeline()
	pipe.Set(ctx, config.CacheKey.EmailsTotalKey(driveID), len(students), 0)
	pipe.Set(ctx, config.CacheKey.EmailsSentKey(driveID), 0, 0)
	pipe.Set(ctx, config.CacheKey.EmailsFailedKey(driveID), 0, 0)

	for i := range students {
		student := &students[i]
		vars := make(map[string]string, len(baseVars)+2)
		for k, v := range baseVars {
			vars[k] = v
		}
		vars["roll_number"] = student.RollNumber
		vars["student_name"] = student.RollNumber
		if student.Name != nil {
			vars["student_name"] = *student.Name
		}

		job := model.EmailJob{
			DriveID:         driveID,
			StudentID:       student.ID,
			ToName:          vars["student_name"],
			ToAddress:       student.Email,
			SubjectTemplate: subject,
			BodyTemplate:    body,
			Vars:            vars,
		}
		raw, err := json.Marshal(job)
		if err != nil {
			return nil, fmt.Errorf("marshal job: %w", err)
		}
		pipe.RPush(ctx, config.WorkerKey.SendEmailsQueue, raw)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("enqueue jobs: %w", err)
	}

	s.log.Info().Int("drive_id", driveID).Int("queued", len(students)).Msg("Invitation emails queued")
	return &model.EmailStatus{DriveID: driveID, Total: len(students)}, nil
}

// Status reads the per-drive send counters.
func (s *EmailService) Status(ctx context.Context, driveID, companyID int) (*model.EmailStatus, error) {
	if _, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID); err != nil {
		return nil, err
	}

	values, err := s.rdb.MGet(ctx,
		config.CacheKey.EmailsTotalKey(driveID),
		config.CacheKey.EmailsSentKey(driveID),
		config.CacheKey.EmailsFailedKey(driveID),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("read counters: %w", err)
	}

	status := &model.EmailStatus{DriveID: driveID}
	status.Total = counterValue(values[0])
	status.Sent = counterValue(values[1])
	status.Failed = counterValue(values[2])
	return status, nil
}

// resolveTemplates picks the templates for a send. An explicit
// use_custom_template override in the request wins; otherwise the stored
// config decides; drives without a config use the defaults.
func (s *EmailService) resolveTemplates(ctx context.Context, driveID int, override *bool) (subject, body string, err error) {
	cfg, err := s.emailRepo.GetByDrive(ctx, driveID)
	if err != nil {
		return "", "", err
	}
	if cfg == nil {
		cfg = model.DefaultEmailConfig(driveID)
	}

	useCustom := cfg.UseCustomTemplate
	if override != nil {
		useCustom = *override
	}
	if !useCustom {
		return model.DefaultSubjectTemplate, model.DefaultBodyTemplate, nil
	}
	return cfg.SubjectTemplate, cfg.BodyTemplate, nil
}

func (s *EmailService) renderVars(drive *model.Drive, company *model.Company) map[string]string {
	startTime := "TBA"
	if drive.ScheduledStart != nil {
		startTime = drive.ScheduledStart.Format("02 Jan 2006 15:04 MST")
	}
	return map[string]string{
		"drive_title":  drive.Title,
		"company_name": company.Name,
		"login_url":    s.cfg.StudentLoginURL,
		"start_time":   startTime,
		"duration":     strconv.Itoa(drive.DurationMinutes),
	}
}

func counterValue(v any) int {
	str, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0
	}
	return n
}
