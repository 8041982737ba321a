package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
	"github.com/campushire/driveport-backend/internal/response"
)

// Drive lifecycle errors.
var (
	ErrDriveNotEditable   = errors.New("drive is not in an editable status")
	ErrDriveNotDraft      = errors.New("drive is not in a submittable status")
	ErrDriveNotReviewable = errors.New("drive has not been submitted for review")
	ErrNoTargets          = errors.New("drive has no targets")
	ErrNoQuestions        = errors.New("drive has no questions")
)

// DriveService handles the recruitment drive lifecycle: creation, targeting,
// submission, admin review, and duplication.
type DriveService struct {
	driveRepo    *repository.DriveRepository
	targetRepo   *repository.DriveTargetRepository
	questionRepo *repository.QuestionRepository
	resolver     *TargetResolver
	log          zerolog.Logger
}

// NewDriveService creates a new DriveService.
func NewDriveService(
	driveRepo *repository.DriveRepository,
	targetRepo *repository.DriveTargetRepository,
	questionRepo *repository.QuestionRepository,
	resolver *TargetResolver,
	log zerolog.Logger,
) *DriveService {
	return &DriveService{
		driveRepo:    driveRepo,
		targetRepo:   targetRepo,
		questionRepo: questionRepo,
		resolver:     resolver,
		log:          log.With().Str("component", "drive_service").Logger(),
	}
}

// GetForCompany retrieves a drive owned by the company, with targets attached.
func (s *DriveService) GetForCompany(ctx context.Context, driveID, companyID int) (*model.Drive, error) {
	drive, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID)
	if err != nil {
		return nil, err
	}
	return s.attachTargets(ctx, drive)
}

// GetForAdmin retrieves any drive by id, with targets attached.
func (s *DriveService) GetForAdmin(ctx context.Context, driveID int) (*model.Drive, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}
	return s.attachTargets(ctx, drive)
}

// ListForCompany retrieves a company's drives with pagination, newest first.
func (s *DriveService) ListForCompany(ctx context.Context, companyID, page, perPage int) ([]model.Drive, *response.Pagination, error) {
	page, perPage = clampPage(page, perPage)

	drives, total, err := s.driveRepo.ListByCompany(ctx, companyID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if err := s.attachTargetsAll(ctx, drives); err != nil {
		return nil, nil, err
	}
	if drives == nil {
		drives = []model.Drive{}
	}

	return drives, newPagination(page, perPage, total), nil
}

// ListForAdmin retrieves drives for the admin review dashboard.
func (s *DriveService) ListForAdmin(ctx context.Context, filter repository.AdminFilter, page, perPage int) ([]model.Drive, *response.Pagination, error) {
	page, perPage = clampPage(page, perPage)

	drives, total, err := s.driveRepo.ListForAdmin(ctx, filter, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if err := s.attachTargetsAll(ctx, drives); err != nil {
		return nil, nil, err
	}
	if drives == nil {
		drives = []model.Drive{}
	}

	return drives, newPagination(page, perPage, total), nil
}

// Create inserts a new draft drive with its resolved targets.
func (s *DriveService) Create(ctx context.Context, companyID int, req *model.CreateDriveRequest) (*model.Drive, error) {
	targets, err := s.resolver.Resolve(ctx, req.Targets)
	if err != nil {
		return nil, err
	}

	drive := &model.Drive{
		CompanyID:       companyID,
		Title:           req.Title,
		QuestionType:    req.QuestionType,
		DurationMinutes: req.DurationMinutes,
		ScheduledStart:  req.ScheduledStart,
		Status:          model.DriveStatusDraft,
	}
	if req.Description != "" {
		drive.Description = &req.Description
	}

	if err := s.driveRepo.Create(ctx, drive); err != nil {
		return nil, fmt.Errorf("create drive: %w", err)
	}
	if err := s.targetRepo.ReplaceForDrive(ctx, drive.ID, targets); err != nil {
		return nil, fmt.Errorf("save targets: %w", err)
	}
	drive.Targets = targets

	s.log.Info().Int("drive_id", drive.ID).Int("company_id", companyID).Msg("Drive created")
	return drive, nil
}

// Update modifies an editable drive. Omitted fields keep their values; a
// non-empty target list replaces the previous targets wholesale.
func (s *DriveService) Update(ctx context.Context, driveID, companyID int, req *model.UpdateDriveRequest) (*model.Drive, error) {
	drive, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID)
	if err != nil {
		return nil, err
	}
	if !drive.Status.Editable() {
		return nil, ErrDriveNotEditable
	}

	if req.Title != "" {
		drive.Title = req.Title
	}
	if req.Description != nil {
		drive.Description = req.Description
	}
	if req.QuestionType != "" {
		drive.QuestionType = req.QuestionType
	}
	if req.DurationMinutes != 0 {
		drive.DurationMinutes = req.DurationMinutes
	}
	if req.ScheduledStart != nil {
		drive.ScheduledStart = req.ScheduledStart
	}

	// Resolve targets before touching the drive row so a bad target list
	// rejects the whole update instead of leaving the field changes applied.
	var targets []model.DriveTarget
	if req.Targets != nil {
		targets, err = s.resolver.Resolve(ctx, req.Targets)
		if err != nil {
			return nil, err
		}
	}

	if err := s.driveRepo.Update(ctx, drive); err != nil {
		return nil, fmt.Errorf("update drive: %w", err)
	}

	if req.Targets != nil {
		if err := s.targetRepo.ReplaceForDrive(ctx, drive.ID, targets); err != nil {
			return nil, fmt.Errorf("save targets: %w", err)
		}
	}

	return s.attachTargets(ctx, drive)
}

// Delete removes an editable drive and everything attached to it.
func (s *DriveService) Delete(ctx context.Context, driveID, companyID int) error {
	drive, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID)
	if err != nil {
		return err
	}
	if !drive.Status.Editable() {
		return ErrDriveNotEditable
	}
	return s.driveRepo.Delete(ctx, driveID)
}

// Submit moves a draft or rejected drive into review. Submission requires at
// least one target and one question so admins never review empty drives.
func (s *DriveService) Submit(ctx context.Context, driveID, companyID int) (*model.Drive, error) {
	drive, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID)
	if err != nil {
		return nil, err
	}
	if !drive.Status.Submittable() {
		return nil, ErrDriveNotDraft
	}

	targetCount, err := s.targetRepo.CountByDrive(ctx, driveID)
	if err != nil {
		return nil, fmt.Errorf("count targets: %w", err)
	}
	if targetCount == 0 {
		return nil, ErrNoTargets
	}

	questionCount, err := s.questionRepo.CountByDrive(ctx, driveID)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	if questionCount == 0 {
		return nil, ErrNoQuestions
	}

	if err := s.driveRepo.UpdateStatus(ctx, driveID, model.DriveStatusSubmitted); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	drive.Status = model.DriveStatusSubmitted

	s.log.Info().Int("drive_id", driveID).Int("company_id", companyID).Msg("Drive submitted for review")
	return s.attachTargets(ctx, drive)
}

// Review records an admin decision on a submitted drive.
func (s *DriveService) Review(ctx context.Context, driveID int, approve bool, adminNotes string) (*model.Drive, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}
	if !drive.Status.Reviewable() {
		return nil, ErrDriveNotReviewable
	}

	status := model.DriveStatusRejected
	if approve {
		status = model.DriveStatusApproved
	}
	if err := s.driveRepo.UpdateReview(ctx, driveID, status, adminNotes); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	drive.Status = status
	if adminNotes != "" {
		drive.AdminNotes = &adminNotes
	} else {
		drive.AdminNotes = nil
	}

	s.log.Info().
		Int("drive_id", driveID).
		Str("status", string(status)).
		Msg("Drive reviewed")
	return s.attachTargets(ctx, drive)
}

// Duplicate clones a drive into a fresh draft, copying its targets and
// questions. The roster and email configuration are not copied.
func (s *DriveService) Duplicate(ctx context.Context, driveID, companyID int) (*model.Drive, error) {
	src, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID)
	if err != nil {
		return nil, err
	}

	clone := &model.Drive{
		CompanyID:       companyID,
		Title:           src.Title + " (Copy)",
		Description:     src.Description,
		QuestionType:    src.QuestionType,
		DurationMinutes: src.DurationMinutes,
		ScheduledStart:  src.ScheduledStart,
		Status:          model.DriveStatusDraft,
	}
	if err := s.driveRepo.Create(ctx, clone); err != nil {
		return nil, fmt.Errorf("create clone: %w", err)
	}
	if err := s.targetRepo.CopyForDrive(ctx, src.ID, clone.ID); err != nil {
		return nil, fmt.Errorf("copy targets: %w", err)
	}
	if err := s.questionRepo.CopyForDrive(ctx, src.ID, clone.ID); err != nil {
		return nil, fmt.Errorf("copy questions: %w", err)
	}

	s.log.Info().Int("source_id", src.ID).Int("drive_id", clone.ID).Msg("Drive duplicated")
	return s.attachTargets(ctx, clone)
}

func (s *DriveService) attachTargets(ctx context.Context, drive *model.Drive) (*model.Drive, error) {
	targets, err := s.targetRepo.ListByDrive(ctx, drive.ID)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	if targets == nil {
		targets = []model.DriveTarget{}
	}
	drive.Targets = targets
	return drive, nil
}

func (s *DriveService) attachTargetsAll(ctx context.Context, drives []model.Drive) error {
	for i := range drives {
		if _, err := s.attachTargets(ctx, &drives[i]); err != nil {
			return err
		}
	}
	return nil
}

func clampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

func newPagination(page, perPage, total int) *response.Pagination {
	return &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}
