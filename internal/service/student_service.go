package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/ingest"
	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
)

// StudentService handles a drive's invitation roster.
type StudentService struct {
	driveRepo   *repository.DriveRepository
	studentRepo *repository.StudentRepository
	log         zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(driveRepo *repository.DriveRepository, studentRepo *repository.StudentRepository, log zerolog.Logger) *StudentService {
	return &StudentService{
		driveRepo:   driveRepo,
		studentRepo: studentRepo,
		log:         log.With().Str("component", "student_service").Logger(),
	}
}

// List retrieves a drive's roster for its owning company.
func (s *StudentService) List(ctx context.Context, driveID, companyID int) ([]model.Student, error) {
	if _, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID); err != nil {
		return nil, err
	}
	students, err := s.studentRepo.ListByDrive(ctx, driveID)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// Create adds a single roster entry.
func (s *StudentService) Create(ctx context.Context, driveID, companyID int, req *model.CreateStudentRequest) (*model.Student, error) {
	if err := s.requireUploadable(ctx, driveID, companyID); err != nil {
		return nil, err
	}

	student := &model.Student{
		DriveID:    driveID,
		RollNumber: req.RollNumber,
		Name:       req.Name,
		Email:      req.Email,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// BulkCreate adds a batch of roster entries from a JSON upload. Roll numbers
// already present in the drive are skipped silently.
func (s *StudentService) BulkCreate(ctx context.Context, driveID, companyID int, reqs []model.CreateStudentRequest) (int, error) {
	if err := s.requireUploadable(ctx, driveID, companyID); err != nil {
		return 0, err
	}

	students := make([]model.Student, len(reqs))
	for i := range reqs {
		students[i] = model.Student{
			DriveID:    driveID,
			RollNumber: reqs[i].RollNumber,
			Name:       reqs[i].Name,
			Email:      reqs[i].Email,
		}
	}
	if err := s.studentRepo.CreateBatch(ctx, students); err != nil {
		return 0, fmt.Errorf("batch insert: %w", err)
	}

	s.log.Info().Int("drive_id", driveID).Int("count", len(students)).Msg("Students uploaded")
	return len(students), nil
}

// ImportCSV parses and inserts a roster CSV upload.
func (s *StudentService) ImportCSV(ctx context.Context, driveID, companyID int, file io.Reader) (int, []ingest.RowError, error) {
	if err := s.requireUploadable(ctx, driveID, companyID); err != nil {
		return 0, nil, err
	}

	rows, rowErrs, err := ingest.ParseStudentsCSV(file)
	if err != nil {
		return 0, rowErrs, err
	}

	students := make([]model.Student, len(rows))
	for i, row := range rows {
		students[i] = model.Student{
			DriveID:    driveID,
			RollNumber: row.RollNumber,
			Name:       row.Name,
			Email:      row.Email,
		}
	}
	if err := s.studentRepo.CreateBatch(ctx, students); err != nil {
		return 0, rowErrs, fmt.Errorf("batch insert: %w", err)
	}

	s.log.Info().
		Int("drive_id", driveID).
		Int("inserted", len(students)).
		Int("rejected", len(rowErrs)).
		Msg("Students CSV imported")
	return len(students), rowErrs, nil
}

// Delete removes a roster entry from an uploadable drive.
func (s *StudentService) Delete(ctx context.Context, driveID, companyID, studentID int) error {
	if err := s.requireUploadable(ctx, driveID, companyID); err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, studentID)
}

func (s *StudentService) requireUploadable(ctx context.Context, driveID, companyID int) error {
	drive, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID)
	if err != nil {
		return err
	}
	if drive.Status == model.DriveStatusSubmitted {
		return ErrDriveFrozen
	}
	return nil
}
