package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/ingest"
	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
)

// ErrDriveFrozen is returned when uploads hit a drive that is sitting in
// admin review. Uploads are open in every other state the company can see.
var ErrDriveFrozen = errors.New("drive is locked while under review")

// QuestionService handles a drive's assessment paper.
type QuestionService struct {
	driveRepo    *repository.DriveRepository
	questionRepo *repository.QuestionRepository
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(driveRepo *repository.DriveRepository, questionRepo *repository.QuestionRepository, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		driveRepo:    driveRepo,
		questionRepo: questionRepo,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// List retrieves a drive's questions for its owning company.
func (s *QuestionService) List(ctx context.Context, driveID, companyID int) ([]model.Question, error) {
	if _, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID); err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListByDrive(ctx, driveID)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []model.Question{}
	}
	return questions, nil
}

// Create adds a single question to an uploadable drive.
func (s *QuestionService) Create(ctx context.Context, driveID, companyID int, req *model.CreateQuestionRequest) (*model.Question, error) {
	if err := s.requireUploadable(ctx, driveID, companyID); err != nil {
		return nil, err
	}

	question := questionFromRequest(driveID, req)
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

// BulkCreate adds a batch of questions from a JSON upload.
func (s *QuestionService) BulkCreate(ctx context.Context, driveID, companyID int, reqs []model.CreateQuestionRequest) (int, error) {
	if err := s.requireUploadable(ctx, driveID, companyID); err != nil {
		return 0, err
	}

	questions := make([]model.Question, len(reqs))
	for i := range reqs {
		questions[i] = *questionFromRequest(driveID, &reqs[i])
	}
	if err := s.questionRepo.CreateBatch(ctx, questions); err != nil {
		return 0, fmt.Errorf("batch insert: %w", err)
	}

	s.log.Info().Int("drive_id", driveID).Int("count", len(questions)).Msg("Questions uploaded")
	return len(questions), nil
}

// ImportCSV parses and inserts a questions CSV upload. Row-level failures are
// returned alongside the inserted count so the client can show them.
func (s *QuestionService) ImportCSV(ctx context.Context, driveID, companyID int, file io.Reader) (int, []ingest.RowError, error) {
	if err := s.requireUploadable(ctx, driveID, companyID); err != nil {
		return 0, nil, err
	}

	rows, rowErrs, err := ingest.ParseQuestionsCSV(file)
	if err != nil {
		return 0, rowErrs, err
	}

	questions := make([]model.Question, len(rows))
	for i, row := range rows {
		questions[i] = model.Question{
			DriveID:       driveID,
			QuestionText:  row.QuestionText,
			OptionA:       row.OptionA,
			OptionB:       row.OptionB,
			OptionC:       row.OptionC,
			OptionD:       row.OptionD,
			CorrectAnswer: row.CorrectAnswer,
			Difficulty:    toDifficulty(row.Difficulty),
			Points:        row.Points,
		}
	}
	if err := s.questionRepo.CreateBatch(ctx, questions); err != nil {
		return 0, rowErrs, fmt.Errorf("batch insert: %w", err)
	}

	s.log.Info().
		Int("drive_id", driveID).
		Int("inserted", len(questions)).
		Int("rejected", len(rowErrs)).
		Msg("Questions CSV imported")
	return len(questions), rowErrs, nil
}

// requireUploadable verifies ownership and that the drive accepts uploads.
// Only the submitted state is closed; drafts, rejected drives, and the whole
// approved family stay open so papers can be finalized close to the date.
func (s *QuestionService) requireUploadable(ctx context.Context, driveID, companyID int) error {
	drive, err := s.driveRepo.GetByIDForCompany(ctx, driveID, companyID)
	if err != nil {
		return err
	}
	if drive.Status == model.DriveStatusSubmitted {
		return ErrDriveFrozen
	}
	return nil
}

func questionFromRequest(driveID int, req *model.CreateQuestionRequest) *model.Question {
	points := req.Points
	if points == 0 {
		points = 1
	}
	return &model.Question{
		DriveID:       driveID,
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: req.CorrectAnswer,
		Difficulty:    toDifficulty(req.Difficulty),
		Points:        points,
	}
}

func toDifficulty(s *string) *model.Difficulty {
	if s == nil {
		return nil
	}
	d := model.Difficulty(*s)
	return &d
}
