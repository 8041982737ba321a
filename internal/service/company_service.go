package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
	"github.com/campushire/driveport-backend/internal/response"
)

// Company account errors.
var (
	ErrCompanyNotApproved      = errors.New("company account is not approved")
	ErrDuplicateEmail          = errors.New("a company with this email already exists")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	ErrCompanyNotDeletable     = errors.New("only rejected companies can be deleted")
)

// CompanyService handles company registration, authentication, and the admin
// review state machine.
type CompanyService struct {
	companyRepo *repository.CompanyRepository
	auth        *AuthService
	log         zerolog.Logger
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo *repository.CompanyRepository, auth *AuthService, log zerolog.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		auth:        auth,
		log:         log.With().Str("component", "company_service").Logger(),
	}
}

// Register creates a new company account in pending status. The account can
// log in immediately but cannot run drives until an admin approves it.
func (s *CompanyService) Register(ctx context.Context, req *model.CompanyRegisterRequest) (*model.Company, error) {
	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	company := &model.Company{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Status:       model.CompanyStatusPending,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.log.Info().Int("company_id", company.ID).Str("email", company.Email).Msg("Company registered")
	return company, nil
}

// Authenticate verifies company credentials and issues a JWT.
func (s *CompanyService) Authenticate(ctx context.Context, email, password string) (*model.CompanyLoginResponse, error) {
	company, err := s.companyRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.auth.CheckPassword(company.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateCompanyToken(company.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &model.CompanyLoginResponse{Token: token, Company: *company}, nil
}

// GetByID retrieves a company account.
func (s *CompanyService) GetByID(ctx context.Context, id int) (*model.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

// RequireApproved loads a company and fails unless an admin has approved it.
// Drive mutations call this before doing anything.
func (s *CompanyService) RequireApproved(ctx context.Context, id int) (*model.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company.Status != model.CompanyStatusApproved {
		return nil, ErrCompanyNotApproved
	}
	return company, nil
}

// UpdateLogo stores the uploaded logo URL and returns the fresh profile.
func (s *CompanyService) UpdateLogo(ctx context.Context, id int, logoURL string) (*model.Company, error) {
	if err := s.companyRepo.UpdateLogo(ctx, id, logoURL); err != nil {
		return nil, err
	}
	return s.companyRepo.GetByID(ctx, id)
}

// List retrieves companies for the admin dashboard, optionally filtered by
// review status.
func (s *CompanyService) List(ctx context.Context, status *model.CompanyStatus, page, perPage int) ([]model.Company, *response.Pagination, error) {
	page, perPage = clampPage(page, perPage)

	companies, total, err := s.companyRepo.ListByStatus(ctx, status, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if companies == nil {
		companies = []model.Company{}
	}

	return companies, newPagination(page, perPage, total), nil
}

// Review moves a company through the admin state machine. Illegal transitions
// (for example suspending a pending company) are rejected.
func (s *CompanyService) Review(ctx context.Context, id int, req *model.CompanyReviewRequest, reviewedBy string) (*model.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !company.Status.CanTransitionTo(req.Status) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.companyRepo.UpdateReview(ctx, id, req.Status, req.AdminNotes, reviewedBy); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info().
		Int("company_id", id).
		Str("from", string(company.Status)).
		Str("to", string(req.Status)).
		Str("reviewed_by", reviewedBy).
		Msg("Company reviewed")

	return s.companyRepo.GetByID(ctx, id)
}

// Delete permanently removes a rejected company and all of its drives.
func (s *CompanyService) Delete(ctx context.Context, id int) error {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !company.Status.Deletable() {
		return ErrCompanyNotDeletable
	}
	return s.companyRepo.Delete(ctx, id)
}
