package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
)

// AdminService handles administrator authentication.
type AdminService struct {
	adminRepo *repository.AdminRepository
	auth      *AuthService
	log       zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository, auth *AuthService, log zerolog.Logger) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		auth:      auth,
		log:       log.With().Str("component", "admin_service").Logger(),
	}
}

// Authenticate verifies admin credentials and issues a JWT.
func (s *AdminService) Authenticate(ctx context.Context, username, password string) (*model.AdminLoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateAdminToken(admin.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info().Str("username", username).Msg("Admin logged in")
	return &model.AdminLoginResponse{Token: token, Admin: *admin}, nil
}

// GetByID retrieves an admin account.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}
