package service

import (
	"context"

	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
)

// DashboardData consolidates all metrics for the admin dashboard.
type DashboardData struct {
	TotalCompanies       int                                 `json:"total_companies"`
	TotalDrives          int                                 `json:"total_drives"`
	TotalQuestions       int                                 `json:"total_questions"`
	TotalStudents        int                                 `json:"total_students"`
	CompanyStatusCounts  map[model.CompanyStatus]int         `json:"company_status_counts"`
	DriveStatusCounts    map[model.DriveStatus]int           `json:"drive_status_counts"`
	PendingColleges      int                                 `json:"pending_colleges"`
	PendingStudentGroups int                                 `json:"pending_student_groups"`
	UpcomingDrives       []repository.DashboardUpcomingDrive `json:"upcoming_drives"`
}

// DashboardService handles admin dashboard business logic.
type DashboardService struct {
	repo *repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetDashboardData fetches every dashboard metric.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	companies, drives, questions, students, err := s.repo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}

	companyCounts, err := s.repo.GetCompanyStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	driveCounts, err := s.repo.GetDriveStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	pendingColleges, pendingGroups, err := s.repo.GetPendingCustomCounts(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.repo.GetUpcomingDrives(ctx, 5)
	if err != nil {
		return nil, err
	}
	if upcoming == nil {
		upcoming = []repository.DashboardUpcomingDrive{}
	}

	return &DashboardData{
		TotalCompanies:       companies,
		TotalDrives:          drives,
		TotalQuestions:       questions,
		TotalStudents:        students,
		CompanyStatusCounts:  companyCounts,
		DriveStatusCounts:    driveCounts,
		PendingColleges:      pendingColleges,
		PendingStudentGroups: pendingGroups,
		UpcomingDrives:       upcoming,
	}, nil
}
