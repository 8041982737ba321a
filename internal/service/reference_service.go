package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/config"
	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
)

// ErrDuplicateName is returned when a reference name already exists.
var ErrDuplicateName = errors.New("a record with this name already exists")

// ReferenceService manages the canonical college and student group tables,
// including the admin promotion of company-submitted custom names. Approved
// lists are hot (every drive form loads them), so they are cached in Redis
// and invalidated on every mutation.
type ReferenceService struct {
	collegeRepo *repository.CollegeRepository
	groupRepo   *repository.StudentGroupRepository
	targetRepo  *repository.DriveTargetRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(
	collegeRepo *repository.CollegeRepository,
	groupRepo *repository.StudentGroupRepository,
	targetRepo *repository.DriveTargetRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *ReferenceService {
	return &ReferenceService{
		collegeRepo: collegeRepo,
		groupRepo:   groupRepo,
		targetRepo:  targetRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "reference_service").Logger(),
	}
}

// ─── Colleges ──────────────────────────────────────────────────────────────

// ListColleges retrieves colleges. approved=nil returns everything (admin
// view); approved=true serves from the Redis cache when possible.
func (s *ReferenceService) ListColleges(ctx context.Context, approved *bool) ([]model.College, error) {
	if approved != nil && *approved {
		var cached []model.College
		if ok := s.cacheGet(ctx, config.CacheKey.ApprovedCollegesKey(), &cached); ok {
			return cached, nil
		}
	}

	colleges, err := s.collegeRepo.List(ctx, approved)
	if err != nil {
		return nil, err
	}
	if colleges == nil {
		colleges = []model.College{}
	}

	if approved != nil && *approved {
		s.cacheSet(ctx, config.CacheKey.ApprovedCollegesKey(), colleges)
	}
	return colleges, nil
}

// CreateCollege inserts an admin-created college, approved immediately.
func (s *ReferenceService) CreateCollege(ctx context.Context, name string) (*model.College, error) {
	college := &model.College{Name: strings.TrimSpace(name), IsApproved: true}
	if err := s.collegeRepo.Create(ctx, college); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	s.invalidateColleges(ctx)
	return college, nil
}

// UpdateCollege renames a college or toggles its approval flag.
func (s *ReferenceService) UpdateCollege(ctx context.Context, id int, req *model.UpdateReferenceRequest) (*model.College, error) {
	college, err := s.collegeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		college.Name = strings.TrimSpace(req.Name)
	}
	if req.IsApproved != nil {
		college.IsApproved = *req.IsApproved
	}
	if err := s.collegeRepo.Update(ctx, college); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	s.invalidateColleges(ctx)
	return college, nil
}

// DeleteCollege removes a college. The database rejects the delete while
// drive targets still reference it.
func (s *ReferenceService) DeleteCollege(ctx context.Context, id int) error {
	if err := s.collegeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateColleges(ctx)
	return nil
}

// ApproveCustomCollege promotes a company-submitted custom college name to a
// canonical record and rewrites every drive target still carrying the custom
// text to reference it. The reference row was auto-created unapproved when a
// company first used the name; if it is missing (for example created through
// an older code path) it is created here.
func (s *ReferenceService) ApproveCustomCollege(ctx context.Context, name string) (*model.ApproveCustomResponse, error) {
	name = strings.TrimSpace(name)

	college, err := s.collegeRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup college: %w", err)
	}
	if college == nil {
		college = &model.College{Name: name, IsApproved: true}
		if err := s.collegeRepo.Create(ctx, college); err != nil {
			return nil, fmt.Errorf("create college: %w", err)
		}
	} else if !college.IsApproved {
		if err := s.collegeRepo.Approve(ctx, college.ID); err != nil {
			return nil, fmt.Errorf("approve college: %w", err)
		}
		college.IsApproved = true
	}

	updated, err := s.targetRepo.PromoteCustomCollege(ctx, name, college.ID)
	if err != nil {
		return nil, fmt.Errorf("promote targets: %w", err)
	}

	s.invalidateColleges(ctx)
	s.log.Info().
		Str("name", college.Name).
		Int("updated_targets", updated).
		Msg("Custom college promoted")

	return &model.ApproveCustomResponse{ID: college.ID, Name: college.Name, UpdatedTargets: updated}, nil
}

// ─── Student groups ────────────────────────────────────────────────────────

// ListStudentGroups retrieves student groups, mirroring ListColleges.
func (s *ReferenceService) ListStudentGroups(ctx context.Context, approved *bool) ([]model.StudentGroup, error) {
	if approved != nil && *approved {
		var cached []model.StudentGroup
		if ok := s.cacheGet(ctx, config.CacheKey.ApprovedStudentGroupsKey(), &cached); ok {
			return cached, nil
		}
	}

	groups, err := s.groupRepo.List(ctx, approved)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []model.StudentGroup{}
	}

	if approved != nil && *approved {
		s.cacheSet(ctx, config.CacheKey.ApprovedStudentGroupsKey(), groups)
	}
	return groups, nil
}

// CreateStudentGroup inserts an admin-created group, approved immediately.
func (s *ReferenceService) CreateStudentGroup(ctx context.Context, name string) (*model.StudentGroup, error) {
	group := &model.StudentGroup{Name: strings.TrimSpace(name), IsApproved: true}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	s.invalidateStudentGroups(ctx)
	return group, nil
}

// UpdateStudentGroup renames a group or toggles its approval flag.
func (s *ReferenceService) UpdateStudentGroup(ctx context.Context, id int, req *model.UpdateReferenceRequest) (*model.StudentGroup, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		group.Name = strings.TrimSpace(req.Name)
	}
	if req.IsApproved != nil {
		group.IsApproved = *req.IsApproved
	}
	if err := s.groupRepo.Update(ctx, group); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	s.invalidateStudentGroups(ctx)
	return group, nil
}

// DeleteStudentGroup removes a student group.
func (s *ReferenceService) DeleteStudentGroup(ctx context.Context, id int) error {
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateStudentGroups(ctx)
	return nil
}

// ApproveCustomStudentGroup promotes a custom group name, mirroring
// ApproveCustomCollege.
func (s *ReferenceService) ApproveCustomStudentGroup(ctx context.Context, name string) (*model.ApproveCustomResponse, error) {
	name = strings.TrimSpace(name)

	group, err := s.groupRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup student group: %w", err)
	}
	if group == nil {
		group = &model.StudentGroup{Name: name, IsApproved: true}
		if err := s.groupRepo.Create(ctx, group); err != nil {
			return nil, fmt.Errorf("create student group: %w", err)
		}
	} else if !group.IsApproved {
		if err := s.groupRepo.Approve(ctx, group.ID); err != nil {
			return nil, fmt.Errorf("approve student group: %w", err)
		}
		group.IsApproved = true
	}

	updated, err := s.targetRepo.PromoteCustomStudentGroup(ctx, name, group.ID)
	if err != nil {
		return nil, fmt.Errorf("promote targets: %w", err)
	}

	s.invalidateStudentGroups(ctx)
	s.log.Info().
		Str("name", group.Name).
		Int("updated_targets", updated).
		Msg("Custom student group promoted")

	return &model.ApproveCustomResponse{ID: group.ID, Name: group.Name, UpdatedTargets: updated}, nil
}

// ─── Cache helpers ─────────────────────────────────────────────────────────

func (s *ReferenceService) cacheGet(ctx context.Context, key string, dest any) bool {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache entry corrupt, ignoring")
		return false
	}
	return true
}

func (s *ReferenceService) cacheSet(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

func (s *ReferenceService) invalidateColleges(ctx context.Context) {
	if err := s.rdb.Del(ctx, config.CacheKey.ApprovedCollegesKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
}

func (s *ReferenceService) invalidateStudentGroups(ctx context.Context) {
	if err := s.rdb.Del(ctx, config.CacheKey.ApprovedStudentGroupsKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
}
