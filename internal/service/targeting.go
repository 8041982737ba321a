package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
)

// Targeting errors surfaced to the API layer.
var (
	ErrNoCollegeSelected      = errors.New("target needs a college id or a custom college name")
	ErrNoStudentGroupSelected = errors.New("target needs a student group id or a custom group name")
	ErrEmptyCustomName        = errors.New("custom name is blank")
	ErrDuplicateTarget        = errors.New("duplicate target in request")
	ErrCollegeNotFound        = errors.New("college not found")
	ErrStudentGroupNotFound   = errors.New("student group not found")
)

// TargetResolver turns raw target inputs into persisted-shape DriveTarget
// rows. Canonical ids are verified against the reference tables; custom names
// are trimmed and registered as unapproved reference records so admins can
// later promote them.
type TargetResolver struct {
	collegeRepo *repository.CollegeRepository
	groupRepo   *repository.StudentGroupRepository
	log         zerolog.Logger
}

// NewTargetResolver creates a new TargetResolver.
func NewTargetResolver(
	collegeRepo *repository.CollegeRepository,
	groupRepo *repository.StudentGroupRepository,
	log zerolog.Logger,
) *TargetResolver {
	return &TargetResolver{
		collegeRepo: collegeRepo,
		groupRepo:   groupRepo,
		log:         log.With().Str("component", "target_resolver").Logger(),
	}
}

// Resolve validates and resolves a batch of target inputs. The returned
// targets carry resolved display names and are deduplicated: two inputs that
// resolve to the same (college, group, batch year) triple are an error.
// Names compare case-sensitively, so "IIT Delhi" and "iit delhi" are
// distinct targets.
func (tr *TargetResolver) Resolve(ctx context.Context, inputs []model.TargetInput) ([]model.DriveTarget, error) {
	targets := make([]model.DriveTarget, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))

	for i := range inputs {
		target, err := tr.resolveOne(ctx, &inputs[i])
		if err != nil {
			return nil, err
		}

		batchYear := ""
		if target.BatchYear != nil {
			batchYear = *target.BatchYear
		}
		key := target.CollegeName + "\x00" + target.StudentGroupName + "\x00" + batchYear
		if _, dup := seen[key]; dup {
			return nil, ErrDuplicateTarget
		}
		seen[key] = struct{}{}

		targets = append(targets, *target)
	}

	return targets, nil
}

func (tr *TargetResolver) resolveOne(ctx context.Context, in *model.TargetInput) (*model.DriveTarget, error) {
	t := &model.DriveTarget{BatchYear: normalizeBatchYear(in.BatchYear)}

	switch {
	case in.CollegeID != nil:
		college, err := tr.collegeRepo.GetByID(ctx, *in.CollegeID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollegeNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("get college: %w", err)
		}
		t.CollegeID = &college.ID
		t.CollegeName = college.Name

	case in.CustomCollegeName != nil:
		name := strings.TrimSpace(*in.CustomCollegeName)
		if name == "" {
			return nil, ErrEmptyCustomName
		}
		id, approved, err := tr.registerCollege(ctx, name)
		if err != nil {
			return nil, err
		}
		if approved {
			// The custom name already matches a canonical record,
			// so link it directly instead of waiting for promotion.
			t.CollegeID = &id
		} else {
			t.CustomCollegeName = &name
		}
		t.CollegeName = name

	default:
		return nil, ErrNoCollegeSelected
	}

	switch {
	case in.StudentGroupID != nil:
		group, err := tr.groupRepo.GetByID(ctx, *in.StudentGroupID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentGroupNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("get student group: %w", err)
		}
		t.StudentGroupID = &group.ID
		t.StudentGroupName = group.Name

	case in.CustomStudentGroupName != nil:
		name := strings.TrimSpace(*in.CustomStudentGroupName)
		if name == "" {
			return nil, ErrEmptyCustomName
		}
		id, approved, err := tr.registerStudentGroup(ctx, name)
		if err != nil {
			return nil, err
		}
		if approved {
			t.StudentGroupID = &id
		} else {
			t.CustomStudentGroupName = &name
		}
		t.StudentGroupName = name

	default:
		return nil, ErrNoStudentGroupSelected
	}

	return t, nil
}

// registerCollege ensures a reference row exists for a custom college name.
// New rows start unapproved and show up in the admin's pending list.
func (tr *TargetResolver) registerCollege(ctx context.Context, name string) (id int, approved bool, err error) {
	existing, err := tr.collegeRepo.GetByName(ctx, name)
	if err != nil {
		return 0, false, fmt.Errorf("lookup college %q: %w", name, err)
	}
	if existing != nil {
		return existing.ID, existing.IsApproved, nil
	}

	college := &model.College{Name: name, IsApproved: false}
	if err := tr.collegeRepo.Create(ctx, college); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			// Raced with a concurrent request registering the same name.
			existing, lookupErr := tr.collegeRepo.GetByName(ctx, name)
			if lookupErr == nil && existing != nil {
				return existing.ID, existing.IsApproved, nil
			}
		}
		return 0, false, fmt.Errorf("register college %q: %w", name, err)
	}

	tr.log.Info().Str("name", name).Msg("Registered custom college pending approval")
	return college.ID, false, nil
}

func (tr *TargetResolver) registerStudentGroup(ctx context.Context, name string) (id int, approved bool, err error) {
	existing, err := tr.groupRepo.GetByName(ctx, name)
	if err != nil {
		return 0, false, fmt.Errorf("lookup student group %q: %w", name, err)
	}
	if existing != nil {
		return existing.ID, existing.IsApproved, nil
	}

	group := &model.StudentGroup{Name: name, IsApproved: false}
	if err := tr.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			existing, lookupErr := tr.groupRepo.GetByName(ctx, name)
			if lookupErr == nil && existing != nil {
				return existing.ID, existing.IsApproved, nil
			}
		}
		return 0, false, fmt.Errorf("register student group %q: %w", name, err)
	}

	tr.log.Info().Str("name", name).Msg("Registered custom student group pending approval")
	return group.ID, false, nil
}

func normalizeBatchYear(year *string) *string {
	if year == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*year)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
