package model

import "time"

// DriveStatus enumerates the lifecycle states of a recruitment drive.
type DriveStatus string

const (
	DriveStatusDraft     DriveStatus = "draft"
	DriveStatusSubmitted DriveStatus = "submitted"
	DriveStatusApproved  DriveStatus = "approved"
	DriveStatusRejected  DriveStatus = "rejected"
	DriveStatusUpcoming  DriveStatus = "upcoming"
	DriveStatusLive      DriveStatus = "live"
	DriveStatusOngoing   DriveStatus = "ongoing"
	DriveStatusCompleted DriveStatus = "completed"
)

// Approved reports whether the drive has passed admin review. The scheduled
// states (upcoming/live/ongoing/completed) are only reachable from approved,
// so they count as approved too. This derived boolean is the single source of
// truth; there is no separately stored is_approved flag.
func (s DriveStatus) Approved() bool {
	switch s {
	case DriveStatusApproved, DriveStatusUpcoming, DriveStatusLive,
		DriveStatusOngoing, DriveStatusCompleted:
		return true
	}
	return false
}

// Editable reports whether a company may modify the drive's core fields and
// targets. Only drafts and rejected drives are editable.
func (s DriveStatus) Editable() bool {
	return s == DriveStatusDraft || s == DriveStatusRejected
}

// Submittable reports whether the drive may be submitted for admin review.
// Drafts and rejected drives (resubmission) qualify.
func (s DriveStatus) Submittable() bool {
	return s == DriveStatusDraft || s == DriveStatusRejected
}

// Reviewable reports whether an admin may approve or reject the drive.
func (s DriveStatus) Reviewable() bool {
	return s == DriveStatusSubmitted
}

// QuestionType enumerates the assessment categories a drive can use.
type QuestionType string

const (
	QuestionTypeMCQs      QuestionType = "mcqs"
	QuestionTypeAptitude  QuestionType = "aptitude"
	QuestionTypeTechnical QuestionType = "technical"
	QuestionTypeCoding    QuestionType = "coding"
	QuestionTypeHR        QuestionType = "hr"
)

// Drive represents a recruitment drive (assessment campaign).
type Drive struct {
	ID              int          `json:"id"`
	CompanyID       int          `json:"company_id"`
	Title           string       `json:"title"`
	Description     *string      `json:"description,omitempty"`
	QuestionType    QuestionType `json:"question_type"`
	DurationMinutes int          `json:"duration_minutes"`
	ScheduledStart  *time.Time   `json:"scheduled_start,omitempty"`
	Status          DriveStatus  `json:"status"`
	AdminNotes      *string      `json:"admin_notes,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`

	// Targets is populated on detail reads and list responses.
	Targets []DriveTarget `json:"targets"`
}

// IsApproved mirrors Status.Approved() into the JSON payload for clients
// that still read the legacy boolean field.
func (d *Drive) IsApproved() bool {
	return d.Status.Approved()
}

// CreateDriveRequest is the payload for creating a new drive with its targets.
type CreateDriveRequest struct {
	Title           string        `json:"title" binding:"required,min=3,max=255"`
	Description     string        `json:"description" binding:"omitempty,max=5000"`
	QuestionType    QuestionType  `json:"question_type" binding:"required,oneof=mcqs aptitude technical coding hr"`
	DurationMinutes int           `json:"duration_minutes" binding:"required,min=1,max=480"`
	ScheduledStart  *time.Time    `json:"scheduled_start" binding:"omitempty"`
	Targets         []TargetInput `json:"targets" binding:"required,min=1,dive"`
}

// UpdateDriveRequest is the payload for updating an editable drive.
// A non-nil Targets slice replaces the target list wholesale.
type UpdateDriveRequest struct {
	Title           string        `json:"title" binding:"omitempty,min=3,max=255"`
	Description     *string       `json:"description" binding:"omitempty,max=5000"`
	QuestionType    QuestionType  `json:"question_type" binding:"omitempty,oneof=mcqs aptitude technical coding hr"`
	DurationMinutes int           `json:"duration_minutes" binding:"omitempty,min=1,max=480"`
	ScheduledStart  *time.Time    `json:"scheduled_start" binding:"omitempty"`
	Targets         []TargetInput `json:"targets" binding:"omitempty,min=1,dive"`
}

// DriveReviewRequest is the admin payload for approving or rejecting a
// submitted drive.
type DriveReviewRequest struct {
	IsApproved *bool  `json:"is_approved" binding:"required"`
	AdminNotes string `json:"admin_notes" binding:"omitempty,max=2000"`
}
