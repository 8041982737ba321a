package model

import "time"

// College is a canonical college reference record.
type College struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// StudentGroup is a canonical student group (branch/department) record.
type StudentGroup struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReferenceRequest is the admin payload for creating a college or
// student group. Admin-created records are approved immediately.
type CreateReferenceRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// UpdateReferenceRequest is the admin payload for renaming or toggling
// approval on a reference record.
type UpdateReferenceRequest struct {
	Name       string `json:"name" binding:"omitempty,min=2,max=255"`
	IsApproved *bool  `json:"is_approved" binding:"omitempty"`
}

// ApproveCustomRequest promotes a pending custom name to a canonical record.
type ApproveCustomRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// ApproveCustomResponse reports the promotion outcome, including how many
// drive targets were rewritten to reference the canonical record.
type ApproveCustomResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	UpdatedTargets int    `json:"updated_targets"`
}
