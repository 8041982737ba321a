package model

import "time"

// CompanyStatus enumerates the review states of a company account.
type CompanyStatus string

const (
	CompanyStatusPending   CompanyStatus = "pending"
	CompanyStatusApproved  CompanyStatus = "approved"
	CompanyStatusRejected  CompanyStatus = "rejected"
	CompanyStatusSuspended CompanyStatus = "suspended"
)

// companyTransitions is the admin-side review state machine.
// pending → approved|rejected; approved → suspended;
// suspended → approved|rejected; rejected → approved (re-approve).
var companyTransitions = map[CompanyStatus][]CompanyStatus{
	CompanyStatusPending:   {CompanyStatusApproved, CompanyStatusRejected},
	CompanyStatusApproved:  {CompanyStatusSuspended},
	CompanyStatusSuspended: {CompanyStatusApproved, CompanyStatusRejected},
	CompanyStatusRejected:  {CompanyStatusApproved},
}

// CanTransitionTo reports whether an admin may move a company from s to next.
func (s CompanyStatus) CanTransitionTo(next CompanyStatus) bool {
	for _, t := range companyTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Deletable reports whether a company may be permanently removed.
// Only rejected companies can be deleted.
func (s CompanyStatus) Deletable() bool {
	return s == CompanyStatusRejected
}

// Company represents a registered company account.
type Company struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	LogoURL      *string       `json:"logo_url,omitempty"`
	Status       CompanyStatus `json:"status"`
	AdminNotes   *string       `json:"admin_notes,omitempty"`
	ReviewedAt   *time.Time    `json:"reviewed_at,omitempty"`
	ReviewedBy   *string       `json:"reviewed_by,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// IsApproved is kept for clients that still read the legacy boolean.
func (c *Company) IsApproved() bool {
	return c.Status == CompanyStatusApproved
}

// CompanyRegisterRequest is the payload for company self-registration.
type CompanyRegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// CompanyLoginRequest is the payload for company authentication.
type CompanyLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// CompanyLoginResponse is returned after successful company login.
type CompanyLoginResponse struct {
	Token   string  `json:"token"`
	Company Company `json:"company"`
}

// CompanyReviewRequest is the admin payload for moving a company through the
// review state machine. AdminNotes carries the optional free-text reason.
type CompanyReviewRequest struct {
	Status     CompanyStatus `json:"status" binding:"required,oneof=pending approved rejected suspended"`
	AdminNotes string        `json:"admin_notes" binding:"omitempty,max=2000"`
}
