package model

import "time"

// Student is one row of a drive's invitation roster.
type Student struct {
	ID           int       `json:"id"`
	DriveID      int       `json:"drive_id"`
	RollNumber   string    `json:"roll_number"`
	Name         *string   `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateStudentRequest is the payload for adding a single roster entry.
type CreateStudentRequest struct {
	RollNumber string  `json:"roll_number" binding:"required,min=1,max=50"`
	Name       *string `json:"name" binding:"omitempty,max=255"`
	Email      string  `json:"email" binding:"required,email,max=255"`
}

// BulkStudentsRequest uploads several roster entries in one request.
type BulkStudentsRequest struct {
	Students []CreateStudentRequest `json:"students" binding:"required,min=1,dive"`
}
