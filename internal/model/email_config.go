package model

import "time"

// DefaultSubjectTemplate and DefaultBodyTemplate are used when a drive has no
// stored email configuration or opts out of custom templates.
const (
	DefaultSubjectTemplate = "Invitation to {{drive_title}}"
	DefaultBodyTemplate    = "Dear {{student_name}},\n\n" +
		"You are invited to participate in {{drive_title}} conducted by {{company_name}}.\n\n" +
		"Roll number: {{roll_number}}\n" +
		"Password: {{password}}\n" +
		"Login: {{login_url}}\n" +
		"Starts: {{start_time}}\n" +
		"Duration: {{duration}} minutes\n"
)

// EmailConfig is the per-drive invitation template configuration.
type EmailConfig struct {
	DriveID           int       `json:"drive_id"`
	SubjectTemplate   string    `json:"subject_template"`
	BodyTemplate      string    `json:"body_template"`
	UseCustomTemplate bool      `json:"use_custom_template"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultEmailConfig returns the fallback configuration for a drive.
func DefaultEmailConfig(driveID int) *EmailConfig {
	return &EmailConfig{
		DriveID:           driveID,
		SubjectTemplate:   DefaultSubjectTemplate,
		BodyTemplate:      DefaultBodyTemplate,
		UseCustomTemplate: true,
	}
}

// UpdateEmailConfigRequest is the payload for saving a drive's templates.
type UpdateEmailConfigRequest struct {
	SubjectTemplate   string `json:"subject_template" binding:"required,min=1,max=500"`
	BodyTemplate      string `json:"body_template" binding:"required,min=1,max=20000"`
	UseCustomTemplate *bool  `json:"use_custom_template" binding:"required"`
}

// PreviewEmailRequest renders a template against sample data.
type PreviewEmailRequest struct {
	SubjectTemplate string `json:"subject_template" binding:"required,min=1,max=500"`
	BodyTemplate    string `json:"body_template" binding:"required,min=1,max=20000"`
}

// PreviewEmailResponse carries the rendered sample.
type PreviewEmailResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendEmailsRequest triggers the bulk invitation send for a drive.
type SendEmailsRequest struct {
	UseCustomTemplate *bool `json:"use_custom_template" binding:"omitempty"`
}

// EmailStatus reports send progress counters for a drive.
type EmailStatus struct {
	DriveID int `json:"drive_id"`
	Total   int `json:"total"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
}
