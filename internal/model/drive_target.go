package model

import "time"

// DriveTarget pairs a drive with one (college, student group, batch year)
// audience. Either side may reference a canonical record by id or carry a
// free-text custom name awaiting admin promotion.
type DriveTarget struct {
	ID                     int       `json:"id"`
	DriveID                int       `json:"drive_id"`
	CollegeID              *int      `json:"college_id,omitempty"`
	CustomCollegeName      *string   `json:"custom_college_name,omitempty"`
	StudentGroupID         *int      `json:"student_group_id,omitempty"`
	CustomStudentGroupName *string   `json:"custom_student_group_name,omitempty"`
	BatchYear              *string   `json:"batch_year,omitempty"`
	CreatedAt              time.Time `json:"created_at"`

	// Resolved display names, filled in by the targeting resolver.
	CollegeName      string `json:"college_name"`
	StudentGroupName string `json:"student_group_name"`
}

// IsCustom reports whether either side of the target used a free-text name.
func (t *DriveTarget) IsCustom() bool {
	return t.CustomCollegeName != nil || t.CustomStudentGroupName != nil
}

// TargetInput is one target entry in a drive create/update payload.
// Each side is either a canonical id or a custom name, never both.
type TargetInput struct {
	CollegeID              *int    `json:"college_id" binding:"omitempty,min=1"`
	CustomCollegeName      *string `json:"custom_college_name" binding:"omitempty,max=255"`
	StudentGroupID         *int    `json:"student_group_id" binding:"omitempty,min=1"`
	CustomStudentGroupName *string `json:"custom_student_group_name" binding:"omitempty,max=255"`
	BatchYear              *string `json:"batch_year" binding:"omitempty,max=20"`
}
