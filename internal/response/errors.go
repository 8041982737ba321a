package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden          ErrCode = "FORBIDDEN"
	ErrCompanyAccessOnly  ErrCode = "COMPANY_ACCESS_ONLY"
	ErrAdminAccessOnly    ErrCode = "ADMIN_ACCESS_ONLY"
	ErrCompanyNotApproved ErrCode = "COMPANY_NOT_APPROVED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Drive lifecycle ───────────────────────────────────────────────
	ErrDriveNotEditable   ErrCode = "DRIVE_NOT_EDITABLE"
	ErrDriveNotDraft      ErrCode = "DRIVE_NOT_DRAFT"
	ErrDriveNotApproved   ErrCode = "DRIVE_NOT_APPROVED"
	ErrDriveNotReviewable ErrCode = "DRIVE_NOT_REVIEWABLE"
	ErrNoTargets          ErrCode = "NO_TARGETS"
	ErrNoQuestions        ErrCode = "NO_QUESTIONS"
	ErrNoStudents         ErrCode = "NO_STUDENTS"

	// ─── Targeting ─────────────────────────────────────────────────────
	ErrDuplicateTarget        ErrCode = "DUPLICATE_TARGET"
	ErrEmptyCustomName        ErrCode = "EMPTY_CUSTOM_NAME"
	ErrNoCollegeSelected      ErrCode = "NO_COLLEGE_SELECTED"
	ErrNoStudentGroupSelected ErrCode = "NO_STUDENT_GROUP_SELECTED"

	// ─── Approval workflow ─────────────────────────────────────────────
	ErrInvalidStatusTransition ErrCode = "INVALID_STATUS_TRANSITION"
	ErrCompanyNotDeletable     ErrCode = "COMPANY_NOT_DELETABLE"

	// ─── Uploads ───────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"
	ErrMalformedCSV    ErrCode = "MALFORMED_CSV"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid email/username or password."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."
	case ErrTokenExpired:
		return "The authentication token has expired."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrCompanyAccessOnly:
		return "This resource is restricted to company accounts."
	case ErrAdminAccessOnly:
		return "This resource is restricted to administrators."
	case ErrCompanyNotApproved:
		return "This company account has not been approved yet."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "A resource with the same identity already exists."

	// ─── Drive lifecycle ───────────────────────────────────────────────
	case ErrDriveNotEditable:
		return "Only draft or rejected drives can be modified."
	case ErrDriveNotDraft:
		return "Only draft or rejected drives can be submitted."
	case ErrDriveNotApproved:
		return "This drive has not been approved yet."
	case ErrDriveNotReviewable:
		return "Only submitted drives can be approved or rejected."
	case ErrNoTargets:
		return "The drive must have at least one target."
	case ErrNoQuestions:
		return "The drive must have at least one question."
	case ErrNoStudents:
		return "The drive has no students to email."

	// ─── Targeting ─────────────────────────────────────────────────────
	case ErrDuplicateTarget:
		return "An identical target already exists for this drive."
	case ErrEmptyCustomName:
		return "A custom name cannot be blank."
	case ErrNoCollegeSelected:
		return "Select a college or provide a custom college name."
	case ErrNoStudentGroupSelected:
		return "Select a student group or provide a custom group name."

	// ─── Approval workflow ─────────────────────────────────────────────
	case ErrInvalidStatusTransition:
		return "This status change is not allowed from the current state."
	case ErrCompanyNotDeletable:
		return "Only rejected companies can be permanently deleted."

	// ─── Uploads ───────────────────────────────────────────────────────
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type."
	case ErrFileTooLarge:
		return "The file exceeds the size limit."
	case ErrMalformedCSV:
		return "The CSV file could not be parsed."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
