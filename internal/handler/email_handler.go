package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
	"github.com/campushire/driveport-backend/internal/validator"
)

// EmailHandler handles the invitation email endpoints.
type EmailHandler struct {
	emailService *service.EmailService
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(emailService *service.EmailService) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

// queryDriveID parses the required ?drive_id= query parameter.
func queryDriveID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Query("drive_id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// GetTemplate godoc
// GET /api/company/email-template?drive_id=
func (h *EmailHandler) GetTemplate(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := queryDriveID(c)
	if !ok {
		return
	}

	cfg, err := h.emailService.GetConfig(c.Request.Context(), driveID, cid)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"email_config": cfg})
}

// UpdateTemplate godoc
// PUT /api/company/email-template?drive_id=
func (h *EmailHandler) UpdateTemplate(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := queryDriveID(c)
	if !ok {
		return
	}

	var req model.UpdateEmailConfigRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	cfg, err := h.emailService.UpdateConfig(c.Request.Context(), driveID, cid, &req)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"email_config": cfg})
}

// PreviewTemplate godoc
// POST /api/company/email-template/preview?drive_id=
// Renders the supplied templates against the drive's metadata and a sample
// student without sending anything.
func (h *EmailHandler) PreviewTemplate(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := queryDriveID(c)
	if !ok {
		return
	}

	var req model.PreviewEmailRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	preview, err := h.emailService.Preview(c.Request.Context(), driveID, cid, &req)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"preview": preview})
}

// SendEmails godoc
// POST /api/company/send-emails?drive_id=
// Queues one invitation per rostered student. The drive must be approved.
func (h *EmailHandler) SendEmails(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := queryDriveID(c)
	if !ok {
		return
	}

	// The body is optional; an empty body means "use the stored config".
	var req model.SendEmailsRequest
	if c.Request.ContentLength > 0 {
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
			return
		}
	}

	status, err := h.emailService.Send(c.Request.Context(), driveID, cid, req.UseCustomTemplate)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"status": status})
}

// EmailStatus godoc
// GET /api/company/drives/:drive_id/email-status
func (h *EmailHandler) EmailStatus(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	status, err := h.emailService.Status(c.Request.Context(), driveID, cid)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": status})
}
