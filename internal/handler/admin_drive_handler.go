package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/repository"
	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
	"github.com/campushire/driveport-backend/internal/validator"
)

// AdminDriveHandler handles admin review of submitted drives.
type AdminDriveHandler struct {
	driveService *service.DriveService
}

// NewAdminDriveHandler creates a new AdminDriveHandler.
func NewAdminDriveHandler(driveService *service.DriveService) *AdminDriveHandler {
	return &AdminDriveHandler{driveService: driveService}
}

// ListDrives godoc
// GET /api/admin/drives?status_filter=pending|approved|rejected|all
func (h *AdminDriveHandler) ListDrives(c *gin.Context) {
	page, perPage := paging(c)

	var filter repository.AdminFilter
	switch f := c.DefaultQuery("status_filter", "all"); f {
	case "pending", "approved", "rejected", "all", "":
		filter = repository.AdminFilter(f)
	default:
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	drives, pagination, err := h.driveService.ListForAdmin(c.Request.Context(), filter, page, perPage)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"drives": drives}, pagination)
}

// GetDrive godoc
// GET /api/admin/drives/:drive_id
func (h *AdminDriveHandler) GetDrive(c *gin.Context) {
	id, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	drive, err := h.driveService.GetForAdmin(c.Request.Context(), id)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"drive": drive})
}

// ReviewDrive godoc
// PUT /api/admin/drives/:drive_id/approve
// Approves or rejects a submitted drive, with optional notes back to the
// company.
func (h *AdminDriveHandler) ReviewDrive(c *gin.Context) {
	id, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	var req model.DriveReviewRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	drive, err := h.driveService.Review(c.Request.Context(), id, *req.IsApproved, req.AdminNotes)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"drive": drive})
}
