package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
	"github.com/campushire/driveport-backend/internal/validator"
)

// DriveHandler handles the company-side drive endpoints.
type DriveHandler struct {
	driveService   *service.DriveService
	companyService *service.CompanyService
}

// NewDriveHandler creates a new DriveHandler.
func NewDriveHandler(driveService *service.DriveService, companyService *service.CompanyService) *DriveHandler {
	return &DriveHandler{
		driveService:   driveService,
		companyService: companyService,
	}
}

// ListDrives godoc
// GET /api/company/drives
func (h *DriveHandler) ListDrives(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	page, perPage := paging(c)

	drives, pagination, err := h.driveService.ListForCompany(c.Request.Context(), cid, page, perPage)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"drives": drives}, pagination)
}

// GetDrive godoc
// GET /api/company/drives/:drive_id
func (h *DriveHandler) GetDrive(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	drive, err := h.driveService.GetForCompany(c.Request.Context(), driveID, cid)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"drive": drive})
}

// CreateDrive godoc
// POST /api/company/drives
// Creates a draft drive with its initial target set. Requires an approved
// company account.
func (h *DriveHandler) CreateDrive(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}

	var req model.CreateDriveRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, err := h.companyService.RequireApproved(c.Request.Context(), cid); err != nil {
		failDomain(c, err)
		return
	}

	drive, err := h.driveService.Create(c.Request.Context(), cid, &req)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"drive": drive})
}

// UpdateDrive godoc
// PUT /api/company/drives/:drive_id
func (h *DriveHandler) UpdateDrive(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	var req model.UpdateDriveRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	drive, err := h.driveService.Update(c.Request.Context(), driveID, cid, &req)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"drive": drive})
}

// DeleteDrive godoc
// DELETE /api/company/drives/:drive_id
func (h *DriveHandler) DeleteDrive(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	if err := h.driveService.Delete(c.Request.Context(), driveID, cid); err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "drive deleted"})
}

// SubmitDrive godoc
// PUT /api/company/drives/:drive_id/submit
// Moves a draft or rejected drive into admin review.
func (h *DriveHandler) SubmitDrive(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	if _, err := h.companyService.RequireApproved(c.Request.Context(), cid); err != nil {
		failDomain(c, err)
		return
	}

	drive, err := h.driveService.Submit(c.Request.Context(), driveID, cid)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"drive": drive})
}

// DuplicateDrive godoc
// POST /api/company/drives/:drive_id/duplicate
func (h *DriveHandler) DuplicateDrive(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	drive, err := h.driveService.Duplicate(c.Request.Context(), driveID, cid)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"drive": drive})
}
