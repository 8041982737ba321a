package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/middleware"
	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
	"github.com/campushire/driveport-backend/internal/validator"
)

// AdminCompanyHandler handles admin review of company accounts.
type AdminCompanyHandler struct {
	companyService *service.CompanyService
	adminService   *service.AdminService
}

// NewAdminCompanyHandler creates a new AdminCompanyHandler.
func NewAdminCompanyHandler(companyService *service.CompanyService, adminService *service.AdminService) *AdminCompanyHandler {
	return &AdminCompanyHandler{
		companyService: companyService,
		adminService:   adminService,
	}
}

// ListCompanies godoc
// GET /api/admin/companies?status_filter=pending|approved|suspended|rejected|all
func (h *AdminCompanyHandler) ListCompanies(c *gin.Context) {
	page, perPage := paging(c)

	var status *model.CompanyStatus
	switch filter := c.DefaultQuery("status_filter", "all"); filter {
	case "all", "":
	case "pending", "approved", "suspended", "rejected":
		s := model.CompanyStatus(filter)
		status = &s
	default:
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	companies, pagination, err := h.companyService.List(c.Request.Context(), status, page, perPage)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"companies": companies}, pagination)
}

// ReviewCompany godoc
// PUT /api/admin/companies/:company_id/approve
// Moves the company through the review state machine.
func (h *AdminCompanyHandler) ReviewCompany(c *gin.Context) {
	id, ok := paramID(c, "company_id")
	if !ok {
		return
	}

	var req model.CompanyReviewRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	company, err := h.companyService.Review(c.Request.Context(), id, &req, h.reviewerName(c))
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"company": company})
}

// DeleteCompany godoc
// DELETE /api/admin/companies/:company_id
// Permanent removal, allowed only for rejected companies.
func (h *AdminCompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := paramID(c, "company_id")
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "company deleted"})
}

// reviewerName resolves the acting admin's username for the audit stamp.
func (h *AdminCompanyHandler) reviewerName(c *gin.Context) string {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return ""
	}
	admin, err := h.adminService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		return ""
	}
	return admin.Username
}
