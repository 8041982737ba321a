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

// AuthHandler handles login and registration endpoints.
type AuthHandler struct {
	companyService *service.CompanyService
	adminService   *service.AdminService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(companyService *service.CompanyService, adminService *service.AdminService) *AuthHandler {
	return &AuthHandler{
		companyService: companyService,
		adminService:   adminService,
	}
}

// CompanyRegister godoc
// POST /api/auth/company/register
// Creates a pending company account.
func (h *AuthHandler) CompanyRegister(c *gin.Context) {
	var req model.CompanyRegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	company, err := h.companyService.Register(c.Request.Context(), &req)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"company": company})
}

// CompanyLogin godoc
// POST /api/auth/company/login
func (h *AuthHandler) CompanyLogin(c *gin.Context) {
	var req model.CompanyLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.companyService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// AdminLogin godoc
// POST /api/auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.adminService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetCompanyProfile godoc
// GET /api/auth/company/me
func (h *AuthHandler) GetCompanyProfile(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetByID(c.Request.Context(), cid)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"company": company})
}

// GetAdminProfile godoc
// GET /api/auth/admin/me
func (h *AuthHandler) GetAdminProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	admin, err := h.adminService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}
