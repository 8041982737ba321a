package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
	"github.com/campushire/driveport-backend/internal/validator"
)

// ReferenceHandler serves the college and student group reference data.
// Companies only ever see approved records; admins manage the full set and
// promote company-submitted custom names.
type ReferenceHandler struct {
	referenceService *service.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(referenceService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

func boolPtr(v bool) *bool { return &v }

// approvedFilter maps ?approved= onto the service filter. Company routes pass
// force=true to pin the filter regardless of the query string.
func approvedFilter(c *gin.Context, force bool) *bool {
	if force {
		return boolPtr(true)
	}
	switch c.Query("approved") {
	case "true":
		return boolPtr(true)
	case "false":
		return boolPtr(false)
	}
	return nil
}

// ─── Colleges ──────────────────────────────────────────────────────────────

// ListApprovedColleges godoc
// GET /api/company/colleges
func (h *ReferenceHandler) ListApprovedColleges(c *gin.Context) {
	colleges, err := h.referenceService.ListColleges(c.Request.Context(), boolPtr(true))
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"colleges": colleges})
}

// ListColleges godoc
// GET /api/admin/colleges?approved=true|false
func (h *ReferenceHandler) ListColleges(c *gin.Context) {
	colleges, err := h.referenceService.ListColleges(c.Request.Context(), approvedFilter(c, false))
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"colleges": colleges})
}

// ListPendingColleges godoc
// GET /api/admin/colleges/pending
// Custom names companies have used that no admin has approved yet.
func (h *ReferenceHandler) ListPendingColleges(c *gin.Context) {
	colleges, err := h.referenceService.ListColleges(c.Request.Context(), boolPtr(false))
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"colleges": colleges})
}

// CreateCollege godoc
// POST /api/admin/colleges
func (h *ReferenceHandler) CreateCollege(c *gin.Context) {
	var req model.CreateReferenceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	college, err := h.referenceService.CreateCollege(c.Request.Context(), req.Name)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"college": college})
}

// UpdateCollege godoc
// PUT /api/admin/colleges/:college_id
func (h *ReferenceHandler) UpdateCollege(c *gin.Context) {
	id, ok := paramID(c, "college_id")
	if !ok {
		return
	}

	var req model.UpdateReferenceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	college, err := h.referenceService.UpdateCollege(c.Request.Context(), id, &req)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"college": college})
}

// DeleteCollege godoc
// DELETE /api/admin/colleges/:college_id
func (h *ReferenceHandler) DeleteCollege(c *gin.Context) {
	id, ok := paramID(c, "college_id")
	if !ok {
		return
	}

	if err := h.referenceService.DeleteCollege(c.Request.Context(), id); err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "college deleted"})
}

// ApproveCustomCollege godoc
// POST /api/admin/colleges/approve-custom
// Promotes a custom name to a canonical college and rewrites matching drive
// targets to reference it.
func (h *ReferenceHandler) ApproveCustomCollege(c *gin.Context) {
	var req model.ApproveCustomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.referenceService.ApproveCustomCollege(c.Request.Context(), req.Name)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"college": result})
}

// ─── Student groups ────────────────────────────────────────────────────────

// ListApprovedStudentGroups godoc
// GET /api/company/student-groups
func (h *ReferenceHandler) ListApprovedStudentGroups(c *gin.Context) {
	groups, err := h.referenceService.ListStudentGroups(c.Request.Context(), boolPtr(true))
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student_groups": groups})
}

// ListStudentGroups godoc
// GET /api/admin/student-groups?approved=true|false
func (h *ReferenceHandler) ListStudentGroups(c *gin.Context) {
	groups, err := h.referenceService.ListStudentGroups(c.Request.Context(), approvedFilter(c, false))
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student_groups": groups})
}

// ListPendingStudentGroups godoc
// GET /api/admin/student-groups/pending
func (h *ReferenceHandler) ListPendingStudentGroups(c *gin.Context) {
	groups, err := h.referenceService.ListStudentGroups(c.Request.Context(), boolPtr(false))
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student_groups": groups})
}

// CreateStudentGroup godoc
// POST /api/admin/student-groups
func (h *ReferenceHandler) CreateStudentGroup(c *gin.Context) {
	var req model.CreateReferenceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	group, err := h.referenceService.CreateStudentGroup(c.Request.Context(), req.Name)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student_group": group})
}

// UpdateStudentGroup godoc
// PUT /api/admin/student-groups/:group_id
func (h *ReferenceHandler) UpdateStudentGroup(c *gin.Context) {
	id, ok := paramID(c, "group_id")
	if !ok {
		return
	}

	var req model.UpdateReferenceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	group, err := h.referenceService.UpdateStudentGroup(c.Request.Context(), id, &req)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student_group": group})
}

// DeleteStudentGroup godoc
// DELETE /api/admin/student-groups/:group_id
func (h *ReferenceHandler) DeleteStudentGroup(c *gin.Context) {
	id, ok := paramID(c, "group_id")
	if !ok {
		return
	}

	if err := h.referenceService.DeleteStudentGroup(c.Request.Context(), id); err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "student group deleted"})
}

// ApproveCustomStudentGroup godoc
// POST /api/admin/student-groups/approve-custom
func (h *ReferenceHandler) ApproveCustomStudentGroup(c *gin.Context) {
	var req model.ApproveCustomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.referenceService.ApproveCustomStudentGroup(c.Request.Context(), req.Name)
	if err != nil {
		failDomain(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student_group": result})
}
