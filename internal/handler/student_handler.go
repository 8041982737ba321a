package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/config"
	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
	"github.com/campushire/driveport-backend/internal/validator"
)

// StudentHandler handles a drive's roster endpoints.
type StudentHandler struct {
	cfg            *config.Config
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(cfg *config.Config, studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{cfg: cfg, studentService: studentService}
}

// ListStudents godoc
// GET /api/company/drives/:drive_id/students
func (h *StudentHandler) ListStudents(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	students, err := h.studentService.List(c.Request.Context(), driveID, cid)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// UploadStudents godoc
// POST /api/company/drives/:drive_id/students
// Bulk {students: [...]} body. Roll numbers already in the drive are skipped.
func (h *StudentHandler) UploadStudents(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	var bulk model.BulkStudentsRequest
	if fields := validator.Bind(c, &bulk); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	inserted, err := h.studentService.BulkCreate(c.Request.Context(), driveID, cid, bulk.Students)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"inserted": inserted})
}

// UploadStudentsCSV godoc
// POST /api/company/drives/:drive_id/students/csv-upload
// Multipart upload, field name "file".
func (h *StudentHandler) UploadStudentsCSV(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	file, ok := openCSVUpload(c, h.cfg.MaxUploadBytes)
	if !ok {
		return
	}
	defer file.Close()

	inserted, rowErrs, err := h.studentService.ImportCSV(c.Request.Context(), driveID, cid, file)
	if err != nil {
		failCSV(c, err, rowErrs)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"inserted": inserted, "errors": rowErrList(rowErrs)})
}

// DeleteStudent godoc
// DELETE /api/company/drives/:drive_id/students/:student_id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}
	studentID, ok := paramID(c, "student_id")
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), driveID, cid, studentID); err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "student removed"})
}
