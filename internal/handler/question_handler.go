package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/config"
	"github.com/campushire/driveport-backend/internal/ingest"
	"github.com/campushire/driveport-backend/internal/model"
	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
	"github.com/campushire/driveport-backend/internal/validator"
)

// QuestionHandler handles a drive's question endpoints.
type QuestionHandler struct {
	cfg             *config.Config
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(cfg *config.Config, questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{cfg: cfg, questionService: questionService}
}

// ListQuestions godoc
// GET /api/company/drives/:drive_id/questions
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	questions, err := h.questionService.List(c.Request.Context(), driveID, cid)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// UploadQuestions godoc
// POST /api/company/drives/:drive_id/questions
// Accepts either a single question object or a bulk {questions: [...]} body.
func (h *QuestionHandler) UploadQuestions(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	driveID, ok := paramID(c, "drive_id")
	if !ok {
		return
	}

	var bulk model.BulkQuestionsRequest
	if fields := validator.Bind(c, &bulk); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	inserted, err := h.questionService.BulkCreate(c.Request.Context(), driveID, cid, bulk.Questions)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"inserted": inserted})
}

// UploadQuestionsCSV godoc
// POST /api/company/drives/:drive_id/questions/csv-upload
// Multipart upload, field name "file".
func (h *QuestionHandler) UploadQuestionsCSV(c *gin.Context) {
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

	inserted, rowErrs, err := h.questionService.ImportCSV(c.Request.Context(), driveID, cid, file)
	if err != nil {
		failCSV(c, err, rowErrs)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"inserted": inserted, "errors": rowErrList(rowErrs)})
}

// failCSV distinguishes file-level parse failures from domain errors.
func failCSV(c *gin.Context, err error, rowErrs []ingest.RowError) {
	switch {
	case errors.Is(err, ingest.ErrEmptyFile),
		errors.Is(err, ingest.ErrBadHeader),
		errors.Is(err, ingest.ErrNoValidRow):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrMalformedCSV, csvFields(err, rowErrs))
	default:
		failDomain(c, err)
	}
}

func csvFields(err error, rowErrs []ingest.RowError) map[string]string {
	fields := map[string]string{"file": err.Error()}
	for _, re := range rowErrs {
		fields["row_"+itoa(re.Row)] = re.Message
	}
	return fields
}

func rowErrList(rowErrs []ingest.RowError) []ingest.RowError {
	if rowErrs == nil {
		return []ingest.RowError{}
	}
	return rowErrs
}
