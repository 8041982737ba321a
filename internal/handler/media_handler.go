package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
)

// MediaHandler handles company logo uploads.
type MediaHandler struct {
	mediaService   *service.MediaService
	companyService *service.CompanyService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService *service.MediaService, companyService *service.CompanyService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, companyService: companyService}
}

// UploadLogo godoc
// POST /api/company/logo
// Accepts an image file, stores it, and saves the URL on the company profile.
func (h *MediaHandler) UploadLogo(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	url, err := h.mediaService.SaveUpload(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	company, err := h.companyService.UpdateLogo(c.Request.Context(), cid, url)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"company": company})
}
