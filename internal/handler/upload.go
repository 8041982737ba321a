package handler

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campushire/driveport-backend/internal/response"
)

// openCSVUpload fetches the "file" multipart field and enforces the size cap
// and .csv extension. On failure it writes the error response and reports
// false; callers must Close the returned file.
func openCSVUpload(c *gin.Context, maxBytes int64) (multipart.File, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return nil, false
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		return nil, false
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".csv") {
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		return nil, false
	}

	file, err := fh.Open()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return nil, false
	}
	return file, true
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
