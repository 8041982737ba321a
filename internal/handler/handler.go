// Package handler contains the Gin HTTP handlers. Handlers parse and
// validate input, call services, and translate domain errors into the
// response envelope; business rules live in the service layer.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/campushire/driveport-backend/internal/middleware"
	"github.com/campushire/driveport-backend/internal/repository"
	"github.com/campushire/driveport-backend/internal/response"
	"github.com/campushire/driveport-backend/internal/service"
)

// paramID parses a positive integer path parameter. On failure it writes the
// error response and reports false.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// paging reads ?page= and ?per_page= with the usual defaults.
func paging(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "10"))
	return page, perPage
}

// companyID extracts the authenticated company id from the JWT claims. A
// missing claim means the middleware chain is misconfigured; treat as 401.
func companyID(c *gin.Context) (int, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return 0, false
	}
	return claims.UserID, true
}

// failDomain maps service-layer sentinel errors onto the error taxonomy.
// Anything unrecognized is a 500.
func failDomain(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)

	// Credentials
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrCompanyNotApproved):
		response.Fail(c, http.StatusForbidden, response.ErrCompanyNotApproved)

	// Drive lifecycle
	case errors.Is(err, service.ErrDriveNotEditable):
		response.Fail(c, http.StatusConflict, response.ErrDriveNotEditable)
	case errors.Is(err, service.ErrDriveNotDraft):
		response.Fail(c, http.StatusConflict, response.ErrDriveNotDraft)
	case errors.Is(err, service.ErrDriveNotReviewable):
		response.Fail(c, http.StatusConflict, response.ErrDriveNotReviewable)
	case errors.Is(err, service.ErrDriveFrozen):
		response.Fail(c, http.StatusConflict, response.ErrDriveNotEditable)
	case errors.Is(err, service.ErrDriveNotApproved):
		response.Fail(c, http.StatusConflict, response.ErrDriveNotApproved)
	case errors.Is(err, service.ErrNoTargets):
		response.Fail(c, http.StatusBadRequest, response.ErrNoTargets)
	case errors.Is(err, service.ErrNoQuestions):
		response.Fail(c, http.StatusBadRequest, response.ErrNoQuestions)
	case errors.Is(err, service.ErrNoStudentsToEmail):
		response.Fail(c, http.StatusBadRequest, response.ErrNoStudents)

	// Targeting
	case errors.Is(err, service.ErrDuplicateTarget):
		response.Fail(c, http.StatusBadRequest, response.ErrDuplicateTarget)
	case errors.Is(err, service.ErrEmptyCustomName):
		response.Fail(c, http.StatusBadRequest, response.ErrEmptyCustomName)
	case errors.Is(err, service.ErrNoCollegeSelected):
		response.Fail(c, http.StatusBadRequest, response.ErrNoCollegeSelected)
	case errors.Is(err, service.ErrNoStudentGroupSelected):
		response.Fail(c, http.StatusBadRequest, response.ErrNoStudentGroupSelected)
	case errors.Is(err, service.ErrCollegeNotFound),
		errors.Is(err, service.ErrStudentGroupNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)

	// Review workflow
	case errors.Is(err, service.ErrInvalidStatusTransition):
		response.Fail(c, http.StatusConflict, response.ErrInvalidStatusTransition)
	case errors.Is(err, service.ErrCompanyNotDeletable):
		response.Fail(c, http.StatusConflict, response.ErrCompanyNotDeletable)

	// Uniqueness
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, repository.ErrDuplicateRollNumber):
		response.Fail(c, http.StatusConflict, response.ErrConflict)

	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
