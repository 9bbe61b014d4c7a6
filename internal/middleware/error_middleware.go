package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marlon/enrollhub/internal/app/models/dto"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Controllers delegate
// every non-binding error here so status codes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrAdmissionNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrArchiveRecordNotFound,
		apperrors.ErrSectionNotFound,
		apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))

	case errors.Is(err, apperrors.ErrInvalidStatus):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidStatus,
			"Status must be one of: pending, accepted, rejected").WithField("status"))

	case errors.Is(err, apperrors.ErrInvalidGradeLevel):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidGrade, err.Error()).WithField("grade_level"))

	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))

	case apperrors.Is(err, apperrors.ErrSectionAlreadyExists,
		apperrors.ErrStudentNoAlreadyExists,
		apperrors.ErrUsernameAlreadyInUse,
		apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))

	case errors.Is(err, apperrors.ErrTransitionFailed):
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeDatabaseError, err.Error()))

	default:
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, err.Error()))
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	})
}
