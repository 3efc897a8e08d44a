package controller

import (
	"errors"
	"net/http"

	"github.com/DjalmaFelipe02/Exam-manager-API/internal/dto"
	"github.com/DjalmaFelipe02/Exam-manager-API/internal/model"
	"github.com/gin-gonic/gin"
)

// StatusFromError maps domain errors to HTTP status codes. Validation
// failures are 4xx; anything unrecognized is a server-side failure.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrExamNotFound),
		errors.Is(err, model.ErrQuestionNotFound),
		errors.Is(err, model.ErrChoiceNotFound),
		errors.Is(err, model.ErrAnswerNotFound),
		errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrParticipantNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrAlreadyRegistered),
		errors.Is(err, model.ErrAttemptLimitExceeded),
		errors.Is(err, model.ErrChoiceMismatch),
		errors.Is(err, model.ErrNotRegistered),
		errors.Is(err, model.ErrDuplicateAnswer),
		errors.Is(err, model.ErrUsernameTaken):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrPermissionDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the mapped status with a descriptive body.
func RespondError(ctx *gin.Context, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		ctx.JSON(status, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}
