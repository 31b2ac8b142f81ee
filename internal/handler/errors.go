package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizhub/quizhub-backend/internal/response"
	"github.com/quizhub/quizhub-backend/internal/service"
)

// failFromService maps service errors onto the API error vocabulary.
// Validation failures carry their complete, ordered error list through to
// the client.
func failFromService(c *gin.Context, err error) {
	var vErr *service.ValidationFailedError
	if errors.As(err, &vErr) {
		response.FailWithDetails(c, http.StatusBadRequest, response.ErrValidation,
			vErr.Result.FirstMessage(), vErr.Result.Errors)
		return
	}
	var fErr *service.FormValidationFailedError
	if errors.As(err, &fErr) {
		response.FailWithDetails(c, http.StatusBadRequest, response.ErrValidation,
			"", fErr.Result.Errors)
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrEmailTaken):
		response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
	case errors.Is(err, service.ErrNotAuthor):
		response.Fail(c, http.StatusForbidden, response.ErrNotQuizAuthor)
	case errors.Is(err, service.ErrNotPublished):
		response.Fail(c, http.StatusConflict, response.ErrQuizNotPublished)
	case errors.Is(err, service.ErrNotDraft):
		response.Fail(c, http.StatusConflict, response.ErrQuizNotDraft)
	case errors.Is(err, service.ErrMaxAttempts):
		response.Fail(c, http.StatusForbidden, response.ErrMaxAttempts)
	case errors.Is(err, service.ErrAttemptCooldown):
		response.Fail(c, http.StatusForbidden, response.ErrAttemptCooldown)
	case errors.Is(err, service.ErrAnswerCountWrong):
		response.Fail(c, http.StatusBadRequest, response.ErrAnswerCountWrong)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
