package helper

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tdm/internal/core/domain"
	"tdm/internal/core/model/response"
)

// internalErrorMessage deliberately hides the cause from the caller; the
// real error only goes to the log.
const internalErrorMessage = "internal server error, contact an administrator"

// WriteError translates a domain error into the HTTP status and body shape
// the API promises: validation failures as a bare array of violations,
// everything else as {"error": message}.
func WriteError(c *gin.Context, logger zerolog.Logger, err error) {
	var (
		validationErr *domain.ValidationError
		badRequestErr *domain.BadRequestError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, validationFailures(validationErr))
	case errors.As(err, &badRequestErr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: badRequestErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: conflictErr.Message})
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		logger.Info().Err(err).Str("path", c.FullPath()).Msg("request cancelled")
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "request cancelled"})
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: internalErrorMessage})
	}
}

func validationFailures(err *domain.ValidationError) []response.ValidationFailure {
	failures := make([]response.ValidationFailure, 0, len(err.Violations))

	for _, v := range err.Violations {
		failures = append(failures, response.ValidationFailure{
			PropertyName: v.PropertyName,
			ErrorMessage: v.ErrorMessage,
		})
	}

	return failures
}

// ParseID reads a positive integer path parameter or answers 400.
func ParseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)

	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}

	return id, true
}

// Bind decodes the JSON body into T or answers 400 with the decode problem.
func Bind[T any](c *gin.Context) (T, bool) {
	var req T

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return req, false
	}

	return req, true
}
