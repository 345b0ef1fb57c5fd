package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/pkg/apperrors"
	"github.com/yigit/academics/internal/pkg/logger"
)

// InternalErrorMessage is the generic message returned for unexpected failures
const InternalErrorMessage = "An internal server error occurred."

// StatusFor maps an error onto its HTTP status code
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError writes the envelope for err with a null result
func HandleAPIError(c *gin.Context, err error) {
	HandleAPIErrorWithResult(c, err, nil)
}

// HandleAPIErrorWithResult writes the envelope for err carrying result,
// used when a failure still has a meaningful record to return.
func HandleAPIErrorWithResult(c *gin.Context, err error, result interface{}) {
	status := StatusFor(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", GetRequestID(c)).
			Msg("Unhandled error while processing request")
		_ = c.Error(err)
		c.JSON(status, dto.APIResponse{
			Message: InternalErrorMessage,
			Result:  result,
			Errors:  err.Error(),
		})
		return
	}

	message := apperrors.Message(err)
	if message == "" {
		message = http.StatusText(status)
	}

	c.JSON(status, dto.APIResponse{
		Message: message,
		Result:  result,
		Errors:  apperrors.Details(err),
	})
}

// NotFound answers unknown routes with the standard envelope
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Endpoint not found.", c.Request.Method+" "+c.Request.URL.Path))
	}
}

// Recovery turns a panic into a 500 envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Str("requestID", GetRequestID(c)).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(InternalErrorMessage, "unexpected server error"))
	})
}
