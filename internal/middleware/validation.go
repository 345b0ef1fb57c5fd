package middleware

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/pkg/apperrors"
)

// BindJSON decodes the request body into obj. Malformed JSON or wrong field
// types are answered with a 400 envelope and false is returned. Field rules
// are checked later by the services.
func BindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	details := err.Error()
	if errors.Is(err, io.EOF) {
		details = "request body is required"
	}
	HandleAPIError(c, apperrors.NewValidationError([]string{details}))
	return false
}
