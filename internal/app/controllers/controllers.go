package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/middleware"
	"github.com/yigit/academics/internal/pkg/apperrors"
)

// parseIDParam reads a positive integer path parameter. On failure it writes
// a 400 envelope and returns false.
func parseIDParam(ctx *gin.Context, name, entity string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError([]string{
			fmt.Sprintf("%s ID must be a positive integer", entity),
		}))
		return 0, false
	}
	return id, true
}
