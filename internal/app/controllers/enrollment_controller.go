package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/app/services"
	"github.com/yigit/academics/internal/middleware"
)

// EnrollmentController handles enrollment endpoints
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll enrolls a student in a subject
// @Summary Enroll a student
// @Description Enrolls a student in a subject. A duplicate enrollment answers 409 with the existing enrollment as result.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.EnrollmentRequest true "Student and subject"
// @Success 201 {object} dto.APIResponse{result=models.Enrollment} "Student enrolled"
// @Failure 400 {object} dto.APIResponse "Invalid input data"
// @Failure 404 {object} dto.APIResponse "Student or subject not found"
// @Failure 409 {object} dto.APIResponse{result=models.Enrollment} "Already enrolled"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	receipt, err := c.enrollmentService.Enroll(ctx.Request.Context(), &req)
	if err != nil {
		if receipt != nil && receipt.Enrollment != nil {
			middleware.HandleAPIErrorWithResult(ctx, err, receipt.Enrollment)
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("Student %s enrolled in %s.", receipt.StudentName, receipt.SubjectName)
	ctx.JSON(http.StatusCreated, dto.NewResponse(message, receipt.Enrollment))
}
