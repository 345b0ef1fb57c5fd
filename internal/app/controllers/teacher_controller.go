package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/app/services"
	"github.com/yigit/academics/internal/middleware"
)

// TeacherController handles teacher endpoints
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// Register handles teacher registration
// @Summary Register a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.TeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{result=models.Teacher} "Teacher registered"
// @Failure 400 {object} dto.APIResponse "Invalid input data"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /teachers [post]
func (c *TeacherController) Register(ctx *gin.Context) {
	var req dto.TeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	teacher, err := c.teacherService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse("Teacher registered successfully.", teacher))
}

// List returns every teacher
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{result=[]models.Teacher} "Teachers"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) List(ctx *gin.Context) {
	teachers, err := c.teacherService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse("Teachers retrieved successfully.", teachers))
}

// GetByID returns one teacher
// @Summary Get a teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{result=models.Teacher} "Teacher"
// @Failure 400 {object} dto.APIResponse "Invalid teacher ID"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Teacher")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse("Teacher retrieved successfully.", teacher))
}

// Update replaces a teacher's data
// @Summary Update a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Param request body dto.TeacherRequest true "Teacher information"
// @Success 200 {object} dto.APIResponse{result=models.Teacher} "Teacher updated or unchanged"
// @Failure 400 {object} dto.APIResponse "Invalid input data"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /teachers/{id} [put]
func (c *TeacherController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Teacher")
	if !ok {
		return
	}

	var req dto.TeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	teacher, changed, err := c.teacherService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Teacher updated successfully."
	if !changed {
		message = "No changes were made to the teacher."
	}
	ctx.JSON(http.StatusOK, dto.NewResponse(message, teacher))
}

// Delete removes a teacher
// @Summary Delete a teacher
// @Description Fails with 409 while any subject is still assigned to the teacher.
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{result=models.DeleteResult} "Teacher deleted"
// @Failure 400 {object} dto.APIResponse "Invalid teacher ID"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Failure 409 {object} dto.APIResponse "Teacher is assigned to subjects"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /teachers/{id} [delete]
func (c *TeacherController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Teacher")
	if !ok {
		return
	}

	result, err := c.teacherService.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(fmt.Sprintf("Teacher with ID %d deleted successfully.", id), result))
}

// ListSubjects returns the subjects a teacher is assigned to
// @Summary List a teacher's subjects
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{result=[]models.SubjectSummary} "Taught subjects"
// @Failure 400 {object} dto.APIResponse "Invalid teacher ID"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /teachers/{id}/subjects [get]
func (c *TeacherController) ListSubjects(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Teacher")
	if !ok {
		return
	}

	subjects, err := c.teacherService.ListTaughtSubjects(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse("Taught subjects retrieved successfully.", subjects))
}
