package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/app/services"
	"github.com/yigit/academics/internal/middleware"
)

// SubjectController handles subject endpoints
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// Create handles subject creation
// @Summary Create a subject
// @Description Creates a subject, optionally assigned to an existing teacher
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{result=models.Subject} "Subject created"
// @Failure 400 {object} dto.APIResponse "Invalid input data"
// @Failure 404 {object} dto.APIResponse "Teacher not found"
// @Failure 409 {object} dto.APIResponse "Subject name already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /subjects [post]
func (c *SubjectController) Create(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	subject, err := c.subjectService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse("Subject created successfully.", subject))
}

// List returns every subject with its assigned teacher
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Success 200 {object} dto.APIResponse{result=[]models.Subject} "Subjects"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /subjects [get]
func (c *SubjectController) List(ctx *gin.Context) {
	subjects, err := c.subjectService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse("Subjects retrieved successfully.", subjects))
}

// GetDetails returns a subject with its teacher and enrolled students
// @Summary Get subject details
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{result=models.SubjectDetails} "Subject details"
// @Failure 400 {object} dto.APIResponse "Invalid subject ID"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Subject")
	if !ok {
		return
	}

	details, err := c.subjectService.GetDetails(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse("Subject retrieved successfully.", details))
}

// Update partially updates a subject
// @Summary Update a subject
// @Description Only the provided fields change. An explicit null teacherId clears the assigned teacher.
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSubjectRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{result=models.Subject} "Subject updated or unchanged"
// @Failure 400 {object} dto.APIResponse "Invalid input data or nothing to update"
// @Failure 404 {object} dto.APIResponse "Subject or teacher not found"
// @Failure 409 {object} dto.APIResponse "Subject name already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /subjects/{id} [put]
func (c *SubjectController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Subject")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	subject, changed, err := c.subjectService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Subject updated successfully."
	if !changed {
		message = "No changes were made to the subject."
	}
	ctx.JSON(http.StatusOK, dto.NewResponse(message, subject))
}

// AssignTeacher sets the teacher of a subject
// @Summary Assign a teacher to a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Param request body dto.AssignTeacherRequest true "Teacher to assign"
// @Success 200 {object} dto.APIResponse{result=models.Subject} "Teacher assigned"
// @Failure 400 {object} dto.APIResponse "Invalid input data"
// @Failure 404 {object} dto.APIResponse "Subject or teacher not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /subjects/{id}/assign-teacher [post]
func (c *SubjectController) AssignTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Subject")
	if !ok {
		return
	}

	var req dto.AssignTeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	subject, err := c.subjectService.AssignTeacher(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Teacher assigned successfully."
	if t := subject.AssignedTeacher; t != nil {
		message = fmt.Sprintf("Teacher %s %s assigned to subject %s.", t.Name, t.Surname, subject.Name)
	}
	ctx.JSON(http.StatusOK, dto.NewResponse(message, subject))
}

// Delete removes a subject together with its enrollments
// @Summary Delete a subject
// @Description Deletes a subject. Its enrollments are removed with it and counted in the result.
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{result=models.DeleteResult} "Subject deleted"
// @Failure 400 {object} dto.APIResponse "Invalid subject ID"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Failure 409 {object} dto.APIResponse "Subject has associated records"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /subjects/{id} [delete]
func (c *SubjectController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Subject")
	if !ok {
		return
	}

	result, err := c.subjectService.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(fmt.Sprintf("Subject with ID %d deleted successfully.", id), result))
}
