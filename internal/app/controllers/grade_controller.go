package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mert/schoolhub/internal/app/models/dto"
	"github.com/mert/schoolhub/internal/app/services"
	"github.com/mert/schoolhub/internal/middleware"
)

// GradeController handles grade-related operations
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// ListGrades retrieves the caller tenant's grades
// @Summary List grades
// @Description Retrieves all grades owned by the authenticated tenant
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Grade} "Grades retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [get]
func (c *GradeController) ListGrades(ctx *gin.Context) {
	tenantID, ok := requireTenant(ctx)
	if !ok {
		return
	}

	grades, err := c.gradeService.ListGrades(ctx, tenantID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grades,
		Timestamp: time.Now(),
	})
}

// CreateGrade handles grade creation
// @Summary Create a grade
// @Description Creates a grade owned by the authenticated tenant
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=models.Grade} "Grade created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ValidationErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	tenantID, ok := requireTenant(ctx)
	if !ok {
		return
	}

	var req dto.CreateGradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	grade, err := c.gradeService.CreateGrade(ctx, tenantID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// UpdateGrade handles grade updates
// @Summary Update a grade
// @Description Updates a grade owned by the authenticated tenant
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Param request body dto.UpdateGradeRequest true "Updated grade information"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 422 {object} dto.ValidationErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	tenantID, ok := requireTenant(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "grade")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	grade, err := c.gradeService.UpdateGrade(ctx, tenantID, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// DeleteGrade handles grade deletion
// @Summary Delete a grade
// @Description Deletes a grade owned by the authenticated tenant
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 204 "Grade deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	tenantID, ok := requireTenant(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, "grade")
	if !ok {
		return
	}

	if err := c.gradeService.DeleteGrade(ctx, tenantID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
