package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marlon/enrollhub/internal/app/models/dto"
	"github.com/marlon/enrollhub/internal/app/services"
	"github.com/marlon/enrollhub/internal/middleware"
)

// SectionController handles section and succession operations
type SectionController struct {
	sectionService services.SectionService
}

// NewSectionController creates a new SectionController
func NewSectionController(sectionService services.SectionService) *SectionController {
	return &SectionController{sectionService: sectionService}
}

// CreateSection handles creating a section
// @Summary Create a section
// @Description Creates a section, optionally assigning an initial roster and subject list
// @Tags sections
// @Accept json
// @Produce json
// @Param request body dto.SectionRequest true "Section details"
// @Success 201 {object} dto.APIResponse "Section created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Section already exists"
// @Router /sections [post]
func (c *SectionController) CreateSection(ctx *gin.Context) {
	var req dto.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	section, err := c.sectionService.CreateSection(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(section, "Section created successfully"))
}

// GetAllSections handles retrieving all sections
// @Summary List sections
// @Tags sections
// @Produce json
// @Success 200 {object} dto.APIResponse "Sections retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [get]
func (c *SectionController) GetAllSections(ctx *gin.Context) {
	sections, err := c.sectionService.ListSections(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sections, "Sections retrieved successfully"))
}

// GetSectionByID handles retrieving a single section
// @Summary Get a section
// @Tags sections
// @Produce json
// @Param id path int true "Section ID"
// @Success 200 {object} dto.APIResponse "Section retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{id} [get]
func (c *SectionController) GetSectionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	section, err := c.sectionService.GetSection(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(section, "Section retrieved successfully"))
}

// UpdateSection handles rewriting a section and replacing its roster
// @Summary Update a section
// @Description Rewrites the section's fields and replaces its roster with exactly the supplied student ids; students omitted from the set become unassigned
// @Tags sections
// @Accept json
// @Produce json
// @Param id path int true "Section ID"
// @Param request body dto.SectionRequest true "Updated section details"
// @Success 200 {object} dto.APIResponse "Section updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{id} [put]
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	section, err := c.sectionService.UpdateSection(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(section, "Section updated successfully"))
}

// GetSuccession handles retrieving a section's declared successor
// @Summary Get a section's succession target
// @Tags sections
// @Produce json
// @Param grade path string true "Grade level"
// @Param name path string true "Section name"
// @Success 200 {object} dto.APIResponse "Succession retrieved; data is null when none is set"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade level"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{grade}/{name}/succession [get]
func (c *SectionController) GetSuccession(ctx *gin.Context) {
	succession, err := c.sectionService.GetSuccession(ctx, gradeParam(ctx), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(succession, "Succession retrieved successfully"))
}

// SetSuccession handles declaring a section's successor
// @Summary Set a section's succession target
// @Description Records which section students move up to next year. Declarative only; nothing acts on it.
// @Tags sections
// @Accept json
// @Produce json
// @Param grade path string true "Grade level"
// @Param name path string true "Section name"
// @Param request body dto.SuccessionRequest true "Succession target"
// @Success 200 {object} dto.APIResponse "Succession set"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{grade}/{name}/succession [put]
func (c *SectionController) SetSuccession(ctx *gin.Context) {
	var req dto.SuccessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.sectionService.SetSuccession(ctx, gradeParam(ctx), ctx.Param("name"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Succession set successfully"))
}

// gradeParam reads the grade level from the succession routes, which share
// the :id wildcard with the section item routes.
func gradeParam(ctx *gin.Context) string {
	return ctx.Param("id")
}

// ClearSuccession handles removing a section's declared successor
// @Summary Clear a section's succession target
// @Tags sections
// @Produce json
// @Param grade path string true "Grade level"
// @Param name path string true "Section name"
// @Success 200 {object} dto.APIResponse "Succession cleared"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade level"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{grade}/{name}/succession [delete]
func (c *SectionController) ClearSuccession(ctx *gin.Context) {
	if err := c.sectionService.ClearSuccession(ctx, gradeParam(ctx), ctx.Param("name")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Succession cleared successfully"))
}
