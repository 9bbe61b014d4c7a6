package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/marlon/enrollhub/internal/app/models/dto"
	"github.com/marlon/enrollhub/internal/app/services"
	"github.com/marlon/enrollhub/internal/middleware"
)

// AdmissionController handles admission application operations
type AdmissionController struct {
	admissionService services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController
func NewAdmissionController(admissionService services.AdmissionService) *AdmissionController {
	return &AdmissionController{admissionService: admissionService}
}

// CreateAdmission handles submitting a new application
// @Summary Submit an admission application
// @Description Stores a new application with status pending unless another status is supplied
// @Tags admissions
// @Accept json
// @Produce json
// @Param request body dto.AdmissionRequest true "Application details"
// @Success 201 {object} dto.APIResponse "Application created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admissions [post]
func (c *AdmissionController) CreateAdmission(ctx *gin.Context) {
	var req dto.AdmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	id, err := c.admissionService.CreateAdmission(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"id": id}, "Application submitted successfully"))
}

// GetAllAdmissions handles retrieving all pending applications
// @Summary List admission applications
// @Description Retrieves all pending applications, newest first
// @Tags admissions
// @Produce json
// @Success 200 {object} dto.APIResponse "Applications retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admissions [get]
func (c *AdmissionController) GetAllAdmissions(ctx *gin.Context) {
	admissions, err := c.admissionService.ListAdmissions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admissions, "Applications retrieved successfully"))
}

// GetAdmissionByID handles retrieving a single application
// @Summary Get an admission application
// @Tags admissions
// @Produce json
// @Param id path int true "Admission ID"
// @Success 200 {object} dto.APIResponse "Application retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid admission ID"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /admissions/{id} [get]
func (c *AdmissionController) GetAdmissionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	admission, err := c.admissionService.GetAdmission(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission, "Application retrieved successfully"))
}

// UpdateAdmission handles editing a pending application
// @Summary Update an admission application
// @Description Rewrites an application's fields before a decision is made
// @Tags admissions
// @Accept json
// @Produce json
// @Param id path int true "Admission ID"
// @Param request body dto.AdmissionRequest true "Updated application details"
// @Success 200 {object} dto.APIResponse "Application updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /admissions/{id} [put]
func (c *AdmissionController) UpdateAdmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AdmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	admission := req.ToModel()
	admission.ID = id

	if err := c.admissionService.UpdateAdmission(ctx, admission); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission, "Application updated successfully"))
}

// DeleteAdmission handles withdrawing an application
// @Summary Delete an admission application
// @Tags admissions
// @Produce json
// @Param id path int true "Admission ID"
// @Success 200 {object} dto.APIResponse "Application deleted"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /admissions/{id} [delete]
func (c *AdmissionController) DeleteAdmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.admissionService.DeleteAdmission(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Application deleted successfully"))
}

// UpdateAdmissionStatus handles the status transition workflow
// @Summary Change an application's status
// @Description Accepting moves the application to the student roster and assigns a student number; rejecting moves it to the archive. Setting pending leaves it in place.
// @Tags admissions
// @Accept json
// @Produce json
// @Param id path int true "Admission ID"
// @Param request body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=dto.TransitionResult} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Transition failed and was rolled back"
// @Router /admissions/{id}/status [patch]
func (c *AdmissionController) UpdateAdmissionStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.admissionService.Transition(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result, "Status updated successfully"))
}

// parseIDParam parses a numeric path parameter, writing the error response
// itself when the value is not a positive integer.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").WithField(name)))
		return 0, false
	}
	return id, true
}
