package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marlon/enrollhub/internal/app/models/dto"
	"github.com/marlon/enrollhub/internal/app/services"
	"github.com/marlon/enrollhub/internal/middleware"
)

// RecordController handles archive reads and cross-table record lookups
type RecordController struct {
	archiveService services.ArchiveService
	recordService  services.RecordService
}

// NewRecordController creates a new RecordController
func NewRecordController(archiveService services.ArchiveService, recordService services.RecordService) *RecordController {
	return &RecordController{
		archiveService: archiveService,
		recordService:  recordService,
	}
}

// GetAllArchived handles retrieving all rejected applications
// @Summary List archived applications
// @Description Retrieves all rejected applications, newest rejection first
// @Tags archive
// @Produce json
// @Success 200 {object} dto.APIResponse "Archived applications retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /archive [get]
func (c *RecordController) GetAllArchived(ctx *gin.Context) {
	archived, err := c.archiveService.ListArchivedApplications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(archived, "Archived applications retrieved successfully"))
}

// GetArchivedByID handles retrieving a single rejected application
// @Summary Get an archived application
// @Tags archive
// @Produce json
// @Param id path int true "Archive ID"
// @Success 200 {object} dto.APIResponse "Archived application retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid archive ID"
// @Failure 404 {object} dto.ErrorResponse "Archived application not found"
// @Router /archive/{id} [get]
func (c *RecordController) GetArchivedByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	archived, err := c.archiveService.GetArchivedApplication(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(archived, "Archived application retrieved successfully"))
}

// GetRecord handles looking up a record by status tag and id
// @Summary Get a record by status and id
// @Description Looks up the table matching the status tag: pending reads admissions, accepted reads students, rejected reads the archive
// @Tags records
// @Produce json
// @Param status path string true "Record status" Enums(pending, accepted, rejected)
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse "Record retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /records/{status}/{id} [get]
func (c *RecordController) GetRecord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	record, err := c.recordService.GetRecord(ctx, ctx.Param("status"), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record, "Record retrieved successfully"))
}
