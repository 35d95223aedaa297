package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feims/feims/internal/app/models/dto"
	"github.com/feims/feims/internal/app/services"
	"github.com/feims/feims/internal/middleware"
)

// DocumentController is the drop-off endpoint for the external
// extraction pipeline.
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// CreateDocument stores an extracted-document record
// @Summary Store an extracted document
// @Description Stores a record emitted by the extraction pipeline; a repeated file hash returns the existing record
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDocumentRequest true "Extracted document"
// @Success 200 {object} dto.APIResponse{data=models.ExtractedDocument} "Existing record for this hash"
// @Success 201 {object} dto.APIResponse{data=models.ExtractedDocument} "Record created"
// @Router /documents [post]
func (c *DocumentController) CreateDocument(ctx *gin.Context) {
	var req dto.CreateDocumentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	document, created, err := c.documentService.Store(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.NewDataResponse(document))
}

// GetDocumentByID retrieves one record
// @Summary Get an extracted document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} dto.APIResponse{data=models.ExtractedDocument}
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [get]
func (c *DocumentController) GetDocumentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	document, err := c.documentService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(document))
}

// ListDocuments retrieves records, newest first
// @Summary List extracted documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param facultyId query string false "Filter by faculty member"
// @Success 200 {object} dto.APIResponse{data=[]models.ExtractedDocument}
// @Router /documents [get]
func (c *DocumentController) ListDocuments(ctx *gin.Context) {
	facultyID, ok := parseOptionalIDQuery(ctx, "facultyId")
	if !ok {
		return
	}

	documents, err := c.documentService.List(ctx, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(documents))
}

// DeleteDocument removes one record
// @Summary Delete an extracted document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [delete]
func (c *DocumentController) DeleteDocument(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.documentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "document deleted"}))
}
