package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"landrecords/internal/domain"
	"landrecords/internal/export"
	"landrecords/internal/port"
	"landrecords/internal/service"
)

// DocumentHandler handles processed document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
	summaryService  service.SummaryService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService, summaryService service.SummaryService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, summaryService: summaryService}
}

// List handles GET /api/v1/documents
// @Summary List documents
// @Description List processed documents, newest first
// @Tags documents
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Param saved_only query bool false "Only documents saved as land records"
// @Param status query string false "Processing status (pending, processed, failed)"
// @Param district query string false "Filter by district"
// @Param khasra query string false "Filter by khasra number"
// @Success 200 {object} Response{data=[]domain.Document,meta=PagMeta} "List of documents"
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	docs, total, err := h.documentService.List(c.Request.Context(), documentFilter(c), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/documents/:id
// @Summary Get document by ID
// @Description Get document details including OCR text, translation and summary
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=domain.Document} "Document details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	docID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Update handles PATCH /api/v1/documents/:id
// @Summary Update document notes and tags
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.Document} "Updated document"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Router /documents/{id} [patch]
func (h *DocumentHandler) Update(c *gin.Context) {
	docID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), service.UpdateDocumentInput{
		DocumentID: docID,
		Notes:      req.Notes,
		Tags:       req.Tags,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// Delete handles DELETE /api/v1/documents/:id
// @Summary Delete a document
// @Description Delete the document row and its stored scan
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Document deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	docID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), docID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "document deleted"})
}

// Download handles GET /api/v1/documents/:id/download
// @Summary Get scan download URL
// @Description Get a time-limited URL for the original scan
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=DownloadURLResponse} "Download URL"
// @Failure 404 {object} ErrorResponseBody "Document or scan not found"
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	docID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	url, err := h.documentService.GetDownloadURL(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, DownloadURLResponse{DocumentID: docID.String(), DownloadURL: url})
}

// Export handles GET /api/v1/documents/export
// @Summary Export documents as CSV
// @Description Download the filtered document list as a UTF-8 CSV (with BOM for Excel)
// @Tags documents
// @Produce text/csv
// @Param saved_only query bool false "Only documents saved as land records"
// @Param status query string false "Processing status"
// @Param district query string false "Filter by district"
// @Param khasra query string false "Filter by khasra number"
// @Success 200 {file} binary "CSV file"
// @Router /documents/export [get]
func (h *DocumentHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.documentService.ExportCSV(c.Request.Context(), documentFilter(c), &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename("land_records", "csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Extract handles POST /api/v1/documents/:id/extract
// @Summary Extract land record fields
// @Description Pattern-match khasra number, owner, area and location out of the document text
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=domain.LandRecordExtraction} "Extracted fields"
// @Failure 400 {object} ErrorResponseBody "Document has no text"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Router /documents/{id}/extract [post]
func (h *DocumentHandler) Extract(c *gin.Context) {
	docID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	extraction, err := h.documentService.Extract(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, extraction)
}

// Save handles POST /api/v1/documents/:id/save
// @Summary Save a land record
// @Description Confirm extracted fields, mark the document saved and register the parcel (and owner)
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body SaveRecordRequest false "Confirmed fields; empty fields fall back to extraction"
// @Success 201 {object} Response{data=service.SaveRecordResult} "Saved record"
// @Failure 400 {object} ErrorResponseBody "Document not processed or khasra number missing"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Router /documents/{id}/save [post]
func (h *DocumentHandler) Save(c *gin.Context) {
	docID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	var req SaveRecordRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
			return
		}
	}

	result, err := h.documentService.Save(c.Request.Context(), service.SaveRecordInput{
		DocumentID:   docID,
		KhasraNumber: req.KhasraNumber,
		OwnerName:    req.OwnerName,
		AreaKanal:    req.AreaKanal,
		AreaMarla:    req.AreaMarla,
		Mauza:        req.Mauza,
		Tehsil:       req.Tehsil,
		District:     req.District,
		LandType:     req.LandType,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// Summarize handles POST /api/v1/documents/:id/summarize
// @Summary Summarize a document
// @Description Generate and store an AI summary of the document text
// @Tags ai
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body SummarizeRequest false "Summary kind (default general)"
// @Success 200 {object} Response{data=service.SummaryResult} "Summary"
// @Failure 400 {object} ErrorResponseBody "Unknown kind or no text"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 503 {object} ErrorResponseBody "Summarizer not configured"
// @Router /documents/{id}/summarize [post]
func (h *DocumentHandler) Summarize(c *gin.Context) {
	docID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	var req SummarizeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
			return
		}
	}

	result, err := h.summaryService.Summarize(c.Request.Context(), docID, domain.SummaryKind(req.Kind))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Ask handles POST /api/v1/documents/:id/ask
// @Summary Ask about a document
// @Description Answer a free-form question using the document text
// @Tags ai
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body AskRequest true "Question"
// @Success 200 {object} Response{data=service.AnswerResult} "Answer"
// @Failure 400 {object} ErrorResponseBody "Missing question or no text"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 503 {object} ErrorResponseBody "Summarizer not configured"
// @Router /documents/{id}/ask [post]
func (h *DocumentHandler) Ask(c *gin.Context) {
	docID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "question is required")
		return
	}

	result, err := h.summaryService.Ask(c.Request.Context(), docID, req.Question)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

func parseDocumentID(c *gin.Context) (uuid.UUID, bool) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return uuid.Nil, false
	}
	return docID, true
}

func documentFilter(c *gin.Context) port.DocumentFilter {
	savedOnly, _ := strconv.ParseBool(c.Query("saved_only"))
	return port.DocumentFilter{
		SavedOnly: savedOnly,
		Status:    domain.ProcessingStatus(c.Query("status")),
		District:  c.Query("district"),
		Khasra:    c.Query("khasra"),
	}
}
