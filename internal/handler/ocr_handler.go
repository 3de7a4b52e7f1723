package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"landrecords/internal/domain"
	"landrecords/internal/export"
	"landrecords/internal/service"
)

const (
	dateLayout = "2006-01-02"
	xlsxMIME   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// OCRHandler handles scan upload, text recognition and ledger endpoints.
type OCRHandler struct {
	fileService       service.FileService
	processingService service.ProcessingService
	ledgerService     service.LedgerService
}

// NewOCRHandler creates a new OCRHandler.
func NewOCRHandler(fileService service.FileService, processingService service.ProcessingService, ledgerService service.LedgerService) *OCRHandler {
	return &OCRHandler{
		fileService:       fileService,
		processingService: processingService,
		ledgerService:     ledgerService,
	}
}

// Upload handles POST /api/v1/ocr/upload
// @Summary Upload a scan
// @Description Validate and store a scanned land record (PDF, JPG, PNG, TIFF, BMP, WEBP) without processing it
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Scan to upload"
// @Success 201 {object} Response{data=service.StoredFile} "File stored"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Router /ocr/upload [post]
func (h *OCRHandler) Upload(c *gin.Context) {
	stored, ok := h.storeUpload(c)
	if !ok {
		return
	}
	RespondCreated(c, stored)
}

// Process handles POST /api/v1/ocr/process
// @Summary Process a stored scan
// @Description Run OCR on a previously uploaded scan and record the attempt in the daily ledger
// @Tags ocr
// @Accept json
// @Produce json
// @Param request body ProcessStoredRequest true "Storage path returned by upload"
// @Success 200 {object} Response{data=service.ProcessingResult} "Recognized text"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Stored file not found"
// @Failure 422 {object} ErrorResponseBody "Unreadable document"
// @Failure 503 {object} ErrorResponseBody "OCR engine not configured"
// @Router /ocr/process [post]
func (h *OCRHandler) Process(c *gin.Context) {
	var req ProcessStoredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "storage_path is required")
		return
	}

	result, err := h.processingService.ProcessStored(c.Request.Context(), req.StoragePath)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// ProcessUpload handles POST /api/v1/ocr/process-upload
// @Summary Upload and process a scan
// @Description Store a scan and run OCR on it in one request
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Scan to process"
// @Success 201 {object} Response{data=service.ProcessingResult} "Recognized text"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "Unreadable document"
// @Failure 502 {object} ErrorResponseBody "OCR engine rejected the request"
// @Failure 503 {object} ErrorResponseBody "OCR engine not configured"
// @Failure 504 {object} ErrorResponseBody "OCR engine unreachable"
// @Router /ocr/process-upload [post]
func (h *OCRHandler) ProcessUpload(c *gin.Context) {
	stored, ok := h.storeUpload(c)
	if !ok {
		return
	}

	result, err := h.processingService.ProcessUpload(c.Request.Context(), service.ProcessUploadInput{
		Filename:    stored.Filename,
		Data:        stored.Data,
		StoragePath: stored.StoragePath,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// Stats handles GET /api/v1/ocr/stats
// @Summary Processing summary
// @Description Totals, success rate, average processing time and language distribution over a date range (default last 30 days)
// @Tags ocr
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} Response{data=domain.StatsSummary} "Ledger summary"
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Router /ocr/stats [get]
func (h *OCRHandler) Stats(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	summary, err := h.ledgerService.Summary(c.Request.Context(), from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// Daily handles GET /api/v1/ocr/stats/daily
// @Summary Daily ledger rows
// @Description Per-day processing counters over a date range (default last 30 days)
// @Tags ocr
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} Response{data=[]domain.ProcessingStats} "Ledger rows"
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Router /ocr/stats/daily [get]
func (h *OCRHandler) Daily(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	rows, err := h.ledgerService.ListRange(c.Request.Context(), from, to)
	if err != nil {
		HandleError(c, err)
		return
	}
	if rows == nil {
		rows = []domain.ProcessingStats{}
	}

	RespondOK(c, rows)
}

// ExportStats handles GET /api/v1/ocr/stats/export
// @Summary Export ledger as XLSX
// @Description Download the daily ledger and its summary as an Excel workbook
// @Tags ocr
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} binary "XLSX workbook"
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Router /ocr/stats/export [get]
func (h *OCRHandler) ExportStats(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.ledgerService.ExportWorkbook(c.Request.Context(), from, to, &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename("processing_stats", "xlsx")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

// storeUpload reads the multipart "file" field and stores it. On failure the
// error response has already been written.
func (h *OCRHandler) storeUpload(c *gin.Context) (*service.StoredFile, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return nil, false
	}
	defer func() { _ = file.Close() }()

	stored, err := h.fileService.Upload(c.Request.Context(), service.FileUploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return stored, true
}

// parseDateRange reads the from/to query params. Missing "to" is today (UTC),
// missing "from" is the default window before "to".
func parseDateRange(c *gin.Context) (from, to time.Time, ok bool) {
	to = time.Now().UTC()
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DATE", "to must be YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		to = t
	}
	y, m, d := to.Date()
	to = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	from = to.Add(-service.DefaultStatsWindow)
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DATE", "from must be YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		from = t
	}

	if to.Before(from) {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "'to' must not be before 'from'")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
