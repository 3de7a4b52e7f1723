package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landrecords/internal/service"
)

// TranslationHandler handles translation and glossary endpoints.
type TranslationHandler struct {
	translationService service.TranslationService
}

// NewTranslationHandler creates a new TranslationHandler.
func NewTranslationHandler(translationService service.TranslationService) *TranslationHandler {
	return &TranslationHandler{translationService: translationService}
}

// TranslateText handles POST /api/v1/translate/text
// @Summary Translate free text
// @Description Machine-translate text and force canonical land-record glossary renderings
// @Tags translation
// @Accept json
// @Produce json
// @Param request body TranslateTextRequest true "Text and languages"
// @Success 200 {object} Response{data=service.TranslationResult} "Translation"
// @Failure 400 {object} ErrorResponseBody "Missing text"
// @Failure 502 {object} ErrorResponseBody "Translation incomplete"
// @Failure 503 {object} ErrorResponseBody "Translator not configured"
// @Router /translate/text [post]
func (h *TranslationHandler) TranslateText(c *gin.Context) {
	var req TranslateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}

	result, err := h.translationService.TranslateText(c.Request.Context(), req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// TranslateDocument handles POST /api/v1/translate/document/:id
// @Summary Translate a document
// @Description Translate a processed document's OCR text and store the result
// @Tags translation
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=service.TranslationResult} "Translation"
// @Failure 400 {object} ErrorResponseBody "Document not processed or has no text"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 502 {object} ErrorResponseBody "Translation incomplete"
// @Failure 503 {object} ErrorResponseBody "Translator not configured"
// @Router /translate/document/{id} [post]
func (h *TranslationHandler) TranslateDocument(c *gin.Context) {
	docID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	result, err := h.translationService.TranslateDocument(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// DetectTerms handles POST /api/v1/translate/terms
// @Summary Detect glossary terms
// @Description List the land-record glossary terms that occur in a text
// @Tags translation
// @Accept json
// @Produce json
// @Param request body DetectTermsRequest true "Text to scan"
// @Success 200 {object} Response{data=DetectedTermsResponse} "Detected terms"
// @Failure 400 {object} ErrorResponseBody "Missing text"
// @Router /translate/terms [post]
func (h *TranslationHandler) DetectTerms(c *gin.Context) {
	var req DetectTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}

	terms := h.translationService.DetectedTerms(req.Text)
	RespondOK(c, DetectedTermsResponse{Terms: terms, Count: len(terms)})
}

// Glossary handles GET /api/v1/translate/glossary
// @Summary Land-record glossary
// @Description List glossary glosses grouped by category
// @Tags translation
// @Produce json
// @Success 200 {object} Response{data=[]translation.Category} "Glossary categories"
// @Router /translate/glossary [get]
func (h *TranslationHandler) Glossary(c *gin.Context) {
	RespondOK(c, h.translationService.Glossary())
}
