package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landrecords/internal/service"
)

// NewsletterHandler handles newsletter subscription endpoints.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// Subscribe handles POST /api/v1/newsletter/subscribe
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "Email address"
// @Success 201 {object} Response{data=domain.NewsletterSubscriber} "Subscribed"
// @Failure 400 {object} ErrorResponseBody "Invalid email"
// @Failure 409 {object} ErrorResponseBody "Already subscribed"
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "email is required")
		return
	}

	sub, err := h.newsletterService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, sub)
}

// Unsubscribe handles POST /api/v1/newsletter/unsubscribe
// @Summary Unsubscribe from the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "Email address"
// @Success 200 {object} Response{data=MessageResponse} "Unsubscribed"
// @Failure 400 {object} ErrorResponseBody "Invalid email"
// @Failure 404 {object} ErrorResponseBody "Email not subscribed"
// @Router /newsletter/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "email is required")
		return
	}

	if err := h.newsletterService.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "unsubscribed"})
}
