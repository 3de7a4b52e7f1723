package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"landrecords/internal/domain"
	"landrecords/internal/service"
)

// DisputedLandHandler handles land dispute case endpoints.
type DisputedLandHandler struct {
	disputedLandService service.DisputedLandService
}

// NewDisputedLandHandler creates a new DisputedLandHandler.
func NewDisputedLandHandler(disputedLandService service.DisputedLandService) *DisputedLandHandler {
	return &DisputedLandHandler{disputedLandService: disputedLandService}
}

// List handles GET /api/v1/disputed-lands
// @Summary List dispute cases
// @Tags disputed-lands
// @Produce json
// @Param district query string false "Filter by district"
// @Param tehsil query string false "Filter by tehsil"
// @Param dispute_type query string false "Filter by dispute type"
// @Param status query string false "Filter by dispute status"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size (max 500)" default(50)
// @Success 200 {object} Response{data=service.DisputedLandPage} "Page of dispute cases"
// @Router /disputed-lands [get]
func (h *DisputedLandHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))

	result, err := h.disputedLandService.List(c.Request.Context(), domain.DisputedLandFilter{
		District:    c.Query("district"),
		Tehsil:      c.Query("tehsil"),
		DisputeType: c.Query("dispute_type"),
		Status:      c.Query("status"),
	}, page, perPage)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// MapData handles GET /api/v1/disputed-lands/map-data
// @Summary Dispute map points
// @Description Slim projection of every geolocated dispute case for map rendering
// @Tags disputed-lands
// @Produce json
// @Param district query string false "Filter by district"
// @Param tehsil query string false "Filter by tehsil"
// @Success 200 {object} Response{data=[]domain.DisputedLandMapPoint} "Map points"
// @Router /disputed-lands/map-data [get]
func (h *DisputedLandHandler) MapData(c *gin.Context) {
	points, err := h.disputedLandService.MapData(c.Request.Context(), c.Query("district"), c.Query("tehsil"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, points)
}

// GetByID handles GET /api/v1/disputed-lands/:id
// @Summary Get dispute case by ID
// @Tags disputed-lands
// @Produce json
// @Param id path string true "Dispute case ID (UUID)"
// @Success 200 {object} Response{data=domain.DisputedLand} "Dispute case"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Dispute case not found"
// @Router /disputed-lands/{id} [get]
func (h *DisputedLandHandler) GetByID(c *gin.Context) {
	id, ok := parseDisputeID(c)
	if !ok {
		return
	}

	land, err := h.disputedLandService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, land)
}

// Create handles POST /api/v1/disputed-lands
// @Summary Create a dispute case
// @Tags disputed-lands
// @Accept json
// @Produce json
// @Param request body CreateDisputedLandRequest true "Dispute case"
// @Success 201 {object} Response{data=domain.DisputedLand} "Dispute case created"
// @Failure 400 {object} ErrorResponseBody "Missing fields or invalid type, status, date or claimants"
// @Router /disputed-lands [post]
func (h *DisputedLandHandler) Create(c *gin.Context) {
	var req CreateDisputedLandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	land, err := h.disputedLandService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, land)
}

// CreateBatch handles POST /api/v1/disputed-lands/batch
// @Summary Bulk import dispute cases
// @Description Insert many dispute cases in one transaction. Invalid rows are skipped.
// @Tags disputed-lands
// @Accept json
// @Produce json
// @Param request body []CreateDisputedLandRequest true "Dispute cases"
// @Success 201 {object} Response{data=BatchCreateResponse} "Rows inserted"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Router /disputed-lands/batch [post]
func (h *DisputedLandHandler) CreateBatch(c *gin.Context) {
	var reqs []CreateDisputedLandRequest
	if err := c.ShouldBindJSON(&reqs); err != nil || len(reqs) == 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "body must be a non-empty array of dispute cases")
		return
	}

	inputs := make([]service.CreateDisputedLandInput, len(reqs))
	for i := range reqs {
		inputs[i] = reqs[i].toInput()
	}

	created, err := h.disputedLandService.CreateBatch(c.Request.Context(), inputs)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, BatchCreateResponse{Created: created})
}

// Update handles PUT /api/v1/disputed-lands/:id
// @Summary Update a dispute case
// @Description Update status, description, claimants, location or hearing details. Moving to resolved stamps resolved_at once.
// @Tags disputed-lands
// @Accept json
// @Produce json
// @Param id path string true "Dispute case ID (UUID)"
// @Param request body UpdateDisputedLandRequest true "Fields to update"
// @Success 200 {object} Response{data=domain.DisputedLand} "Updated dispute case"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Dispute case not found"
// @Router /disputed-lands/{id} [put]
func (h *DisputedLandHandler) Update(c *gin.Context) {
	id, ok := parseDisputeID(c)
	if !ok {
		return
	}

	var req UpdateDisputedLandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	land, err := h.disputedLandService.Update(c.Request.Context(), service.UpdateDisputedLandInput{
		ID:                 id,
		DisputeStatus:      req.DisputeStatus,
		DisputeDescription: req.DisputeDescription,
		Claimants:          req.Claimants,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		CaseNumber:         req.CaseNumber,
		CourtJurisdiction:  req.CourtJurisdiction,
		LastHearingDate:    req.LastHearingDate,
		NextHearingDate:    req.NextHearingDate,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, land)
}

// Delete handles DELETE /api/v1/disputed-lands/:id
// @Summary Delete a dispute case
// @Tags disputed-lands
// @Produce json
// @Param id path string true "Dispute case ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Dispute case deleted"
// @Failure 404 {object} ErrorResponseBody "Dispute case not found"
// @Router /disputed-lands/{id} [delete]
func (h *DisputedLandHandler) Delete(c *gin.Context) {
	id, ok := parseDisputeID(c)
	if !ok {
		return
	}

	if err := h.disputedLandService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "disputed land deleted"})
}

// Stats handles GET /api/v1/disputed-lands/stats
// @Summary Dispute statistics
// @Tags disputed-lands
// @Produce json
// @Success 200 {object} Response{data=domain.DisputedLandStats} "Counts by type, status and district"
// @Router /disputed-lands/stats [get]
func (h *DisputedLandHandler) Stats(c *gin.Context) {
	stats, err := h.disputedLandService.Stats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}

// Districts handles GET /api/v1/disputed-lands/districts
// @Summary Districts with dispute cases
// @Tags disputed-lands
// @Produce json
// @Success 200 {object} Response{data=[]string} "District names"
// @Router /disputed-lands/districts [get]
func (h *DisputedLandHandler) Districts(c *gin.Context) {
	districts, err := h.disputedLandService.Districts(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, districts)
}

// Tehsils handles GET /api/v1/disputed-lands/tehsils
// @Summary Tehsils with dispute cases
// @Tags disputed-lands
// @Produce json
// @Param district query string false "Restrict to one district"
// @Success 200 {object} Response{data=[]string} "Tehsil names"
// @Router /disputed-lands/tehsils [get]
func (h *DisputedLandHandler) Tehsils(c *gin.Context) {
	tehsils, err := h.disputedLandService.Tehsils(c.Request.Context(), c.Query("district"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tehsils)
}

func parseDisputeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid disputed land ID")
		return uuid.Nil, false
	}
	return id, true
}

func (r *CreateDisputedLandRequest) toInput() service.CreateDisputedLandInput {
	return service.CreateDisputedLandInput{
		KhasraNumber:       r.KhasraNumber,
		Mauza:              r.Mauza,
		Tehsil:             r.Tehsil,
		District:           r.District,
		DisputeType:        r.DisputeType,
		DisputeStatus:      r.DisputeStatus,
		DisputeDescription: r.DisputeDescription,
		Claimants:          r.Claimants,
		Latitude:           r.Latitude,
		Longitude:          r.Longitude,
		AreaKanal:          r.AreaKanal,
		AreaMarla:          r.AreaMarla,
		LandType:           r.LandType,
		HistoricalOwner:    r.HistoricalOwner,
		PartitionImpact:    r.PartitionImpact,
		RedistributionYear: r.RedistributionYear,
		CaseNumber:         r.CaseNumber,
		FiledDate:          r.FiledDate,
		CourtJurisdiction:  r.CourtJurisdiction,
	}
}
