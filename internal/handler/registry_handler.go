package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"landrecords/internal/domain"
	"landrecords/internal/service"
)

// RegistryHandler handles farmer and land parcel endpoints.
type RegistryHandler struct {
	registryService service.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registryService service.RegistryService) *RegistryHandler {
	return &RegistryHandler{registryService: registryService}
}

// CreateFarmer handles POST /api/v1/farmers
// @Summary Register a farmer
// @Tags registry
// @Accept json
// @Produce json
// @Param request body CreateFarmerRequest true "Farmer details"
// @Success 201 {object} Response{data=domain.Farmer} "Farmer created"
// @Failure 400 {object} ErrorResponseBody "Name is required"
// @Router /farmers [post]
func (h *RegistryHandler) CreateFarmer(c *gin.Context) {
	var req CreateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	farmer, err := h.registryService.CreateFarmer(c.Request.Context(), service.CreateFarmerInput{
		NameLocal:   req.NameLocal,
		NameEnglish: req.NameEnglish,
		FatherName:  req.FatherName,
		Address:     req.Address,
		Tehsil:      req.Tehsil,
		District:    req.District,
		Phone:       req.Phone,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, farmer)
}

// ListFarmers handles GET /api/v1/farmers
// @Summary List farmers
// @Tags registry
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Param district query string false "Filter by district"
// @Success 200 {object} Response{data=[]domain.Farmer,meta=PagMeta} "List of farmers"
// @Router /farmers [get]
func (h *RegistryHandler) ListFarmers(c *gin.Context) {
	offset, limit := parsePagination(c)

	farmers, total, err := h.registryService.ListFarmers(c.Request.Context(), c.Query("district"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	if farmers == nil {
		farmers = []domain.Farmer{}
	}

	RespondPaginated(c, farmers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetFarmer handles GET /api/v1/farmers/:id
// @Summary Get farmer by ID
// @Tags registry
// @Produce json
// @Param id path string true "Farmer ID (UUID)"
// @Success 200 {object} Response{data=domain.Farmer} "Farmer"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Farmer not found"
// @Router /farmers/{id} [get]
func (h *RegistryHandler) GetFarmer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid farmer ID")
		return
	}

	farmer, err := h.registryService.GetFarmer(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, farmer)
}

// ListParcels handles GET /api/v1/parcels
// @Summary List land parcels
// @Tags registry
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Param khasra query string false "Filter by khasra number"
// @Success 200 {object} Response{data=[]domain.LandParcel,meta=PagMeta} "List of parcels"
// @Router /parcels [get]
func (h *RegistryHandler) ListParcels(c *gin.Context) {
	offset, limit := parsePagination(c)

	parcels, total, err := h.registryService.ListParcels(c.Request.Context(), c.Query("khasra"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	if parcels == nil {
		parcels = []domain.LandParcel{}
	}

	RespondPaginated(c, parcels, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetParcel handles GET /api/v1/parcels/:id
// @Summary Get land parcel by ID
// @Tags registry
// @Produce json
// @Param id path string true "Parcel ID (UUID)"
// @Success 200 {object} Response{data=domain.LandParcel} "Parcel"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Parcel not found"
// @Router /parcels/{id} [get]
func (h *RegistryHandler) GetParcel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid parcel ID")
		return
	}

	parcel, err := h.registryService.GetParcel(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, parcel)
}
