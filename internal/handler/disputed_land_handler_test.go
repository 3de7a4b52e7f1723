package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"landrecords/internal/domain"
	"landrecords/internal/handler"
	"landrecords/internal/service"
	"landrecords/mocks"
)

func TestDisputedLandHandler_List(t *testing.T) {
	svc := new(mocks.MockDisputedLandService)
	h := handler.NewDisputedLandHandler(svc)
	filter := domain.DisputedLandFilter{District: "Lahore", Status: "pending_court"}
	svc.On("List", mock.Anything, filter, 2, 25).
		Return(&service.DisputedLandPage{Lands: []domain.DisputedLand{}, Total: 30, Pages: 2, CurrentPage: 2}, nil)

	c, w := documentContext(http.MethodGet, "/api/v1/disputed-lands?district=Lahore&status=pending_court&page=2&per_page=25", "", "")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, 2.0, data["pages"])
	assert.Equal(t, 2.0, data["current_page"])
	svc.AssertExpectations(t)
}

func TestDisputedLandHandler_Create(t *testing.T) {
	svc := new(mocks.MockDisputedLandService)
	h := handler.NewDisputedLandHandler(svc)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateDisputedLandInput) bool {
		return in.KhasraNumber == "112" &&
			in.DisputeType == domain.DisputeRefugeeClaim &&
			string(in.Claimants) == `[{"name":"Ghulam Nabi"}]`
	})).Return(&domain.DisputedLand{ID: uuid.New(), KhasraNumber: "112", DisputeStatus: domain.DisputeStatusUnderReview}, nil)

	body := `{"khasra_number":"112","mauza":"Chak 12","dispute_type":"refugee_claim","claimants":[{"name":"Ghulam Nabi"}]}`
	c, w := documentContext(http.MethodPost, "/api/v1/disputed-lands", body, "")
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "under_review", data["dispute_status"])
	svc.AssertExpectations(t)
}

func TestDisputedLandHandler_Create_ValidationError(t *testing.T) {
	svc := new(mocks.MockDisputedLandService)
	h := handler.NewDisputedLandHandler(svc)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidDisputeType)

	c, w := documentContext(http.MethodPost, "/api/v1/disputed-lands", `{"khasra_number":"1","mauza":"x","dispute_type":"theft"}`, "")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DISPUTE_TYPE", errorCode(t, w))
}

func TestDisputedLandHandler_CreateBatch(t *testing.T) {
	svc := new(mocks.MockDisputedLandService)
	h := handler.NewDisputedLandHandler(svc)
	svc.On("CreateBatch", mock.Anything, mock.MatchedBy(func(in []service.CreateDisputedLandInput) bool {
		return len(in) == 2 && in[0].KhasraNumber == "1" && in[1].KhasraNumber == "2"
	})).Return(1, nil)

	body := `[{"khasra_number":"1","mauza":"a","dispute_type":"inheritance"},{"khasra_number":"2"}]`
	c, w := documentContext(http.MethodPost, "/api/v1/disputed-lands/batch", body, "")
	h.CreateBatch(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"created":1}}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestDisputedLandHandler_CreateBatch_BadBody(t *testing.T) {
	for name, body := range map[string]string{
		"empty array": `[]`,
		"object":      `{"khasra_number":"1"}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := new(mocks.MockDisputedLandService)
			h := handler.NewDisputedLandHandler(svc)

			c, w := documentContext(http.MethodPost, "/api/v1/disputed-lands/batch", body, "")
			h.CreateBatch(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
			svc.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
		})
	}
}

func TestDisputedLandHandler_Update(t *testing.T) {
	t.Run("resolves case", func(t *testing.T) {
		svc := new(mocks.MockDisputedLandService)
		h := handler.NewDisputedLandHandler(svc)
		id := uuid.New()
		svc.On("Update", mock.Anything, mock.MatchedBy(func(in service.UpdateDisputedLandInput) bool {
			return in.ID == id && in.DisputeStatus != nil && *in.DisputeStatus == domain.DisputeStatusResolved && in.CaseNumber == nil
		})).Return(&domain.DisputedLand{ID: id, DisputeStatus: domain.DisputeStatusResolved}, nil)

		c, w := documentContext(http.MethodPut, "/", `{"dispute_status":"resolved"}`, id.String())
		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(mocks.MockDisputedLandService)
		h := handler.NewDisputedLandHandler(svc)
		id := uuid.New()
		svc.On("Update", mock.Anything, mock.Anything).Return(nil, domain.ErrDisputedLandNotFound)

		c, w := documentContext(http.MethodPut, "/", `{"case_number":"LHR-1"}`, id.String())
		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "DISPUTED_LAND_NOT_FOUND", errorCode(t, w))
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := new(mocks.MockDisputedLandService)
		h := handler.NewDisputedLandHandler(svc)

		c, w := documentContext(http.MethodPut, "/", `{}`, "17")
		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_ID", errorCode(t, w))
	})
}

func TestDisputedLandHandler_Delete(t *testing.T) {
	svc := new(mocks.MockDisputedLandService)
	h := handler.NewDisputedLandHandler(svc)
	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(nil)

	c, w := documentContext(http.MethodDelete, "/", "", id.String())
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestDisputedLandHandler_Lookups(t *testing.T) {
	svc := new(mocks.MockDisputedLandService)
	h := handler.NewDisputedLandHandler(svc)
	svc.On("Districts", mock.Anything).Return([]string{"Budgam", "Lahore"}, nil)
	svc.On("Tehsils", mock.Anything, "Budgam").Return([]string{"Chadoora"}, nil)
	svc.On("MapData", mock.Anything, "Budgam", "").Return([]domain.DisputedLandMapPoint{{KhasraNumber: "78", Latitude: 33.9, Longitude: 74.7}}, nil)
	svc.On("Stats", mock.Anything).Return(&domain.DisputedLandStats{TotalDisputes: 3, PartitionAffected: 1}, nil)

	c, w := documentContext(http.MethodGet, "/api/v1/disputed-lands/districts", "", "")
	h.Districts(c)
	assert.Equal(t, []interface{}{"Budgam", "Lahore"}, decode(t, w).Data)

	c, w = documentContext(http.MethodGet, "/api/v1/disputed-lands/tehsils?district=Budgam", "", "")
	h.Tehsils(c)
	assert.Equal(t, []interface{}{"Chadoora"}, decode(t, w).Data)

	c, w = documentContext(http.MethodGet, "/api/v1/disputed-lands/map-data?district=Budgam", "", "")
	h.MapData(c)
	assert.Len(t, decode(t, w).Data, 1)

	c, w = documentContext(http.MethodGet, "/api/v1/disputed-lands/stats", "", "")
	h.Stats(c)
	stats := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, 3.0, stats["total_disputes"])

	svc.AssertExpectations(t)
}
