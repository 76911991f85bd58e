package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workshop_jobs/internal/domain/entities"
	mock_interfaces "workshop_jobs/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListParts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIPartCatalog(ctrl)
	h := NewCatalogHandler(catalog)

	r := gin.New()
	r.GET("/v1/catalog/parts", h.ListParts)

	catalog.EXPECT().List().Return([]entities.CatalogPart{
		{Name: "Brake Pads", Category: entities.PartCategoryOEM, Price: 3200, Source: entities.PartSourceInStock},
		{Name: "Clutch Plate", Category: entities.PartCategoryOEM, Price: 8900, Source: entities.PartSourceOrderNeeded, LeadTime: "3 days"},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/parts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(resp))
	}
	if resp[1]["leadTime"] != "3 days" {
		t.Fatalf("unexpected lead time: %v", resp[1]["leadTime"])
	}
}
