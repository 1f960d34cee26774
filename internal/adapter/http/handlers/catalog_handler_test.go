package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"quotebot/internal/adapter/http/handlers/mocks"
	"quotebot/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/catalog", NewCatalogHandler(uc).ListCatalog)

		uc.EXPECT().All(gomock.Any()).Return([]entities.PricingEntry{
			{ItemType: "power_unit", Material: "PP650", UnitCost: 1200, UnitKind: entities.UnitKindUnit},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/catalog", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Count int `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Count != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/catalog", NewCatalogHandler(uc).ListCatalog)

		uc.EXPECT().All(gomock.Any()).Return(nil, errors.New("db down"))

		w := doJSON(r, http.MethodGet, "/v1/catalog", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)
	w := doJSON(r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
