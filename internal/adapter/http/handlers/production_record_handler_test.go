package handlers

import (
	"bitumen_production/internal/adapter/http/handlers/mocks"
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestProductionRecordHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionRecordUseCase(ctrl)
		h := NewProductionRecordHandler(uc)

		r := gin.New()
		r.GET("/v1/production-records/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "r-404").Return(entities.ProductionRecord{}, usecase.ErrProductionRecordNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/production-records/r-404", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("conversion record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionRecordUseCase(ctrl)
		h := NewProductionRecordHandler(uc)

		r := gin.New()
		r.GET("/v1/production-records/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ProductionRecord{
			ID:       "r-1",
			Kind:     entities.ProductionKindConversion,
			SourceID: "b-1",
			UnitCost: decimal.NewFromInt(771),
			Movements: []entities.StockMovement{
				entities.DebitMovement(entities.CategoryBN3, decimal.NewFromInt(15000)),
				entities.CreditMovementAtPrice(entities.CategoryBN5, decimal.NewFromInt(10000), decimal.NewFromInt(771)),
			},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/production-records/r-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Kind      string `json:"kind"`
			Movements []struct {
				Category  string   `json:"category"`
				Delta     float64  `json:"delta"`
				UnitPrice *float64 `json:"unitPrice"`
			} `json:"movements"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Kind != "conversion" || len(body.Movements) != 2 {
			t.Fatalf("unexpected body %+v", body)
		}
		if body.Movements[0].Delta != -15000 || body.Movements[0].UnitPrice != nil {
			t.Fatalf("unexpected debit %+v", body.Movements[0])
		}
		if body.Movements[1].UnitPrice == nil || *body.Movements[1].UnitPrice != 771 {
			t.Fatalf("unexpected credit %+v", body.Movements[1])
		}
	})
}
