package handlers

import (
	"bitumen_production/internal/adapter/http/handlers/mocks"
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newStockRouter(h *StockHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/stock", h.List)
	r.GET("/v1/stock/:category", h.Get)
	r.POST("/v1/stock/:category/credit", h.Credit)
	r.POST("/v1/stock/:category/debit", h.Debit)
	r.PUT("/v1/stock/:category/price", h.SetPrice)
	return r
}

func TestStockHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().ListStock(gomock.Any()).Return([]entities.MaterialStock{
			{Category: entities.CategoryBN3, QuantityOnHand: decimal.NewFromInt(20000), UnitPrice: decimal.NewFromInt(500)},
			{Category: entities.CategoryBN5},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stock", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["quantityOnHand"] != 20000.0 || body[1]["category"] != "bn5" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().GetStock(gomock.Any(), "asphalt").Return(entities.MaterialStock{}, usecase.ErrInvalidCategory)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stock/asphalt", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("credit with price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().Credit(gomock.Any(), "bn3", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, amount decimal.Decimal, price decimal.NullDecimal) (entities.MaterialStock, error) {
				if !amount.Equal(decimal.NewFromInt(100)) || !price.Valid || !price.Decimal.Equal(decimal.NewFromInt(1000)) {
					t.Fatalf("unexpected credit amount=%s price=%v", amount, price)
				}
				return entities.MaterialStock{Category: entities.CategoryBN3, QuantityOnHand: decimal.NewFromInt(400), UnitPrice: decimal.NewFromInt(700)}, nil
			})

		w := postJSON(r, "/v1/stock/bn3/credit", `{"amount":100,"unitPrice":1000}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("credit without price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().Credit(gomock.Any(), "bag", gomock.Any(), decimal.NullDecimal{}).Return(entities.MaterialStock{Category: entities.CategoryBag}, nil)

		w := postJSON(r, "/v1/stock/bag/credit", `{"amount":5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("debit below zero is 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().Debit(gomock.Any(), "mel", gomock.Any()).Return(entities.MaterialStock{}, &entities.InsufficientStockError{Category: entities.CategoryMel})

		w := postJSON(r, "/v1/stock/mel/debit", `{"amount":1000}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("set price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newStockRouter(NewStockHandler(uc))

		uc.EXPECT().SetUnitPrice(gomock.Any(), "gas", gomock.Any()).Return(entities.MaterialStock{Category: entities.CategoryGas, UnitPrice: decimal.NewFromInt(1800)}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/stock/gas/price", bytes.NewBufferString(`{"unitPrice":"1800"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["unitPrice"] != 1800.0 {
			t.Fatalf("unexpected body %v", body)
		}
	})
}
