package handlers

import (
	"bitumen_production/internal/adapter/http/handlers/mocks"
	"bitumen_production/internal/domain/blending"
	"bitumen_production/internal/domain/costing"
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const blendBody = `{
	"blend": {"bn5AmountKg": 700, "fillerAmountKg": 100},
	"utilityCosts": {"electricityKwh": 10, "gasVolume": 5, "kraftPaperKg": 5, "bagCount": 20, "laborFlatCost": 50000},
	"extras": [{"name": " Pallets ", "quantity": 4, "unitPrice": 8000}],
	"packagingEntries": [{"packagingType": "BAG", "blendPortionKg": 780, "secondaryQty": 20}]
}`

func TestBlendSessionHandler_Recompute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("translates payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBlendSessionUseCase(ctrl)
		h := NewBlendSessionHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/blend-session/recompute", h.Recompute)

		uc.EXPECT().Recompute(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.BlendSessionCommand) (usecase.BlendSessionResult, error) {
			if !cmd.Blend.TotalKg().Equal(decimal.NewFromInt(800)) {
				t.Fatalf("unexpected blend %+v", cmd.Blend)
			}
			if len(cmd.Extras) != 1 || cmd.Extras[0].Name != "Pallets" {
				t.Fatalf("unexpected extras %+v", cmd.Extras)
			}
			if len(cmd.Entries) != 1 || cmd.Entries[0].Type != entities.PackagingBag || cmd.Entries[0].SecondaryQty != 20 {
				t.Fatalf("unexpected entries %+v", cmd.Entries)
			}
			return usecase.BlendSessionResult{
				SessionID: "s-1",
				Sheet: costing.BlendSheet{
					TotalCost: decimal.NewFromInt(674600),
					UnitCost:  decimal.NewFromInt(851),
				},
				Entries:     []entities.PackagingEntry{{ID: "e-1", Type: entities.PackagingBag, DerivedRopeGrams: decimal.NewFromInt(30)}},
				RemainingKg: decimal.NewFromInt(20),
			}, nil
		})

		w := postJSON(r, "/v1/blend-session/recompute", blendBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["unitCost"] != 851.0 || body["remainingKg"] != 20.0 {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("blend exceeded is 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBlendSessionUseCase(ctrl)
		h := NewBlendSessionHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/blend-session/recompute", h.Recompute)

		uc.EXPECT().Recompute(gomock.Any(), gomock.Any()).Return(usecase.BlendSessionResult{}, blending.ErrBlendExceeded)

		w := postJSON(r, "/v1/blend-session/recompute", blendBody)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "BLEND_EXCEEDED" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("extra without name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBlendSessionUseCase(ctrl)
		h := NewBlendSessionHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/blend-session/recompute", h.Recompute)

		w := postJSON(r, "/v1/blend-session/recompute", `{"blend":{"bn5AmountKg":1},"extras":[{"quantity":1}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBlendSessionHandler_Finalize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("insufficient stock names category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBlendSessionUseCase(ctrl)
		obs := &recordingObserver{}
		h := NewBlendSessionHandler(uc, obs)

		r := gin.New()
		r.POST("/v1/blend-session/finalize", h.Finalize)

		uc.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(entities.ProductionRecord{}, &entities.InsufficientStockError{Category: entities.CategoryMel})

		w := postJSON(r, "/v1/blend-session/finalize", blendBody)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "INSUFFICIENT_STOCK" || body.Details["category"] != "mel" {
			t.Fatalf("unexpected body %+v", body)
		}
		if len(obs.rejected) != 1 || obs.rejected[0] != "mel" || obs.runs[0] != "blend:rejected" {
			t.Fatalf("unexpected observations %+v", obs)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBlendSessionUseCase(ctrl)
		h := NewBlendSessionHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/blend-session/finalize", h.Finalize)

		uc.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(entities.ProductionRecord{ID: "r-9", Kind: entities.ProductionKindBlend, UnitCost: decimal.NewFromInt(811)}, nil)

		w := postJSON(r, "/v1/blend-session/finalize", blendBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["productionRecordId"] != "r-9" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}
