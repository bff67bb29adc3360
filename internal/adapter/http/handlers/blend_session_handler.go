package handlers

import (
	request "bitumen_production/internal/adapter/http/dto/request"
	response "bitumen_production/internal/adapter/http/dto/response"
	"bitumen_production/internal/domain/entities"
	"bitumen_production/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BlendSessionHandler prices and finalizes BN-5 + Mel packaging runs.
type BlendSessionHandler struct {
	usecase  usecase.IBlendSessionUseCase
	observer Observer
}

func NewBlendSessionHandler(uc usecase.IBlendSessionUseCase, observer Observer) *BlendSessionHandler {
	return &BlendSessionHandler{usecase: uc, observer: observerOrNoop(observer)}
}

// Recompute godoc
// @Summary      Price a blend session (stateless)
// @Tags         blend-session
// @Accept       json
// @Produce      json
// @Param        body  body      request.BlendSessionRequest  true  "Blend, utilities, extras and entries"
// @Success      200   {object}  response.BlendSessionResponse
// @Failure      422   {object}  pkg.HTTPError
// @Router       /blend-session/recompute [post]
func (h *BlendSessionHandler) Recompute(c *gin.Context) {
	var payload request.BlendSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Recompute(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBlendSession(res))
}

// Finalize godoc
// @Summary      Finalize a blend session: debit materials and record production
// @Tags         blend-session
// @Accept       json
// @Produce      json
// @Param        body  body      request.BlendSessionRequest  true  "Blend, utilities, extras and entries"
// @Success      201   {object}  response.FinalizeBlendResponse
// @Failure      422   {object}  pkg.HTTPError
// @Router       /blend-session/finalize [post]
func (h *BlendSessionHandler) Finalize(c *gin.Context) {
	var payload request.BlendSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Finalize(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapError(err)
		if appErr.HTTPStatus == http.StatusUnprocessableEntity {
			observeFailure(h.observer, string(entities.ProductionKindBlend), err)
		}
		log.Printf("[blend][handler] finalize failed code=%s err=%v", appErr.Code, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.observer.ObserveRun(string(entities.ProductionKindBlend), "ok", rec.UnitCost.InexactFloat64())
	c.JSON(http.StatusCreated, response.FinalizeBlendResponse{
		ProductionRecordID: rec.ID,
		UnitCost:           rec.UnitCost.InexactFloat64(),
	})
}
