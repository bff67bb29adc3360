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

// ConversionHandler exposes the kettle: preview, start, finish and batch lookup.
type ConversionHandler struct {
	usecase  usecase.IConversionUseCase
	observer Observer
}

func NewConversionHandler(uc usecase.IConversionUseCase, observer Observer) *ConversionHandler {
	return &ConversionHandler{usecase: uc, observer: observerOrNoop(observer)}
}

// Preview godoc
// @Summary      Price a conversion batch without starting it
// @Tags         conversion
// @Accept       json
// @Produce      json
// @Param        body  body      request.ConversionInputsRequest  true  "Batch inputs"
// @Success      200   {object}  response.ConversionPreviewResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /conversion/preview [post]
func (h *ConversionHandler) Preview(c *gin.Context) {
	var payload request.ConversionInputsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	sheet, err := h.usecase.Preview(c.Request.Context(), payload.ToInputs())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConversionSheet(sheet))
}

// Start godoc
// @Summary      Start a conversion batch (Idle -> Boiling)
// @Tags         conversion
// @Accept       json
// @Produce      json
// @Param        body  body      request.ConversionInputsRequest  true  "Batch inputs"
// @Success      201   {object}  response.StartConversionResponse
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /conversion/start [post]
func (h *ConversionHandler) Start(c *gin.Context) {
	var payload request.ConversionInputsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	batch, err := h.usecase.Start(c.Request.Context(), payload.ToInputs())
	if err != nil {
		appErr := mapError(err)
		if appErr.HTTPStatus == http.StatusUnprocessableEntity {
			observeFailure(h.observer, string(entities.ProductionKindConversion), err)
		}
		log.Printf("[conversion][handler] start failed code=%s err=%v", appErr.Code, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.observer.SetKettleBoiling(true)
	c.JSON(http.StatusCreated, response.StartConversionResponse{
		BatchID:           batch.ID,
		ProjectedUnitCost: batch.UnitCost.InexactFloat64(),
	})
}

// Finish godoc
// @Summary      Finish the boiling batch and credit BN-5 stock
// @Tags         conversion
// @Accept       json
// @Produce      json
// @Param        body  body      request.FinishConversionRequest  true  "Weighed output and split"
// @Success      200   {object}  response.FinishConversionResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /conversion/finish [post]
func (h *ConversionHandler) Finish(c *gin.Context) {
	var payload request.FinishConversionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Finish(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapError(err)
		if appErr.HTTPStatus == http.StatusUnprocessableEntity {
			observeFailure(h.observer, string(entities.ProductionKindConversion), err)
		}
		log.Printf("[conversion][handler] finish failed batch_id=%s code=%s err=%v", payload.BatchID, appErr.Code, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.observer.SetKettleBoiling(false)
	h.observer.ObserveRun(string(entities.ProductionKindConversion), "ok", res.UnitCost.InexactFloat64())
	c.JSON(http.StatusOK, response.FromFinishResult(res))
}

// GetBatch godoc
// @Summary      Get a conversion batch (boiling or archived)
// @Tags         conversion
// @Produce      json
// @Param        id   path      string  true  "Batch ID"
// @Success      200  {object}  response.ConversionBatchResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /conversion/batches/{id} [get]
func (h *ConversionHandler) GetBatch(c *gin.Context) {
	batch, err := h.usecase.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConversionBatch(batch))
}
