package handlers

import (
	request "bitumen_production/internal/adapter/http/dto/request"
	response "bitumen_production/internal/adapter/http/dto/response"
	"bitumen_production/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StockHandler is the operator surface of the material ledger.
type StockHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewStockHandler(uc usecase.ILedgerUseCase) *StockHandler {
	return &StockHandler{usecase: uc}
}

// List godoc
// @Summary      Stock of every material category
// @Tags         stock
// @Produce      json
// @Success      200  {array}  response.StockResponse
// @Router       /stock [get]
func (h *StockHandler) List(c *gin.Context) {
	list, err := h.usecase.ListStock(c.Request.Context())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStockList(list))
}

// Get godoc
// @Summary      Stock of one category
// @Tags         stock
// @Produce      json
// @Param        category  path      string  true  "Material category"
// @Success      200       {object}  response.StockResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /stock/{category} [get]
func (h *StockHandler) Get(c *gin.Context) {
	s, err := h.usecase.GetStock(c.Request.Context(), c.Param("category"))
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStock(s))
}

// Credit godoc
// @Summary      Receive material into stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        category  path      string                      true  "Material category"
// @Param        body      body      request.StockCreditRequest  true  "Amount and optional purchase price"
// @Success      200       {object}  response.StockResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /stock/{category}/credit [post]
func (h *StockHandler) Credit(c *gin.Context) {
	var payload request.StockCreditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Credit(c.Request.Context(), c.Param("category"), payload.Amount, payload.UnitPrice)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStock(s))
}

// Debit godoc
// @Summary      Take material out of stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        category  path      string                     true  "Material category"
// @Param        body      body      request.StockDebitRequest  true  "Amount"
// @Success      200       {object}  response.StockResponse
// @Failure      422       {object}  pkg.HTTPError
// @Router       /stock/{category}/debit [post]
func (h *StockHandler) Debit(c *gin.Context) {
	var payload request.StockDebitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Debit(c.Request.Context(), c.Param("category"), payload.Amount)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStock(s))
}

// SetPrice godoc
// @Summary      Set the unit price of a category
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        category  path      string                    true  "Material category"
// @Param        body      body      request.UnitPriceRequest  true  "Unit price"
// @Success      200       {object}  response.StockResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /stock/{category}/price [put]
func (h *StockHandler) SetPrice(c *gin.Context) {
	var payload request.UnitPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SetUnitPrice(c.Request.Context(), c.Param("category"), payload.UnitPrice)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStock(s))
}
