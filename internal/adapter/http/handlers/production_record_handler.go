package handlers

import (
	response "bitumen_production/internal/adapter/http/dto/response"
	"bitumen_production/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProductionRecordHandler struct {
	usecase usecase.IProductionRecordUseCase
}

func NewProductionRecordHandler(uc usecase.IProductionRecordUseCase) *ProductionRecordHandler {
	return &ProductionRecordHandler{usecase: uc}
}

// GetByID godoc
// @Summary      Production record with its full cost breakdown
// @Tags         production-records
// @Produce      json
// @Param        id   path      string  true  "Production record ID"
// @Success      200  {object}  response.ProductionRecordResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /production-records/{id} [get]
func (h *ProductionRecordHandler) GetByID(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProductionRecord(rec))
}
