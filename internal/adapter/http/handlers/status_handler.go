package handlers

import (
	response "bitumen_production/internal/adapter/http/dto/response"
	"bitumen_production/internal/usecase"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// pollIntervalHeader tells polling viewers how often to come back.
const pollIntervalHeader = "X-Poll-Interval"

type StatusHandler struct {
	usecase      usecase.IStatusFeedUseCase
	observer     Observer
	pollInterval time.Duration
}

func NewStatusHandler(uc usecase.IStatusFeedUseCase, observer Observer) *StatusHandler {
	return &StatusHandler{usecase: uc, observer: observerOrNoop(observer)}
}

// SetPollInterval advertises the suggested polling interval on Active responses.
// Zero disables the header.
func (h *StatusHandler) SetPollInterval(d time.Duration) {
	h.pollInterval = d
}

// Active godoc
// @Summary      Current kettle status, polled by viewers
// @Tags         conversion
// @Produce      json
// @Success      200  {object}  response.ProcessStatusResponse
// @Router       /conversion/active [get]
func (h *StatusHandler) Active(c *gin.Context) {
	st, err := h.usecase.Current(c.Request.Context())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.observer.SetKettleBoiling(!st.IsIdle())
	if h.pollInterval > 0 {
		c.Header(pollIntervalHeader, strconv.Itoa(int(h.pollInterval/time.Second)))
	}
	c.JSON(http.StatusOK, response.FromProcessStatus(st))
}

// Stream godoc
// @Summary      Server-sent kettle status, one event per transition
// @Tags         conversion
// @Produce      text/event-stream
// @Success      200  {object}  response.ProcessStatusResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /conversion/active/stream [get]
func (h *StatusHandler) Stream(c *gin.Context) {
	statuses, err := h.usecase.Watch(c.Request.Context())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[status][handler] stream opened remote=%s", c.ClientIP())
	c.Stream(func(w io.Writer) bool {
		st, ok := <-statuses
		if !ok {
			return false
		}
		c.SSEvent("status", response.FromProcessStatus(st))
		return true
	})
	log.Printf("[status][handler] stream closed remote=%s", c.ClientIP())
}
