package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/parceltrack/carrier-gateway/internal/core/ports"
)

// RefreshDispatcher is the interface the handler uses to enqueue
// background refresh jobs.
type RefreshDispatcher interface {
	Enqueue(job ports.RefreshInput)
	EnqueueBatch(jobs []ports.RefreshInput)
}

// TrackingHandler handles HTTP requests for shipment tracking.
type TrackingHandler struct {
	service    ports.TrackingService
	dispatcher RefreshDispatcher
}

func NewTrackingHandler(service ports.TrackingService, dispatcher RefreshDispatcher) *TrackingHandler {
	return &TrackingHandler{service: service, dispatcher: dispatcher}
}

// Get handles GET /v1/tracking/:tracking_number.
//
// @Summary      Track a shipment
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path   string  true   "Carrier tracking number (e.g. 1Z12345E0291980793)"
// @Param        carrier          query  string  false  "Carrier code; auto-detected when omitted"  Enums(ups)
// @Param        refresh          query  bool    false  "Bypass the result cache"
// @Success      200  {object}  trackingResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/tracking/{tracking_number} [get]
func (h *TrackingHandler) Get(c echo.Context) error {
	refresh, _ := strconv.ParseBool(c.QueryParam("refresh"))

	detail, err := h.service.Track(c.Request().Context(), ports.TrackInput{
		TrackingNumber: c.Param("tracking_number"),
		Carrier:        c.QueryParam("carrier"),
		Refresh:        refresh,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTrackingResponse(detail))
}

// History handles GET /v1/tracking/:tracking_number/history.
//
// @Summary      Fetch history of a shipment
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path   string  true   "Carrier tracking number"
// @Param        limit            query  int     false  "Maximum number of snapshots (default 20)"
// @Success      200  {object}  historyResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/tracking/{tracking_number}/history [get]
func (h *TrackingHandler) History(c echo.Context) error {
	trackingNumber := c.Param("tracking_number")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	snapshots, err := h.service.History(c.Request().Context(), ports.HistoryInput{
		TrackingNumber: trackingNumber,
		Limit:          limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toHistoryResponse(trackingNumber, snapshots))
}

// Refresh handles POST /v1/tracking/refresh. It enqueues a batch of
// background re-fetches and returns 202.
//
// @Summary      Queue background refreshes
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      refreshRequest  true  "Tracking numbers to refresh"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/tracking/refresh [post]
func (h *TrackingHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	jobs := toRefreshInputs(req)
	h.dispatcher.EnqueueBatch(jobs)

	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "refresh queued",
		Count:   len(jobs),
	})
}
