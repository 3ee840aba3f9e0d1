package alert

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	feed *Feed
}

func NewHandler(feed *Feed) *Handler {
	return &Handler{feed: feed}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/health-alerts", h.ListAlerts)
}

func (h *Handler) ListAlerts(c echo.Context) error {
	location := c.QueryParam("location")
	alerts := h.feed.ForLocation(location)
	if location == "" {
		location = "default"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"alerts":      alerts,
		"location":    location,
		"lastUpdated": time.Now().UTC().Format(time.RFC3339),
	})
}
