package chat

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type Handler struct {
	svc *Service
	log zerolog.Logger
}

func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/chat", h.Chat)
}

type chatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if req.Language == "" {
		req.Language = "en"
	}

	reply, err := h.svc.Ask(c.Request().Context(), req.Message, req.Language)
	if err != nil {
		h.log.Error().Err(err).Msg("chat completion failed")
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error":   "Failed to process your request. Please try again.",
			"message": "I'm sorry, there was an error processing your request. Please try again later.",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   reply,
		"language":  req.Language,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
