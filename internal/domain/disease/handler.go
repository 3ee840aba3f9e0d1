package disease

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/diseases", h.ListDiseases)
	api.GET("/diseases/:id", h.GetDisease)
}

// ListDiseases resolves at most one filter per request, checked in order:
// id, category, severity, then free-text search. No filter returns the
// whole reference set.
func (h *Handler) ListDiseases(c echo.Context) error {
	lang := language(c)

	if id := c.QueryParam("id"); id != "" {
		d, err := h.catalog.ByID(id)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "disease not found")
		}
		return c.JSON(http.StatusOK, echo.Map{"disease": d, "language": lang})
	}

	if cat := c.QueryParam("category"); cat != "" {
		parsed, ok := ParseCategory(cat)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"diseases": h.catalog.ByCategory(parsed),
			"category": parsed,
			"language": lang,
		})
	}

	if sev := c.QueryParam("severity"); sev != "" {
		parsed, ok := ParseSeverity(sev)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid severity")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"diseases": h.catalog.BySeverity(parsed),
			"severity": parsed,
			"language": lang,
		})
	}

	if q := c.QueryParam("q"); q != "" {
		return c.JSON(http.StatusOK, echo.Map{
			"diseases": h.catalog.Search(q, lang),
			"query":    q,
			"language": lang,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"diseases": h.catalog.All(),
		"language": lang,
	})
}

func (h *Handler) GetDisease(c echo.Context) error {
	d, err := h.catalog.ByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "disease not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"disease": d, "language": language(c)})
}

func language(c echo.Context) string {
	if lang := c.QueryParam("language"); lang != "" {
		return lang
	}
	return "en"
}
