package hospital

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	dir *Directory
}

func NewHandler(dir *Directory) *Handler {
	return &Handler{dir: dir}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/hospitals", h.ListHospitals)
	api.GET("/hospitals/:id", h.GetHospital)
}

// ListHospitals applies at most one filter per request, checked in order:
// type, emergency, specialty, then free-text search.
func (h *Handler) ListHospitals(c echo.Context) error {
	if t := c.QueryParam("type"); t != "" {
		parsed, ok := ParseType(t)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid type")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"hospitals": h.dir.ByType(parsed),
			"type":      parsed,
		})
	}

	if c.QueryParam("emergency") == "true" {
		return c.JSON(http.StatusOK, echo.Map{
			"hospitals": h.dir.WithEmergency(),
			"filter":    "emergency",
		})
	}

	if sp := c.QueryParam("specialty"); sp != "" {
		return c.JSON(http.StatusOK, echo.Map{
			"hospitals": h.dir.BySpecialty(sp),
			"specialty": sp,
		})
	}

	if q := c.QueryParam("q"); q != "" {
		return c.JSON(http.StatusOK, echo.Map{
			"hospitals": h.dir.Search(q),
			"query":     q,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"hospitals": h.dir.All()})
}

func (h *Handler) GetHospital(c echo.Context) error {
	found, err := h.dir.ByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "hospital not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"hospital": found})
}
