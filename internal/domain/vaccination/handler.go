package vaccination

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionHeader carries the caller's session id. When absent the handler
// creates a session and echoes the generated id back in the response.
const SessionHeader = "X-Session-ID"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/vaccinations", h.ListVaccinations)
	api.GET("/vaccinations/status", h.ListStatuses)
	api.GET("/vaccinations/:id", h.GetVaccination)
	api.GET("/vaccinations/:id/status", h.GetStatus)
	api.GET("/vaccinations/:id/records", h.ListRecords)
	api.POST("/vaccinations/:id/records", h.AddRecord)
}

// session resolves the record store for the request and echoes the session id.
func (h *Handler) session(c echo.Context) RecordRepository {
	store, sid := h.svc.Session(c.Request().Header.Get(SessionHeader))
	c.Response().Header().Set(SessionHeader, sid)
	return store
}

func language(c echo.Context) string {
	if lang := c.QueryParam("language"); lang != "" {
		return lang
	}
	return "en"
}

// ListVaccinations mirrors the public schedule API: filter by id, essential,
// booster, or ageGroup; with no filter it returns the schedule grouped by age
// band plus the flat catalog.
func (h *Handler) ListVaccinations(c echo.Context) error {
	lang := language(c)
	cat := h.svc.Catalog()

	if id := c.QueryParam("id"); id != "" {
		def, err := cat.ByID(id)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "vaccination not found")
		}
		return c.JSON(http.StatusOK, echo.Map{"vaccination": def, "language": lang})
	}

	if c.QueryParam("essential") == "true" {
		return c.JSON(http.StatusOK, echo.Map{
			"vaccinations": cat.Essential(),
			"language":     lang,
			"filter":       "essential",
		})
	}

	if c.QueryParam("booster") == "true" {
		return c.JSON(http.StatusOK, echo.Map{
			"vaccinations": cat.RequiringBooster(),
			"language":     lang,
			"filter":       "booster",
		})
	}

	if ag := c.QueryParam("ageGroup"); ag != "" && ag != "all" {
		group, ok := ParseAgeGroup(ag)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid ageGroup")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"vaccinations": cat.ByAgeGroup(group),
			"ageGroup":     group,
			"language":     lang,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"schedule": echo.Map{
			"infants":     cat.ByAgeGroup(AgeInfant),
			"children":    cat.ByAgeGroup(AgeChild),
			"adolescents": cat.ByAgeGroup(AgeAdolescent),
			"adults":      cat.ByAgeGroup(AgeAdult),
			"elderly":     cat.ByAgeGroup(AgeElderly),
		},
		"allVaccinations": cat.All(),
		"language":        lang,
		"lastUpdated":     time.Now().UTC().Format(time.RFC3339),
		"source":          "Ministry of Health & Family Welfare",
	})
}

func (h *Handler) GetVaccination(c echo.Context) error {
	def, err := h.svc.Catalog().ByID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "vaccination not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"vaccination": def, "language": language(c)})
}

// ListStatuses returns the enriched per-vaccine view for the caller's session.
func (h *Handler) ListStatuses(c echo.Context) error {
	var group *AgeGroup
	if ag := c.QueryParam("ageGroup"); ag != "" && ag != "all" {
		g, ok := ParseAgeGroup(ag)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid ageGroup")
		}
		group = &g
	}
	store := h.session(c)
	statuses, err := h.svc.ListStatuses(c.Request().Context(), store, group, language(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"vaccinations": statuses, "language": language(c)})
}

// GetStatus evaluates a single vaccine for the caller's session.
func (h *Handler) GetStatus(c echo.Context) error {
	store := h.session(c)
	status, err := h.svc.Status(c.Request().Context(), store, c.Param("id"), language(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "vaccination not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, status)
}

type addRecordRequest struct {
	DateGiven   string `json:"date_given"`
	DoseNumber  int    `json:"dose_number"`
	Location    string `json:"location"`
	BatchNumber string `json:"batch_number"`
	Notes       string `json:"notes"`
}

func (h *Handler) AddRecord(c echo.Context) error {
	var req addRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := AddRecordInput{
		VaccineID:   c.Param("id"),
		DoseNumber:  req.DoseNumber,
		Location:    req.Location,
		BatchNumber: req.BatchNumber,
		Notes:       req.Notes,
	}
	if req.DateGiven != "" {
		given, err := parseDate(req.DateGiven)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_given: invalid date")
		}
		in.DateGiven = given
	}

	store := h.session(c)
	rec, err := h.svc.AddRecord(c.Request().Context(), store, in)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "vaccination not found")
		case errors.As(err, &verr):
			return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListRecords(c echo.Context) error {
	store := h.session(c)
	records, err := h.svc.Records(c.Request().Context(), store, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "vaccination not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"vaccine_id": c.Param("id"),
		"records":    records,
		"count":      len(records),
	})
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
