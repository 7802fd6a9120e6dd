package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/service"
	"github.com/travia-app/travia-backend/internal/util"
)

type DestinationHandler struct {
	catalog *service.CatalogService
	tree    *service.DestinationTreeService
}

func RegisterDestinations(e *echo.Echo, catalog *service.CatalogService, tree *service.DestinationTreeService) {
	handler := &DestinationHandler{catalog: catalog, tree: tree}

	public := e.Group("/api/destinations")
	public.GET("", handler.getTree)
	public.GET("/countries", handler.listCountries)
	public.GET("/countries/:id", handler.getCountry)
	public.GET("/cities", handler.listCities)
	public.GET("/cities/:id", handler.getCity)
	public.GET("/tours", handler.listTours)
	public.GET("/tours/:id", handler.getTour)
}

// getTree serves the legacy continent tree. An empty catalog is an empty
// array, the same non-fatal case as "nothing found".
func (h *DestinationHandler) getTree(c echo.Context) error {
	tree, err := h.tree.Build(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load destinations"))
	}
	return c.JSON(http.StatusOK, tree)
}

func (h *DestinationHandler) listCountries(c echo.Context) error {
	page, limit := parsePageQuery(c)
	filter := domain.CountryListFilter{Search: strings.TrimSpace(c.QueryParam("search"))}

	result, err := h.catalog.ListCountries(c.Request().Context(), filter, page, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list countries"))
	}
	return c.JSON(http.StatusOK, result)
}

func (h *DestinationHandler) getCountry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid country id"))
	}
	country, err := h.catalog.GetCountry(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCountryNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("country not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load country"))
	}
	return c.JSON(http.StatusOK, country)
}

func (h *DestinationHandler) listCities(c echo.Context) error {
	page, limit := parsePageQuery(c)
	filter := domain.CityListFilter{Search: strings.TrimSpace(c.QueryParam("search"))}
	if raw := strings.TrimSpace(c.QueryParam("country")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("country must be a valid id"))
		}
		filter.CountryID = &id
	}

	result, err := h.catalog.ListCities(c.Request().Context(), filter, page, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list cities"))
	}
	return c.JSON(http.StatusOK, result)
}

func (h *DestinationHandler) getCity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid city id"))
	}
	city, err := h.catalog.GetCity(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("city not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load city"))
	}
	return c.JSON(http.StatusOK, city)
}

func (h *DestinationHandler) listTours(c echo.Context) error {
	page, limit := parsePageQuery(c)
	filter := domain.TourListFilter{Search: strings.TrimSpace(c.QueryParam("search"))}
	if raw := strings.TrimSpace(c.QueryParam("country")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("country must be a valid id"))
		}
		filter.CountryID = &id
	}
	if raw := strings.TrimSpace(c.QueryParam("city")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("city must be a valid id"))
		}
		filter.CityID = &id
	}

	result, err := h.catalog.ListTours(c.Request().Context(), filter, page, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list tours"))
	}
	return c.JSON(http.StatusOK, result)
}

func (h *DestinationHandler) getTour(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid tour id"))
	}
	tour, err := h.catalog.GetTour(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("tour not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load tour"))
	}
	return c.JSON(http.StatusOK, tour)
}

// parsePageQuery reads page and limit, tolerating anything malformed: bad
// values come back as zero and the catalog service falls back to the
// per-entity defaults.
func parsePageQuery(c echo.Context) (int, int) {
	page := 0
	limit := 0
	if v := strings.TrimSpace(c.QueryParam("page")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if v := strings.TrimSpace(c.QueryParam("limit")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return page, limit
}
