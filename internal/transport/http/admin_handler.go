package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/travia-app/travia-backend/internal/domain"
	"github.com/travia-app/travia-backend/internal/service"
	"github.com/travia-app/travia-backend/internal/util"
)

type AdminHandler struct {
	admin   *service.AdminService
	stats   *service.StatsService
	regions *service.RegionService
}

func RegisterAdmin(e *echo.Echo, auth *service.AuthService, admin *service.AdminService, stats *service.StatsService, regions *service.RegionService) {
	handler := &AdminHandler{admin: admin, stats: stats, regions: regions}

	group := e.Group("/api/admin", RequireAuth(auth), RequireAdmin(auth))

	group.GET("/stats", handler.getStats)
	group.GET("/users", handler.listUsers)
	group.GET("/bookings", handler.listBookings)

	group.GET("/countries", handler.listCountries)
	group.POST("/countries", handler.createCountry)
	group.PUT("/countries/:id", handler.updateCountry)
	group.DELETE("/countries/:id", handler.deleteCountry)

	group.GET("/cities", handler.listCities)
	group.POST("/cities", handler.createCity)
	group.PUT("/cities/:id", handler.updateCity)
	group.DELETE("/cities/:id", handler.deleteCity)

	group.GET("/tours", handler.listTours)
	group.POST("/tours", handler.createTour)
	group.PUT("/tours/:id", handler.updateTour)
	group.DELETE("/tours/:id", handler.deleteTour)

	group.GET("/regions", handler.listRegions)
	group.POST("/regions", handler.createRegion)
	group.POST("/regions/:id/packages", handler.addPackage)
	group.PUT("/regions/:id/packages/:packageId", handler.updatePackage)
	group.DELETE("/regions/:id/packages/:packageId", handler.deletePackage)
}

func (h *AdminHandler) getStats(c echo.Context) error {
	stats, err := h.stats.GetDashboardStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load dashboard stats"))
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) listUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list users"))
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) listBookings(c echo.Context) error {
	bookings, err := h.admin.ListBookings(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list bookings"))
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *AdminHandler) listCountries(c echo.Context) error {
	countries, err := h.admin.ListCountries(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list countries"))
	}
	return c.JSON(http.StatusOK, countries)
}

func (h *AdminHandler) createCountry(c echo.Context) error {
	var country domain.Country
	if err := c.Bind(&country); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	created, err := h.admin.CreateCountry(c.Request().Context(), &country)
	if err != nil {
		return h.writeCatalogError(c, err, "unable to create country")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) updateCountry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid country id"))
	}
	var fields domain.CountryFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	updated, err := h.admin.UpdateCountry(c.Request().Context(), id, fields)
	if err != nil {
		return h.writeCatalogError(c, err, "unable to update country")
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) deleteCountry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid country id"))
	}
	if err := h.admin.DeleteCountry(c.Request().Context(), id); err != nil {
		return h.writeCatalogError(c, err, "unable to delete country")
	}
	return c.JSON(http.StatusOK, util.Message("country deleted"))
}

func (h *AdminHandler) listCities(c echo.Context) error {
	cities, err := h.admin.ListCities(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list cities"))
	}
	return c.JSON(http.StatusOK, cities)
}

func (h *AdminHandler) createCity(c echo.Context) error {
	var city domain.City
	if err := c.Bind(&city); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	created, err := h.admin.CreateCity(c.Request().Context(), &city)
	if err != nil {
		return h.writeCatalogError(c, err, "unable to create city")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) updateCity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid city id"))
	}
	var fields domain.CityFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	updated, err := h.admin.UpdateCity(c.Request().Context(), id, fields)
	if err != nil {
		return h.writeCatalogError(c, err, "unable to update city")
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) deleteCity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid city id"))
	}
	if err := h.admin.DeleteCity(c.Request().Context(), id); err != nil {
		return h.writeCatalogError(c, err, "unable to delete city")
	}
	return c.JSON(http.StatusOK, util.Message("city deleted"))
}

func (h *AdminHandler) listTours(c echo.Context) error {
	tours, err := h.admin.ListTours(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list tours"))
	}
	return c.JSON(http.StatusOK, tours)
}

func (h *AdminHandler) createTour(c echo.Context) error {
	var tour domain.Tour
	if err := c.Bind(&tour); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	created, err := h.admin.CreateTour(c.Request().Context(), &tour)
	if err != nil {
		return h.writeCatalogError(c, err, "unable to create tour")
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) updateTour(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid tour id"))
	}
	var fields domain.TourFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	updated, err := h.admin.UpdateTour(c.Request().Context(), id, fields)
	if err != nil {
		return h.writeCatalogError(c, err, "unable to update tour")
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) deleteTour(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid tour id"))
	}
	if err := h.admin.DeleteTour(c.Request().Context(), id); err != nil {
		return h.writeCatalogError(c, err, "unable to delete tour")
	}
	return c.JSON(http.StatusOK, util.Message("tour deleted"))
}

func (h *AdminHandler) listRegions(c echo.Context) error {
	regions, err := h.regions.ListRegions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list regions"))
	}
	return c.JSON(http.StatusOK, regions)
}

func (h *AdminHandler) createRegion(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	region, err := h.regions.CreateRegion(c.Request().Context(), body.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegionExists):
			return c.JSON(http.StatusConflict, util.Error("region already exists"))
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, util.Error(validationMessage(err)))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to create region"))
		}
	}
	return c.JSON(http.StatusCreated, region)
}

func (h *AdminHandler) addPackage(c echo.Context) error {
	regionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid region id"))
	}
	var pkg domain.RegionPackage
	if err := c.Bind(&pkg); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	region, err := h.regions.AddPackage(c.Request().Context(), regionID, pkg)
	if err != nil {
		return h.writeRegionError(c, err, "unable to add package")
	}
	return c.JSON(http.StatusCreated, region)
}

func (h *AdminHandler) updatePackage(c echo.Context) error {
	regionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid region id"))
	}
	packageID, err := uuid.Parse(c.Param("packageId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid package id"))
	}
	var fields domain.RegionPackageFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	region, err := h.regions.UpdatePackage(c.Request().Context(), regionID, packageID, fields)
	if err != nil {
		return h.writeRegionError(c, err, "unable to update package")
	}
	return c.JSON(http.StatusOK, region)
}

func (h *AdminHandler) deletePackage(c echo.Context) error {
	regionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid region id"))
	}
	packageID, err := uuid.Parse(c.Param("packageId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid package id"))
	}
	region, err := h.regions.DeletePackage(c.Request().Context(), regionID, packageID)
	if err != nil {
		return h.writeRegionError(c, err, "unable to delete package")
	}
	return c.JSON(http.StatusOK, region)
}

func (h *AdminHandler) writeCatalogError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrCountryNotFound):
		return c.JSON(http.StatusNotFound, util.Error("country not found"))
	case errors.Is(err, service.ErrCityNotFound):
		return c.JSON(http.StatusNotFound, util.Error("city not found"))
	case errors.Is(err, service.ErrTourNotFound):
		return c.JSON(http.StatusNotFound, util.Error("tour not found"))
	case errors.Is(err, service.ErrTourCityMismatch):
		return c.JSON(http.StatusBadRequest, util.Error("city does not belong to the given country"))
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, util.Error(validationMessage(err)))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error(fallback))
	}
}

func (h *AdminHandler) writeRegionError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrRegionNotFound):
		return c.JSON(http.StatusNotFound, util.Error("region not found"))
	case errors.Is(err, service.ErrPackageNotFound):
		return c.JSON(http.StatusNotFound, util.Error("package not found"))
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, util.Error(validationMessage(err)))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error(fallback))
	}
}

// validationMessage surfaces the validator detail without leaking wrapped
// internals beyond the message text.
func validationMessage(err error) string {
	msg := err.Error()
	if cut := strings.TrimPrefix(msg, service.ErrValidation.Error()+": "); cut != msg {
		return cut
	}
	return "validation failed"
}
