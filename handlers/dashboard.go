package handlers

import (
	"law_console_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetDashboardStats returns the cached dashboard aggregates
func (a *API) GetDashboardStats(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Queries.DashboardStats())
}

// GetStatusBreakdown returns the cached status breakdown
func (a *API) GetStatusBreakdown(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Queries.StatusBreakdown())
}

// GetAreaBreakdown returns the cached area breakdown
func (a *API) GetAreaBreakdown(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Queries.AreaBreakdown())
}

// GetRecentCases returns the cached recency list
func (a *API) GetRecentCases(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Queries.Recent())
}

// GetPeriodStats returns the cached period-windowed breakdown selected by
// the "periodo" query parameter (daily, weekly, monthly or yearly)
func (a *API) GetPeriodStats(c echo.Context) error {
	period, err := services.ParsePeriod(c.QueryParam("periodo"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, a.Queries.ByPeriod(period))
}
