package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetStationCountChart(ctx echo.Context) error {
	region := ctx.QueryParams().Get("region")
	district := ctx.QueryParams().Get("district")

	items, err := c.charts.StationCounts(ctx.Request().Context(), region, district)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

func (c *Controller) GetCapacityChart(ctx echo.Context) error {
	region := ctx.QueryParams().Get("region")
	district := ctx.QueryParams().Get("district")

	items, err := c.charts.CapacityDistribution(ctx.Request().Context(), region, district)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

func (c *Controller) GetTypeChart(ctx echo.Context) error {
	region := ctx.QueryParams().Get("region")
	district := ctx.QueryParams().Get("district")

	items, err := c.charts.TypeDistribution(ctx.Request().Context(), region, district)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

func (c *Controller) GetFacilityChart(ctx echo.Context) error {
	region := ctx.QueryParams().Get("region")
	district := ctx.QueryParams().Get("district")

	items, err := c.charts.FacilityDistribution(ctx.Request().Context(), region, district)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

func (c *Controller) GetSubsidyScatter(ctx echo.Context) error {
	points, err := c.charts.SubsidyScatter(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, points)
}

func (c *Controller) GetRegionalSubsidy(ctx echo.Context) error {
	region := ctx.Param("region")

	subsidy, err := c.charts.RegionalSubsidy(ctx.Request().Context(), region)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, subsidy)
}
