package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetRegions(ctx echo.Context) error {
	includeAll, err := strconv.ParseBool(ctx.QueryParams().Get("include_all"))
	if err != nil {
		includeAll = true
	}

	regions, err := c.stations.Regions(ctx.Request().Context(), includeAll)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, regions)
}

func (c *Controller) GetDistricts(ctx echo.Context) error {
	region := ctx.Param("region")

	districts, err := c.stations.Districts(ctx.Request().Context(), region)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, districts)
}

// GetNearestDistricts — районы региона, отсортированные по удалённости от его
// центра. Если центр региона неизвестен, порядок алфавитный.
func (c *Controller) GetNearestDistricts(ctx echo.Context) error {
	region := ctx.Param("region")

	districts, err := c.stations.NearestDistricts(ctx.Request().Context(), region)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, districts)
}
