package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/uhastre/EV-app/internal/pkg/constants"
	"github.com/uhastre/EV-app/internal/service/station"
)

const defaultPageSize = 9

func (c *Controller) GetStationPage(ctx echo.Context) error {
	region := ctx.QueryParams().Get("region")
	district := ctx.QueryParams().Get("district")

	// Нумерация страниц нулевая; выход за границы зажимается ниже.
	page, err := strconv.Atoi(ctx.QueryParams().Get("page"))
	if err != nil || page < 0 {
		page = 0
	}

	pageSize, err := strconv.Atoi(ctx.QueryParams().Get("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}

	var clickedID int64
	if raw := ctx.QueryParams().Get("clicked_station_id"); raw != "" {
		clickedID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return constants.ErrBadRequest
		}
	}

	resp, err := c.stations.StationPage(ctx.Request().Context(), region, district, page, pageSize, clickedID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

type filterRequest struct {
	Region   string   `json:"region" validate:"required"`
	District string   `json:"district"`
	Types    []string `json:"types"`
	MinKW    *float64 `json:"min_kw"`
	MaxKW    *float64 `json:"max_kw"`
}

func (c *Controller) FilterStations(ctx echo.Context) error {
	var req filterRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	// Диапазон применяется только когда заданы обе границы.
	var capRange *station.CapacityRange
	if req.MinKW != nil && req.MaxKW != nil {
		capRange = &station.CapacityRange{Min: *req.MinKW, Max: *req.MaxKW}
	}

	resp, err := c.stations.Filter(ctx.Request().Context(), req.Region, req.District, req.Types, capRange)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) GetNationwideSummary(ctx echo.Context) error {
	rows, err := c.stations.NationwideSummary(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetUseTime(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return constants.ErrBadRequest
	}

	useTime, err := c.stations.UseTime(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	type response struct {
		UseTime string `json:"use_time"`
	}

	return ctx.JSON(http.StatusOK, response{UseTime: useTime})
}
