package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/uhastre/EV-app/internal/api/controller"
	"github.com/uhastre/EV-app/internal/pkg/constants"
	"github.com/uhastre/EV-app/internal/pkg/logger"
	"github.com/uhastre/EV-app/internal/pkg/store"
	"github.com/uhastre/EV-app/internal/service/chart"
	"github.com/uhastre/EV-app/internal/service/station"
)

type APIService struct {
	router         *echo.Echo
	stationService *station.Service
	chartService   *chart.Service
}

// Serve блокируется до остановки сервера. Остановка через Shutdown —
// штатное завершение, падает только реальная ошибка старта.
func (svc *APIService) Serve(addr string) {
	err := svc.router.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info(context.Background(), "server stopped")
		return
	}
	logger.Fatal(context.Background(), err)
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store, stationCfg station.Config) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Logger.SetLevel(log.INFO)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSonicSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperKeyCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type"},
	}))

	svc.stationService = station.NewStationService(st, stationCfg)
	svc.chartService = chart.NewChartService(svc.stationService)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.stationService, svc.chartService)

	regions := api.Group("/regions")
	regions.GET("/list", cntrl.GetRegions)
	regions.GET("/:region/districts", cntrl.GetDistricts)
	regions.GET("/:region/districts/nearest", cntrl.GetNearestDistricts)

	stations := api.Group("/stations")
	stations.GET("", cntrl.GetStationPage)
	stations.POST("/filter", cntrl.FilterStations)
	stations.GET("/nationwide", cntrl.GetNationwideSummary)
	stations.GET("/:id/use-time", cntrl.GetUseTime)

	charts := api.Group("/charts")
	charts.GET("/stations", cntrl.GetStationCountChart)
	charts.GET("/capacities", cntrl.GetCapacityChart)
	charts.GET("/types", cntrl.GetTypeChart)
	charts.GET("/facilities", cntrl.GetFacilityChart)
	charts.GET("/subsidies", cntrl.GetSubsidyScatter)
	charts.GET("/subsidies/:region", cntrl.GetRegionalSubsidy)

	return svc, nil
}
