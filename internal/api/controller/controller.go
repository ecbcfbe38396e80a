package controller

import (
	"github.com/uhastre/EV-app/internal/service/chart"
	"github.com/uhastre/EV-app/internal/service/station"
)

type Controller struct {
	stations *station.Service
	charts   *chart.Service
}

func NewController(stations *station.Service, charts *chart.Service) *Controller {
	return &Controller{stations: stations, charts: charts}
}
