package station

import (
	"fmt"
	"strings"

	"github.com/uhastre/EV-app/internal/domain"
)

// Центр Кореи — запасной центр карты, когда координат нет вовсе.
const (
	fallbackLat = 36.5
	fallbackLon = 127.9

	zoomDefault  = 13
	zoomSelected = 17
)

type markerStyle struct {
	substr string
	color  string
	icon   string
}

// Порядок проверок значим: "7kw단독" должен опережать "7kw".
var markerStyles = []markerStyle{
	{"7kw단독", "darkpurple", "battery-quarter"},
	{"7kw", "orange", "battery-quarter"},
	{"11kw단독", "green", "battery-half"},
	{"14kw단독", "lightblue", "plug"},
	{"50kw", "blue", "car"},
	{"100kw단독", "pink", "battery-full"},
	{"100kw동시", "darkred", "bolt"},
	{"200kw동시", "cadetblue", "charging-station"},
}

const (
	fallbackColor = "gray"
	fallbackIcon  = "question"
)

// MarkerColor и MarkerIcon сопоставляют строку "тип(мощность kW)" стилю
// маркера по вхождению подстроки без пробелов и регистра.
func MarkerColor(typeString string) string {
	if s, ok := matchStyle(typeString); ok {
		return s.color
	}
	return fallbackColor
}

func MarkerIcon(typeString string) string {
	if s, ok := matchStyle(typeString); ok {
		return s.icon
	}
	return fallbackIcon
}

func matchStyle(typeString string) (markerStyle, bool) {
	t := strings.ReplaceAll(strings.ToLower(typeString), " ", "")
	for _, s := range markerStyles {
		if strings.Contains(t, s.substr) {
			return s, true
		}
	}
	return markerStyle{}, false
}

// BuildMapView собирает карту: маркер на каждую станцию сводки, центр —
// выбранная станция, иначе среднее по видимой странице, иначе центр страны.
// При фокусе на станции карта приближена.
func BuildMapView(all, visible []domain.StationSummary, clickedID int64) domain.MapView {
	view := domain.MapView{Markers: make([]domain.MapMarker, 0, len(all))}

	for _, s := range all {
		typeString := fmt.Sprintf("%s(%skW)", s.ChargerTypes, s.Capacities)
		view.Markers = append(view.Markers, domain.MapMarker{
			StationID:    s.StationID,
			StationName:  s.StationName,
			Latitude:     s.Latitude,
			Longitude:    s.Longitude,
			ChargerCount: s.ChargerCount,
			Capacities:   s.Capacities,
			Color:        MarkerColor(typeString),
			Icon:         markerIconFor(typeString, s.StationID == clickedID),
			Selected:     s.StationID == clickedID,
		})
	}

	view.CenterLat, view.CenterLon, view.Zoom = mapCenter(all, visible, clickedID)
	return view
}

func markerIconFor(typeString string, selected bool) string {
	if selected {
		return "star"
	}
	return MarkerIcon(typeString)
}

func mapCenter(all, visible []domain.StationSummary, clickedID int64) (lat, lon float64, zoom int) {
	if clickedID != 0 {
		for _, s := range all {
			if s.StationID == clickedID {
				return s.Latitude, s.Longitude, zoomSelected
			}
		}
	}

	if len(visible) > 0 {
		var sumLat, sumLon float64
		for _, s := range visible {
			sumLat += s.Latitude
			sumLon += s.Longitude
		}
		n := float64(len(visible))
		return sumLat / n, sumLon / n, zoomDefault
	}

	return fallbackLat, fallbackLon, zoomDefault
}
