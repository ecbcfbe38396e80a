package domain

// MapMarker — одна станция на карте. Цвет и иконка выводятся из строки
// "тип(мощность kW)" по таблицам соответствия оригинальной легенды.
type MapMarker struct {
	StationID    int64   `json:"station_id"`
	StationName  string  `json:"station_name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ChargerCount int64   `json:"charger_count"`
	Capacities   string  `json:"capacities"`
	Color        string  `json:"color"`
	Icon         string  `json:"icon"`
	Selected     bool    `json:"selected"`
}

type MapView struct {
	CenterLat float64     `json:"center_lat"`
	CenterLon float64     `json:"center_lon"`
	Zoom      int         `json:"zoom"`
	Markers   []MapMarker `json:"markers"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
