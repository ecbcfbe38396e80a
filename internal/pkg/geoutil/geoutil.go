package geoutil

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Радиус сферы 6371 км, как в исходных данных центров районов.
const earthRadiusKM = 6371

// Haversine — расстояние по дуге большого круга в километрах.
// orb считает на сфере orb.EarthRadius, поэтому результат приводится
// к радиусу 6371 км. NaN во входе даёт NaN на выходе.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	d := geo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})
	return d / orb.EarthRadius * earthRadiusKM
}
