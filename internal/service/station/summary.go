package station

import (
	"sort"
	"strings"

	"github.com/uhastre/EV-app/internal/domain"
	"github.com/uhastre/EV-app/internal/pkg/normalize"
)

// Summarize сворачивает строки зарядок в сводки по station_id. Строки без
// координат отбрасываются до группировки: станция, у которой координат нет
// ни в одной строке, на карту попасть не может, поэтому счётчик зарядок
// считает только оставшиеся строки. Атрибуты уровня станции берутся из
// первой строки группы, порядок станций — порядок первого появления.
func Summarize(rows []domain.ChargerRow) []domain.StationSummary {
	groups := make(map[int64][]domain.ChargerRow)
	order := make([]int64, 0)

	for _, row := range rows {
		if !row.HasCoordinates() {
			continue
		}
		if _, ok := groups[row.StationID]; !ok {
			order = append(order, row.StationID)
		}
		groups[row.StationID] = append(groups[row.StationID], row)
	}

	summaries := make([]domain.StationSummary, 0, len(order))
	for _, id := range order {
		group := groups[id]
		first := group[0]

		types := make([]string, 0, len(group))
		caps := make([]string, 0, len(group))
		for _, row := range group {
			types = append(types, row.ChargerType)
			caps = append(caps, row.Capacity)
		}

		name := normalize.StationName(first.StationName)
		summaries = append(summaries, domain.StationSummary{
			StationID:      id,
			StationName:    name,
			CardTitle:      normalize.CardTitle(name, first.DistrictName),
			RegionName:     first.RegionName,
			DistrictName:   first.DistrictName,
			ShortAddress:   normalize.StripStationSuffix(first.Address, first.StationName),
			Latitude:       *first.Latitude,
			Longitude:      *first.Longitude,
			ChargerCount:   int64(len(group)),
			ChargerTypes:   joinSortedSet(types),
			Capacities:     joinSortedSet(caps),
			MaxSubsidyEV:   first.MaxSubsidyEV,
			MaxSubsidyMini: first.MaxSubsidyMini,
		})
	}

	return summaries
}

func joinSortedSet(values []string) string {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	unique := make([]string, 0, len(set))
	for v := range set {
		unique = append(unique, v)
	}
	sort.Strings(unique)
	return strings.Join(unique, ", ")
}
