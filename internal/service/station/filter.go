package station

import (
	"fmt"
	"sort"
	"strings"

	"github.com/uhastre/EV-app/internal/domain"
	"github.com/uhastre/EV-app/internal/pkg/normalize"
)

// CapacityRange — включительный диапазон [Min, Max] в кВт.
type CapacityRange struct {
	Min float64
	Max float64
}

// FilterResult — станции после фильтров плюс гистограмма доступных
// мощностей, которой UI рисует выбор диапазона.
type FilterResult struct {
	Stations     []domain.FilteredStation `json:"stations"`
	Histogram    domain.CapacityHistogram `json:"histogram"`
	StationCount int                      `json:"station_count"`
	ChargerCount int                      `json:"charger_count"`
}

// FilterAndResummarize — конвейер фильтра: типы → гистограмма → диапазон
// мощности → пересборка по нормализованному имени станции. Строки без
// координат отбрасываются до группировки, как и в Summarize. Пустой список
// типов и nil-диапазон пропускают всё; набор station_id тогда совпадает
// с нефильтрованной сводкой.
func FilterAndResummarize(rows []domain.ChargerRow, selectedTypes []string, capRange *CapacityRange) FilterResult {
	located := make([]domain.ChargerRow, 0, len(rows))
	for _, row := range rows {
		if row.HasCoordinates() {
			located = append(located, row)
		}
	}

	typed := FilterByType(located, selectedTypes)
	hist := Histogram(typed)
	final := FilterByCapacity(typed, capRange)

	stations := Resummarize(final)
	return FilterResult{
		Stations:     stations,
		Histogram:    hist,
		StationCount: len(stations),
		ChargerCount: len(final),
	}
}

// FilterByType оставляет строки, у которых хотя бы одна компонента
// составного типа ("DC콤보+AC3상") входит в выбранный набор.
func FilterByType(rows []domain.ChargerRow, selectedTypes []string) []domain.ChargerRow {
	if len(selectedTypes) == 0 {
		return rows
	}

	set := make(map[string]struct{}, len(selectedTypes))
	for _, t := range selectedTypes {
		set[strings.TrimSpace(t)] = struct{}{}
	}

	matched := make([]domain.ChargerRow, 0, len(rows))
	for _, row := range rows {
		for _, part := range strings.Split(row.ChargerType, "+") {
			if _, ok := set[strings.TrimSpace(part)]; ok {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

// FilterByCapacity оставляет строки с распознанной мощностью внутри
// диапазона. Строки без числа в поле мощности при заданном диапазоне
// отпадают: "нет значения" — это не ноль.
func FilterByCapacity(rows []domain.ChargerRow, capRange *CapacityRange) []domain.ChargerRow {
	if capRange == nil {
		return rows
	}

	matched := make([]domain.ChargerRow, 0, len(rows))
	for _, row := range rows {
		kw, ok := ExtractKW(row.Capacity)
		if ok && kw >= capRange.Min && kw <= capRange.Max {
			matched = append(matched, row)
		}
	}
	return matched
}

// Histogram собирает различимые значения мощности по возрастанию. Строится
// после фильтра по типам и до фильтра по диапазону, чтобы селектор
// показывал всё доступное. Пустой результат — состояние "нет данных о
// мощности", не ошибка.
func Histogram(rows []domain.ChargerRow) domain.CapacityHistogram {
	seen := make(map[float64]struct{})
	for _, row := range rows {
		if kw, ok := ExtractKW(row.Capacity); ok {
			seen[kw] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return domain.CapacityHistogram{}
	}

	kws := make([]float64, 0, len(seen))
	for kw := range seen {
		kws = append(kws, kw)
	}
	sort.Float64s(kws)

	buckets := make([]domain.CapacityBucket, 0, len(kws))
	for _, kw := range kws {
		tier, color := capacityTier(kw)
		buckets = append(buckets, domain.CapacityBucket{KW: kw, Tier: tier, Color: color})
	}

	return domain.CapacityHistogram{
		Buckets: buckets,
		MinKW:   kws[0],
		MaxKW:   kws[len(kws)-1],
		Fixed:   len(kws) == 1,
	}
}

func capacityTier(kw float64) (domain.CapacityTier, string) {
	switch {
	case kw < 50:
		return domain.TierLow, "#AED9E0"
	case kw <= 100:
		return domain.TierMid, "#B9E3C6"
	default:
		return domain.TierHigh, "#F9D3A7"
	}
}

// Resummarize пересобирает отфильтрованные строки в станции, но уже по
// нормализованному имени (полноадресная гранулярность страницы фильтра),
// со счётчиками вида "DC콤보 (3기)" по типам и "100kW (2기)" по мощности.
func Resummarize(rows []domain.ChargerRow) []domain.FilteredStation {
	type group struct {
		first      domain.ChargerRow
		typeCounts map[string]int
		typeOrder  []string
		capCounts  map[float64]int
	}

	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, row := range rows {
		name := normalize.StationName(row.StationName)
		g, ok := groups[name]
		if !ok {
			g = &group{
				first:      row,
				typeCounts: make(map[string]int),
				capCounts:  make(map[float64]int),
			}
			groups[name] = g
			order = append(order, name)
		}

		if _, seen := g.typeCounts[row.ChargerType]; !seen {
			g.typeOrder = append(g.typeOrder, row.ChargerType)
		}
		g.typeCounts[row.ChargerType]++
		if kw, ok := ExtractKW(row.Capacity); ok {
			g.capCounts[kw]++
		}
	}

	stations := make([]domain.FilteredStation, 0, len(order))
	for _, name := range order {
		g := groups[name]
		stations = append(stations, domain.FilteredStation{
			StationID:    g.first.StationID,
			StationName:  name,
			Address:      normalize.StripStationSuffix(g.first.Address, g.first.StationName),
			ChargerTypes: formatTypeCounts(g.typeCounts, g.typeOrder),
			Capacities:   formatCapacityCounts(g.capCounts),
			Latitude:     g.first.Latitude,
			Longitude:    g.first.Longitude,
		})
	}
	return stations
}

// formatTypeCounts — по убыванию количества, при равенстве в порядке
// первого появления.
func formatTypeCounts(counts map[string]int, order []string) string {
	sorted := make([]string, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return counts[sorted[i]] > counts[sorted[j]]
	})

	parts := make([]string, 0, len(sorted))
	for _, t := range sorted {
		parts = append(parts, fmt.Sprintf("%s (%d기)", t, counts[t]))
	}
	return strings.Join(parts, ", ")
}

func formatCapacityCounts(counts map[float64]int) string {
	kws := make([]float64, 0, len(counts))
	for kw := range counts {
		kws = append(kws, kw)
	}
	sort.Float64s(kws)

	parts := make([]string, 0, len(kws))
	for _, kw := range kws {
		parts = append(parts, fmt.Sprintf("%dkW (%d기)", int(kw), counts[kw]))
	}
	return strings.Join(parts, ", ")
}
