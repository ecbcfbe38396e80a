package chart

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/uhastre/EV-app/internal/domain"
	"github.com/uhastre/EV-app/internal/pkg/constants"
	"github.com/uhastre/EV-app/internal/service/station"
)

// Service готовит сгруппированные данные для графиков. Сам ничего не
// рисует: отдаёт подписи, счётчики и доли, рендер — забота клиента.
type Service struct {
	stations *station.Service
}

func NewChartService(stations *station.Service) *Service {
	return &Service{stations: stations}
}

// CountItem — одна колонка/долька: подпись, счётчик и доля в процентах
// с одним знаком после запятой.
type CountItem struct {
	Label string  `json:"label"`
	Count int64   `json:"count"`
	Share float64 `json:"share"`
}

const otherLabel = "기타"

// Лимиты Top-N повторяют исходные графики.
const (
	topCapacities = 6
	topTypes      = 5
	topFacilities = 8
	topDistricts  = 10
)

// StationCounts — число станций по регионам (вся страна) либо по районам
// выбранного региона: топ-10 плюс выбранный район, если он срезан.
func (s *Service) StationCounts(ctx context.Context, region, district string) ([]CountItem, error) {
	byDistrict := region != "" && region != constants.AllRegions

	scope := ""
	if byDistrict {
		scope = region
	}
	rows, err := s.stations.ChargerRows(ctx, scope, "")
	if err != nil {
		return nil, fmt.Errorf("ChargerRows: %w", err)
	}

	stationsPer := make(map[string]map[int64]struct{})
	order := make([]string, 0)
	for _, r := range rows {
		label := r.RegionName
		if byDistrict {
			label = r.DistrictName
		}
		if _, ok := stationsPer[label]; !ok {
			stationsPer[label] = make(map[int64]struct{})
			order = append(order, label)
		}
		stationsPer[label][r.StationID] = struct{}{}
	}

	items := make([]CountItem, 0, len(order))
	for _, label := range order {
		items = append(items, CountItem{Label: label, Count: int64(len(stationsPer[label]))})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })

	if byDistrict && len(items) > topDistricts {
		kept := items[:topDistricts]
		for _, it := range items[topDistricts:] {
			if it.Label == district {
				kept = append(kept, it)
				break
			}
		}
		items = kept
	}
	return items, nil
}

// CapacityDistribution / TypeDistribution / FacilityDistribution — счётчики
// зарядок по значению поля, топ-N с рулоном "기타" и долями.
func (s *Service) CapacityDistribution(ctx context.Context, region, district string) ([]CountItem, error) {
	return s.distribution(ctx, region, district, topCapacities, func(r domain.ChargerRow) string { return r.Capacity })
}

func (s *Service) TypeDistribution(ctx context.Context, region, district string) ([]CountItem, error) {
	return s.distribution(ctx, region, district, topTypes, func(r domain.ChargerRow) string { return r.ChargerType })
}

func (s *Service) FacilityDistribution(ctx context.Context, region, district string) ([]CountItem, error) {
	return s.distribution(ctx, region, district, topFacilities, func(r domain.ChargerRow) string { return r.FacilityMajor })
}

func (s *Service) distribution(ctx context.Context, region, district string, topN int, label func(domain.ChargerRow) string) ([]CountItem, error) {
	rows, err := s.stations.ChargerRows(ctx, region, district)
	if err != nil {
		return nil, fmt.Errorf("ChargerRows: %w", err)
	}
	return TopNWithOthers(rows, topN, label), nil
}

// TopNWithOthers считает зарядки по подписи, сортирует по убыванию и
// сворачивает хвост за topN в "기타". Доли считаются от общего итога.
func TopNWithOthers(rows []domain.ChargerRow, topN int, label func(domain.ChargerRow) string) []CountItem {
	counts := make(map[string]int64)
	order := make([]string, 0)
	for _, r := range rows {
		l := label(r)
		if _, ok := counts[l]; !ok {
			order = append(order, l)
		}
		counts[l]++
	}
	if len(order) == 0 {
		return nil
	}

	items := make([]CountItem, 0, len(order))
	for _, l := range order {
		items = append(items, CountItem{Label: l, Count: counts[l]})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })

	if len(items) > topN {
		var tail int64
		for _, it := range items[topN:] {
			tail += it.Count
		}
		items = append(items[:topN], CountItem{Label: otherLabel, Count: tail})
	}

	total := int64(len(rows))
	for i := range items {
		items[i].Share = sharePercent(items[i].Count, total)
	}
	return items
}

func sharePercent(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(count).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(1).
		InexactFloat64()
}

// SubsidyPoint — точка диаграммы "число зарядок против средней субсидии"
// по регионам страны.
type SubsidyPoint struct {
	RegionName   string   `json:"region_name"`
	ChargerCount int64    `json:"charger_count"`
	AvgSubsidyEV *float64 `json:"avg_subsidy_ev"`
}

func (s *Service) SubsidyScatter(ctx context.Context) ([]SubsidyPoint, error) {
	rows, err := s.stations.ChargerRows(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("ChargerRows: %w", err)
	}

	type agg struct {
		count int64
		sum   decimal.Decimal
		n     int64
	}
	regions := make(map[string]*agg)
	order := make([]string, 0)
	for _, r := range rows {
		a, ok := regions[r.RegionName]
		if !ok {
			a = &agg{}
			regions[r.RegionName] = a
			order = append(order, r.RegionName)
		}
		a.count++
		if r.MaxSubsidyEV != nil {
			a.sum = a.sum.Add(decimal.NewFromFloat(*r.MaxSubsidyEV))
			a.n++
		}
	}

	points := make([]SubsidyPoint, 0, len(order))
	for _, name := range order {
		a := regions[name]
		p := SubsidyPoint{RegionName: name, ChargerCount: a.count}
		if a.n > 0 {
			avg := a.sum.Div(decimal.NewFromInt(a.n)).Round(1).InexactFloat64()
			p.AvgSubsidyEV = &avg
		}
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].RegionName < points[j].RegionName })
	return points, nil
}

// RegionalSubsidy — сводка субсидий региона: максимум для легковых и
// минимум для малых, по строкам, дедуплицированным по станции и суммам.
type RegionalSubsidy struct {
	MaxSubsidyEV   *float64 `json:"max_subsidy_ev"`
	MinSubsidyMini *float64 `json:"min_subsidy_mini"`
}

func (s *Service) RegionalSubsidy(ctx context.Context, region string) (*RegionalSubsidy, error) {
	rows, err := s.stations.ChargerRows(ctx, region, "")
	if err != nil {
		return nil, fmt.Errorf("ChargerRows: %w", err)
	}

	type key struct {
		stationID int64
		ev        float64
		hasEV     bool
		mini      float64
		hasMini   bool
	}
	seen := make(map[key]struct{})

	result := &RegionalSubsidy{}
	for _, r := range rows {
		k := key{stationID: r.StationID}
		if r.MaxSubsidyEV != nil {
			k.ev, k.hasEV = *r.MaxSubsidyEV, true
		}
		if r.MaxSubsidyMini != nil {
			k.mini, k.hasMini = *r.MaxSubsidyMini, true
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		if k.hasEV && (result.MaxSubsidyEV == nil || k.ev > *result.MaxSubsidyEV) {
			ev := k.ev
			result.MaxSubsidyEV = &ev
		}
		if k.hasMini && (result.MinSubsidyMini == nil || k.mini < *result.MinSubsidyMini) {
			mini := k.mini
			result.MinSubsidyMini = &mini
		}
	}
	return result, nil
}
