package station

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/uhastre/EV-app/internal/domain"
	"github.com/uhastre/EV-app/internal/pkg/constants"
	"github.com/uhastre/EV-app/internal/pkg/filecache"
	"github.com/uhastre/EV-app/internal/pkg/geoutil"
	"github.com/uhastre/EV-app/internal/pkg/paginate"
	"github.com/uhastre/EV-app/internal/pkg/store"
)

// Service — конвейер запроса: выбор региона → строки (через кэш) →
// сводка → фильтр → пагинация. Состояния между запросами не держит,
// кроме кэшей; выбор пользователя приходит параметрами.
type Service struct {
	store store.Store

	rows      *filecache.Cache[domain.ChargerRow]
	summaries *filecache.Cache[domain.StationSummary]
	maps      *filecache.Mem[domain.MapView]
}

type Config struct {
	CacheDir   string
	RowTTL     time.Duration
	SummaryTTL time.Duration
	MapTTL     time.Duration
}

func NewStationService(s store.Store, cfg Config) *Service {
	return &Service{
		store:     s,
		rows:      filecache.New[domain.ChargerRow](cfg.CacheDir, constants.CacheKindRows, cfg.RowTTL),
		summaries: filecache.New[domain.StationSummary](cfg.CacheDir, constants.CacheKindSummary, cfg.SummaryTTL),
		maps:      filecache.NewMem[domain.MapView](cfg.MapTTL),
	}
}

// cacheKey: пустой выбор — это сентинели "вся страна"/"все районы".
func cacheKey(region, district string) string {
	if region == "" {
		region = constants.AllRegions
	}
	if district == "" {
		district = constants.AllDistricts
	}
	return filecache.Key(region, district)
}

func (s *Service) Regions(ctx context.Context, includeAll bool) ([]string, error) {
	return s.store.ListRegions(ctx, includeAll)
}

func (s *Service) Districts(ctx context.Context, region string) ([]string, error) {
	return s.store.ListDistricts(ctx, region)
}

func (s *Service) UseTime(ctx context.Context, stationID int64) (string, error) {
	return s.store.GetUseTime(ctx, stationID)
}

func (s *Service) NationwideSummary(ctx context.Context) ([]domain.NationwideRow, error) {
	return s.store.NationwideSummary(ctx)
}

// ChargerRows — сырые строки выбора через дисковый кэш.
func (s *Service) ChargerRows(ctx context.Context, region, district string) ([]domain.ChargerRow, error) {
	return s.rows.GetOrCompute(ctx, cacheKey(region, district), func(ctx context.Context) ([]domain.ChargerRow, error) {
		opts := store.ListChargerRowsOpts{}
		if region != "" {
			opts.Region = &region
		}
		if district != "" {
			opts.District = &district
		}
		return s.store.ListChargerRows(ctx, opts)
	})
}

// Summaries — сводки станций выбора, отдельный ярус кэша поверх строк.
func (s *Service) Summaries(ctx context.Context, region, district string) ([]domain.StationSummary, error) {
	return s.summaries.GetOrCompute(ctx, cacheKey(region, district), func(ctx context.Context) ([]domain.StationSummary, error) {
		rows, err := s.ChargerRows(ctx, region, district)
		if err != nil {
			return nil, fmt.Errorf("ChargerRows: %w", err)
		}
		return Summarize(rows), nil
	})
}

// Page — страница списка станций вместе с картой и итогами выбора.
type Page struct {
	Region       string                  `json:"region"`
	District     string                  `json:"district"`
	StationCount int                     `json:"station_count"`
	ChargerCount int                     `json:"charger_count"`
	Page         int                     `json:"page"`
	TotalPages   int                     `json:"total_pages"`
	Stations     []domain.StationSummary `json:"stations"`
	Map          domain.MapView          `json:"map"`
}

func (s *Service) StationPage(ctx context.Context, region, district string, page, pageSize int, clickedID int64) (*Page, error) {
	rows, err := s.ChargerRows(ctx, region, district)
	if err != nil {
		return nil, fmt.Errorf("ChargerRows: %w", err)
	}
	summaries, err := s.Summaries(ctx, region, district)
	if err != nil {
		return nil, fmt.Errorf("Summaries: %w", err)
	}

	start, end := paginate.Slice(page, pageSize, len(summaries))
	visible := summaries[start:end]

	mapKey := fmt.Sprintf("%s_%d_%d", cacheKey(region, district), page, clickedID)
	view, err := s.maps.GetOrCompute(ctx, mapKey, func(context.Context) (domain.MapView, error) {
		return BuildMapView(summaries, visible, clickedID), nil
	})
	if err != nil {
		return nil, err
	}

	return &Page{
		Region:       region,
		District:     district,
		StationCount: uniqueStations(rows),
		ChargerCount: len(rows),
		Page:         clampPage(page, pageSize, len(summaries)),
		TotalPages:   paginate.Pages(len(summaries), pageSize),
		Stations:     visible,
		Map:          view,
	}, nil
}

// Filter — страница фильтра: сырые строки выбора через фильтры с
// пересборкой. Сводки здесь не участвуют, фильтр работает по строкам.
func (s *Service) Filter(ctx context.Context, region, district string, selectedTypes []string, capRange *CapacityRange) (*FilterResult, error) {
	rows, err := s.ChargerRows(ctx, region, district)
	if err != nil {
		return nil, fmt.Errorf("ChargerRows: %w", err)
	}

	result := FilterAndResummarize(rows, selectedTypes, capRange)
	return &result, nil
}

// SortedDistrictsByProximity — имена районов по возрастанию расстояния от
// опорной точки до центра района.
func (s *Service) SortedDistrictsByProximity(ctx context.Context, region string, refLat, refLon float64) ([]string, error) {
	centers, err := s.store.ListDistrictCenters(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("ListDistrictCenters: %w", err)
	}

	sort.SliceStable(centers, func(i, j int) bool {
		di := geoutil.Haversine(refLat, refLon, centers[i].Latitude, centers[i].Longitude)
		dj := geoutil.Haversine(refLat, refLon, centers[j].Latitude, centers[j].Longitude)
		return di < dj
	})

	names := make([]string, 0, len(centers))
	for _, c := range centers {
		names = append(names, c.DistrictName)
	}
	return names, nil
}

// NearestDistricts сортирует районы региона по близости к его центру.
// Без опорной точки деградирует до алфавитного списка.
func (s *Service) NearestDistricts(ctx context.Context, region string) ([]string, error) {
	center, err := s.store.GetRegionCenter(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("GetRegionCenter: %w", err)
	}
	if center == nil {
		districts, err := s.store.ListDistricts(ctx, region)
		if err != nil {
			return nil, fmt.Errorf("ListDistricts: %w", err)
		}
		// Обе ветки отдают голые имена районов, без сентинеля "전체".
		names := make([]string, 0, len(districts))
		for _, d := range districts {
			if d != constants.AllDistricts {
				names = append(names, d)
			}
		}
		return names, nil
	}
	return s.SortedDistrictsByProximity(ctx, region, center.Latitude, center.Longitude)
}

func uniqueStations(rows []domain.ChargerRow) int {
	seen := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		seen[row.StationID] = struct{}{}
	}
	return len(seen)
}

func clampPage(page, size, total int) int {
	last := paginate.Pages(total, size) - 1
	if last < 0 {
		return 0
	}
	if page < 0 {
		return 0
	}
	if page > last {
		return last
	}
	return page
}
