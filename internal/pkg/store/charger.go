package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/uhastre/EV-app/internal/domain"
	"github.com/uhastre/EV-app/internal/pkg/constants"
	"github.com/uhastre/EV-app/internal/pkg/logger"
)

// ListChargerRowsOpts — необязательные равенства; nil или сентинель
// ("전국"/"전체") означает отсутствие фильтра.
type ListChargerRowsOpts struct {
	Region   *string
	District *string
}

var chargerColumns = []string{
	"station_id", "station_name", "region_name", "district_name",
	"address", "latitude", "longitude", "charger_type", "capacity",
	"charger_local_id", "max_subsidy_ev", "max_subsidy_mini", "facility_major",
}

func (s *store) ListRegions(ctx context.Context, includeAll bool) ([]string, error) {
	query := builder().Select("DISTINCT region_name").
		From(viewStationCharger).
		OrderBy("region_name")

	var regions []string
	if err := s.pool.Selectx(ctx, &regions, query); err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	if includeAll {
		regions = append([]string{constants.AllRegions}, regions...)
	}
	return regions, nil
}

func (s *store) ListDistricts(ctx context.Context, region string) ([]string, error) {
	query := builder().Select("DISTINCT district_name").
		From(viewStationCharger).
		Where(sq.Eq{"region_name": region}).
		OrderBy("district_name")

	var districts []string
	if err := s.pool.Selectx(ctx, &districts, query); err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return append([]string{constants.AllDistricts}, districts...), nil
}

func (s *store) ListChargerRows(ctx context.Context, opts ListChargerRowsOpts) ([]domain.ChargerRow, error) {
	query := builder().Select(chargerColumns...).
		From(viewStationWithSubsidy)

	if opts.Region != nil && *opts.Region != constants.AllRegions {
		query = query.Where(sq.Eq{"region_name": *opts.Region})
	}
	if opts.District != nil && *opts.District != constants.AllDistricts {
		query = query.Where(sq.Eq{"district_name": *opts.District})
	}

	var selected []domain.ChargerRow
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetUseTime(ctx context.Context, stationID int64) (string, error) {
	query := builder().Select("DISTINCT available_time").
		From(tableChargersGenerated).
		Where(sq.Eq{"station_id": stationID}).
		Limit(1)

	var useTime string
	if err := s.pool.Getx(ctx, &useTime, query); err != nil {
		if errors.Is(wrapErr(err), constants.ErrDBNotFound) {
			return constants.UseTimeUnknown, nil
		}
		return "", wrapErr(err)
	}

	return useTime, nil
}

func (s *store) NationwideSummary(ctx context.Context) ([]domain.NationwideRow, error) {
	query := builder().Select("region_name", "station_count", "charger_count").
		From(viewNationwideSummary).
		OrderBy("region_name")

	var selected []domain.NationwideRow
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}
