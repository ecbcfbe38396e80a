package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/uhastre/EV-app/internal/domain"
	"github.com/uhastre/EV-app/internal/pkg/constants"
	"github.com/uhastre/EV-app/internal/pkg/logger"
)

// GetRegionCenter отдаёт (nil, nil), когда у региона нет опорной точки:
// отсутствие координат — ожидаемое состояние, не ошибка.
func (s *store) GetRegionCenter(ctx context.Context, region string) (*domain.Point, error) {
	query := builder().Select("latitude", "longitude").
		From(tableRegionCenters).
		Where(sq.Eq{"region": region})

	var selected domain.Point
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		if errors.Is(wrapErr(err), constants.ErrDBNotFound) {
			return nil, nil
		}
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListDistrictCenters(ctx context.Context, region string) ([]domain.DistrictCenter, error) {
	query := builder().Select("d.district_name", "dc.latitude", "dc.longitude").
		From(tableDistricts + " d").
		Join(tableRegions + " r ON d.region_id = r.region_id").
		Join(tableDistrictCenters + " dc ON d.district_id = dc.district_id").
		Where(sq.Eq{"r.region": region})

	var selected []domain.DistrictCenter
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}
