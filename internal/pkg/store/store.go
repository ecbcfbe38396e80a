package store

import (
	"context"

	"github.com/uhastre/EV-app/internal/domain"
	"github.com/uhastre/EV-app/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store — читающий доступ к представлениям базы evcar. Ядро ничего не
// пишет обратно; пустые результаты — данные, а не ошибка.
type Store interface {
	ListRegions(ctx context.Context, includeAll bool) ([]string, error)
	ListDistricts(ctx context.Context, region string) ([]string, error)
	ListChargerRows(ctx context.Context, opts ListChargerRowsOpts) ([]domain.ChargerRow, error)
	GetRegionCenter(ctx context.Context, region string) (*domain.Point, error)
	ListDistrictCenters(ctx context.Context, region string) ([]domain.DistrictCenter, error)
	GetUseTime(ctx context.Context, stationID int64) (string, error)
	NationwideSummary(ctx context.Context) ([]domain.NationwideRow, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
