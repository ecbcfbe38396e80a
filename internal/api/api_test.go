package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uhastre/EV-app/internal/domain"
	"github.com/uhastre/EV-app/internal/pkg/store"
	"github.com/uhastre/EV-app/internal/service/station"
)

type stubStore struct{}

func (stubStore) ListRegions(ctx context.Context, includeAll bool) ([]string, error) {
	return nil, nil
}

func (stubStore) ListDistricts(ctx context.Context, region string) ([]string, error) {
	return nil, nil
}

func (stubStore) ListChargerRows(ctx context.Context, opts store.ListChargerRowsOpts) ([]domain.ChargerRow, error) {
	return nil, nil
}

func (stubStore) GetRegionCenter(ctx context.Context, region string) (*domain.Point, error) {
	return nil, nil
}

func (stubStore) ListDistrictCenters(ctx context.Context, region string) ([]domain.DistrictCenter, error) {
	return nil, nil
}

func (stubStore) GetUseTime(ctx context.Context, stationID int64) (string, error) {
	return "", nil
}

func (stubStore) NationwideSummary(ctx context.Context) ([]domain.NationwideRow, error) {
	return nil, nil
}

func TestServe_ReturnsAfterShutdown(t *testing.T) {
	svc, err := NewAPIService(stubStore{}, station.Config{
		CacheDir:   t.TempDir(),
		RowTTL:     time.Minute,
		SummaryTTL: time.Minute,
		MapTTL:     time.Minute,
	})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		// Остановка через Shutdown — штатный возврат, не Fatal.
		svc.Serve("127.0.0.1:0")
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, svc.Shutdown(context.Background()))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}
