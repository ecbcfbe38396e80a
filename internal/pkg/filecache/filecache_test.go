package filecache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	StationID int64  `parquet:"station_id"`
	Name      string `parquet:"name"`
}

func TestKey(t *testing.T) {
	assert.Equal(t, "충청남도_논산시", Key("충청남도", "논산시"))
	assert.Equal(t, "충청_남도_논산시", Key(" 충청 남도 ", "논산시"))
	assert.Equal(t, "전국_전체", Key("전국", "전체"))
}

func TestGetOrCompute_Roundtrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	want := []testRow{
		{StationID: 1, Name: "(서울)휴게소"},
		{StationID: 2, Name: "논산 충전소"},
	}

	c := New[testRow](dir, "station", time.Hour)
	calls := 0
	compute := func(context.Context) ([]testRow, error) {
		calls++
		return want, nil
	}

	got, err := c.GetOrCompute(ctx, Key("충청남도", "논산시"), compute)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, calls)

	// Повторное чтение того же ключа не должно пересчитывать.
	got, err = c.GetOrCompute(ctx, Key("충청남도", "논산시"), compute)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, calls)
}

func TestGetOrCompute_DiskSurvivesProcess(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	want := []testRow{{StationID: 7, Name: "한밭수목원"}}

	first := New[testRow](dir, "station", time.Hour)
	_, err := first.GetOrCompute(ctx, "key", func(context.Context) ([]testRow, error) {
		return want, nil
	})
	require.NoError(t, err)

	// Новый экземпляр видит файл и не зовёт compute.
	second := New[testRow](dir, "station", time.Hour)
	got, err := second.GetOrCompute(ctx, "key", func(context.Context) ([]testRow, error) {
		return nil, errors.New("must not be called")
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetOrCompute_DiskDoesNotExpire(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	want := []testRow{{StationID: 3, Name: "논산시청"}}

	// Нулевое окно свежести: горячий ярус всегда протухший, но файл
	// на диске продолжает отдаваться без пересчёта.
	c := New[testRow](dir, "summary", 0)
	calls := 0
	compute := func(context.Context) ([]testRow, error) {
		calls++
		return want, nil
	}

	_, err := c.GetOrCompute(ctx, "k", compute)
	require.NoError(t, err)
	got, err := c.GetOrCompute(ctx, "k", compute)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, calls)
}

func TestGetOrCompute_ComputeErrorPropagates(t *testing.T) {
	c := New[testRow](t.TempDir(), "station", time.Hour)
	wantErr := errors.New("connection refused")

	_, err := c.GetOrCompute(context.Background(), "k", func(context.Context) ([]testRow, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	c := New[testRow](t.TempDir(), "station", time.Hour)

	calls := 0
	compute := func(context.Context) ([]testRow, error) {
		calls++
		return []testRow{{StationID: int64(calls)}}, nil
	}

	_, err := c.GetOrCompute(ctx, "k", compute)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate("k"))

	got, err := c.GetOrCompute(ctx, "k", compute)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, int64(2), got[0].StationID)
}

func TestMem(t *testing.T) {
	ctx := context.Background()
	m := NewMem[string](time.Hour)

	calls := 0
	compute := func(context.Context) (string, error) {
		calls++
		return "view", nil
	}

	v, err := m.GetOrCompute(ctx, "k", compute)
	require.NoError(t, err)
	assert.Equal(t, "view", v)

	_, err = m.GetOrCompute(ctx, "k", compute)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
