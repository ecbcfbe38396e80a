package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhastre/EV-app/internal/domain"
)

func TestExtractKW(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100kW", 100, true},
		{"급속(100kW)", 100, true},
		{"7.5kW", 7.5, true},
		{"50", 50, true},
		{"완속", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		kw, ok := ExtractKW(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, kw, "input %q", tc.in)
		}
	}
}

func TestFilterByType(t *testing.T) {
	rows := []domain.ChargerRow{
		row(1, 1, "DC콤보", "100kW"),
		row(2, 1, "AC완속", "7kW"),
		row(3, 1, "DC콤보+AC3상", "50kW"),
		row(4, 1, "DC차데모+AC3상", "50kW"),
	}

	t.Run("empty selection passes everything", func(t *testing.T) {
		assert.Len(t, FilterByType(rows, nil), 4)
	})

	t.Run("matches any plus-joined component", func(t *testing.T) {
		matched := FilterByType(rows, []string{"DC콤보"})
		require.Len(t, matched, 2)
		assert.Equal(t, int64(1), matched[0].StationID)
		assert.Equal(t, int64(3), matched[1].StationID)
	})

	t.Run("component match on shared type", func(t *testing.T) {
		matched := FilterByType(rows, []string{"AC3상"})
		require.Len(t, matched, 2)
	})
}

func TestFilterByCapacity(t *testing.T) {
	rows := []domain.ChargerRow{
		row(1, 1, "DC콤보", "50kW"),
		row(2, 1, "DC콤보", "100kW"),
		row(3, 1, "DC콤보", "200kW"),
		row(4, 1, "DC콤보", "완속"), // мощность не распознаётся
	}

	t.Run("nil range passes everything", func(t *testing.T) {
		assert.Len(t, FilterByCapacity(rows, nil), 4)
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		matched := FilterByCapacity(rows, &CapacityRange{Min: 50, Max: 100})
		require.Len(t, matched, 2)
		assert.Equal(t, int64(1), matched[0].StationID)
		assert.Equal(t, int64(2), matched[1].StationID)
	})

	t.Run("unparseable capacity excluded, not zero", func(t *testing.T) {
		matched := FilterByCapacity(rows, &CapacityRange{Min: 0, Max: 500})
		assert.Len(t, matched, 3)
	})
}

func TestHistogram(t *testing.T) {
	t.Run("ascending with tier colors", func(t *testing.T) {
		rows := []domain.ChargerRow{
			row(1, 1, "DC콤보", "200kW"),
			row(2, 1, "AC완속", "7kW"),
			row(3, 1, "DC콤보", "100kW"),
			row(4, 1, "DC콤보", "100kW"),
		}

		hist := Histogram(rows)
		require.Len(t, hist.Buckets, 3)
		assert.Equal(t, []float64{7, 100, 200}, []float64{hist.Buckets[0].KW, hist.Buckets[1].KW, hist.Buckets[2].KW})
		assert.Equal(t, domain.TierLow, hist.Buckets[0].Tier)
		assert.Equal(t, domain.TierMid, hist.Buckets[1].Tier)
		assert.Equal(t, domain.TierHigh, hist.Buckets[2].Tier)
		assert.Equal(t, "#AED9E0", hist.Buckets[0].Color)
		assert.Equal(t, 7.0, hist.MinKW)
		assert.Equal(t, 200.0, hist.MaxKW)
		assert.False(t, hist.Fixed)
	})

	t.Run("single value is a fixed degenerate range", func(t *testing.T) {
		hist := Histogram([]domain.ChargerRow{
			row(1, 1, "DC콤보", "100kW"),
			row(2, 1, "DC콤보", "100kW"),
		})
		assert.True(t, hist.Fixed)
		assert.Equal(t, hist.MinKW, hist.MaxKW)
	})

	t.Run("no parseable capacity is an empty state", func(t *testing.T) {
		hist := Histogram([]domain.ChargerRow{row(1, 1, "DC콤보", "완속")})
		assert.True(t, hist.Empty())
	})
}

func TestFilterAndResummarize_PassThroughKeepsStationSet(t *testing.T) {
	rows := []domain.ChargerRow{
		row(1, 1, "DC콤보", "100kW"),
		row(1, 2, "AC완속", "7kW"),
		row(2, 1, "DC차데모", "50kW"),
		row(3, 1, "DC콤보", "200kW"),
	}

	unfiltered := Summarize(rows)
	result := FilterAndResummarize(rows, nil, nil)

	want := make(map[int64]struct{})
	for _, s := range unfiltered {
		want[s.StationID] = struct{}{}
	}
	got := make(map[int64]struct{})
	for _, s := range result.Stations {
		got[s.StationID] = struct{}{}
	}
	assert.Equal(t, want, got)
	assert.Equal(t, len(rows), result.ChargerCount)
}

func TestFilterAndResummarize_DropsCoordinatelessRows(t *testing.T) {
	located := row(1, 1, "DC콤보", "100kW")
	hidden := row(9, 1, "AC완속", "7kW")
	hidden.Latitude = nil
	hidden.Longitude = nil
	rows := []domain.ChargerRow{located, hidden}

	result := FilterAndResummarize(rows, nil, nil)

	// Станция без координат не попадает ни в сводку, ни в фильтр:
	// наборы station_id совпадают.
	want := make(map[int64]struct{})
	for _, s := range Summarize(rows) {
		want[s.StationID] = struct{}{}
	}
	got := make(map[int64]struct{})
	for _, s := range result.Stations {
		got[s.StationID] = struct{}{}
	}
	assert.Equal(t, want, got)
	require.Equal(t, 1, result.StationCount)
	assert.Equal(t, 1, result.ChargerCount)
}

func TestFilterAndResummarize_CountsOnlyMatchingRows(t *testing.T) {
	// Станция 1: две строки DC콤보 и одна AC완속 — после фильтра по типу
	// счётчик должен видеть только прошедшие строки.
	rows := []domain.ChargerRow{
		row(1, 1, "DC콤보", "100kW"),
		row(1, 2, "DC콤보", "100kW"),
		row(1, 3, "AC완속", "7kW"),
		row(2, 1, "AC완속", "7kW"),
		row(3, 1, "DC콤보+AC3상", "50kW"),
	}

	result := FilterAndResummarize(rows, []string{"DC콤보"}, nil)
	require.Equal(t, 2, result.StationCount)
	assert.Equal(t, 3, result.ChargerCount)

	byID := make(map[int64]domain.FilteredStation)
	for _, s := range result.Stations {
		byID[s.StationID] = s
	}
	assert.Equal(t, "DC콤보 (2기)", byID[1].ChargerTypes)
	assert.Equal(t, "100kW (2기)", byID[1].Capacities)
	assert.Equal(t, "DC콤보+AC3상 (1기)", byID[3].ChargerTypes)
}

func TestResummarize_GroupsByNormalizedName(t *testing.T) {
	a := row(1, 1, "DC콤보", "100kW")
	a.StationName = "(대전) 휴게소"
	b := row(1, 2, "AC완속", "7kW")
	b.StationName = "(대전)휴게소"
	c := row(2, 1, "DC콤보", "50kW")
	c.StationName = "논산시청"

	stations := Resummarize([]domain.ChargerRow{a, b, c})
	require.Len(t, stations, 2)
	assert.Equal(t, "(대전)휴게소", stations[0].StationName)
	assert.Equal(t, "DC콤보 (1기), AC완속 (1기)", stations[0].ChargerTypes)
	assert.Equal(t, "7kW (1기), 100kW (1기)", stations[0].Capacities)
}

func TestFilterAndResummarize_HistogramBeforeCapacityFilter(t *testing.T) {
	rows := []domain.ChargerRow{
		row(1, 1, "DC콤보", "50kW"),
		row(2, 1, "DC콤보", "200kW"),
	}

	result := FilterAndResummarize(rows, nil, &CapacityRange{Min: 0, Max: 100})
	// Диапазон сузил станции, но гистограмма показывает всё доступное
	// после фильтра по типам.
	require.Len(t, result.Histogram.Buckets, 2)
	assert.Equal(t, 1, result.StationCount)
}
