package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhastre/EV-app/internal/domain"
)

func chargerRow(stationID int64, capacity, chargerType string) domain.ChargerRow {
	return domain.ChargerRow{
		StationID:   stationID,
		RegionName:  "충청남도",
		ChargerType: chargerType,
		Capacity:    capacity,
	}
}

func TestTopNWithOthers(t *testing.T) {
	rows := []domain.ChargerRow{
		chargerRow(1, "100kW", "DC콤보"),
		chargerRow(1, "100kW", "DC콤보"),
		chargerRow(2, "100kW", "DC콤보"),
		chargerRow(2, "50kW", "DC차데모"),
		chargerRow(3, "7kW", "AC완속"),
		chargerRow(4, "200kW", "DC콤보"),
	}

	items := TopNWithOthers(rows, 2, func(r domain.ChargerRow) string { return r.Capacity })
	require.Len(t, items, 3)

	assert.Equal(t, "100kW", items[0].Label)
	assert.Equal(t, int64(3), items[0].Count)
	assert.Equal(t, 50.0, items[0].Share)

	// Хвост свернулся в "기타": 7kW + 200kW.
	assert.Equal(t, "기타", items[2].Label)
	assert.Equal(t, int64(2), items[2].Count)

	var total float64
	for _, it := range items {
		total += it.Share
	}
	assert.InDelta(t, 100, total, 0.2)
}

func TestTopNWithOthers_NoRollupWhenSmall(t *testing.T) {
	rows := []domain.ChargerRow{
		chargerRow(1, "100kW", "DC콤보"),
		chargerRow(2, "50kW", "DC차데모"),
	}

	items := TopNWithOthers(rows, 6, func(r domain.ChargerRow) string { return r.Capacity })
	require.Len(t, items, 2)
	assert.Equal(t, 50.0, items[0].Share)
}

func TestTopNWithOthers_Empty(t *testing.T) {
	assert.Nil(t, TopNWithOthers(nil, 6, func(r domain.ChargerRow) string { return r.Capacity }))
}

func TestSharePercent(t *testing.T) {
	assert.Equal(t, 33.3, sharePercent(1, 3))
	assert.Equal(t, 0.0, sharePercent(1, 0))
	assert.Equal(t, 100.0, sharePercent(5, 5))
}
