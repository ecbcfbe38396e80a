package geoutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	t.Run("zero distance", func(t *testing.T) {
		assert.Equal(t, 0.0, Haversine(36.5, 127.9, 36.5, 127.9))
	})

	t.Run("seoul to busan", func(t *testing.T) {
		// Сеул (37.5665, 126.9780) — Пусан (35.1796, 129.0756), ~325 км.
		d := Haversine(37.5665, 126.9780, 35.1796, 129.0756)
		assert.InDelta(t, 325, d, 5)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Haversine(36.2, 127.1, 35.8, 128.6)
		b := Haversine(35.8, 128.6, 36.2, 127.1)
		assert.InDelta(t, a, b, 1e-9)
	})

	t.Run("nan propagates", func(t *testing.T) {
		assert.True(t, math.IsNaN(Haversine(math.NaN(), 127.9, 36.5, 127.9)))
	})
}
