package domain

type CapacityTier string

const (
	TierLow  CapacityTier = "low"  // < 50 kW
	TierMid  CapacityTier = "mid"  // 50–100 kW
	TierHigh CapacityTier = "high" // > 100 kW
)

// CapacityBucket — одно доступное значение мощности с цветом тира для
// подсветки в селекторе диапазона.
type CapacityBucket struct {
	KW    float64      `json:"kw"`
	Tier  CapacityTier `json:"tier"`
	Color string       `json:"color"`
}

// CapacityHistogram строится после фильтра по типам, до фильтра по
// диапазону. Пустой Buckets — валидное состояние "нет данных о мощности".
// Fixed=true, когда доступно ровно одно значение и диапазон вырожден.
type CapacityHistogram struct {
	Buckets []CapacityBucket `json:"buckets"`
	MinKW   float64          `json:"min_kw"`
	MaxKW   float64          `json:"max_kw"`
	Fixed   bool             `json:"fixed"`
}

func (h CapacityHistogram) Empty() bool {
	return len(h.Buckets) == 0
}
