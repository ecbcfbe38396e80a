package station

import (
	"regexp"
	"strconv"
)

var reFirstNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ExtractKW вытаскивает первое число из свободного текста мощности
// ("급속(100kW)" → 100). Текст без числа даёт ok=false: такие строки
// исключаются из числовых фильтров, а не считаются нулём. Разбор делается
// один раз на границе, дальше значение ходит типизированным.
func ExtractKW(capacity string) (float64, bool) {
	m := reFirstNumber.FindString(capacity)
	if m == "" {
		return 0, false
	}
	kw, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return kw, true
}
