package normalize

import (
	"regexp"
	"strings"
)

var (
	reOpenParen  = regexp.MustCompile(`\(\s*`)
	reCloseParen = regexp.MustCompile(`\s*\)`)
	reAfterClose = regexp.MustCompile(`\)\s+`)
	reBeforeOpen = regexp.MustCompile(`\s+\(`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// StationName канонизирует имя станции: '(대전) 휴게소' → '(대전)휴게소',
// пробельные серии схлопываются в один пробел, края обрезаются.
func StationName(name string) string {
	name = reOpenParen.ReplaceAllString(name, "(")
	name = reCloseParen.ReplaceAllString(name, ")")
	name = reAfterClose.ReplaceAllString(name, ")")
	name = reBeforeOpen.ReplaceAllString(name, "(")
	name = reSpaces.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// StripStationSuffix убирает имя станции из хвоста адреса:
// "충남 논산시 A휴게소" + "A휴게소" → "충남 논산시". Если адрес не
// оканчивается именем станции, возвращается без изменений.
func StripStationSuffix(address, stationName string) string {
	address = strings.TrimSpace(address)
	stationName = strings.TrimSpace(stationName)
	if stationName != "" && strings.HasSuffix(address, stationName) {
		return strings.TrimSpace(strings.TrimSuffix(address, stationName))
	}
	return address
}

var cardSuffixes = []string{"시청", "구청"}

// CardTitle — имя станции для карточки списка: префикс района
// ("논산시" или "논산") срезается, кроме станций при мэриях.
func CardTitle(stationName, districtName string) string {
	cleaned := strings.ReplaceAll(stationName, " ", "")
	for _, suffix := range cardSuffixes {
		if strings.HasSuffix(cleaned, suffix) {
			return cleaned
		}
	}

	district := strings.ReplaceAll(districtName, " ", "")
	bare := strings.NewReplacer("시", "", "군", "", "구", "").Replace(district)
	for _, prefix := range []string{district, bare} {
		if prefix != "" && strings.HasPrefix(cleaned, prefix) {
			cleaned = cleaned[len(prefix):]
		}
	}
	return strings.TrimSpace(cleaned)
}
