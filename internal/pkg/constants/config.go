package constants

// Ключи конфигурации viper (env:  EVAPP_*).
const (
	ViperKeyAddr        = "addr"
	ViperKeyDatabaseDSN = "database_dsn"
	ViperKeyCacheDir    = "cache_dir"
	ViperKeyCORSOrigin  = "cors_origin"

	ViperKeyRowCacheTTL     = "row_cache_ttl"
	ViperKeySummaryCacheTTL = "summary_cache_ttl"
	ViperKeyMapCacheTTL     = "map_cache_ttl"
)

// Сентинельные значения выбора региона.
const (
	AllRegions   = "전국" // "вся страна"
	AllDistricts = "전체" // "все районы"
)

const (
	CacheKindRows    = "station"
	CacheKindSummary = "summary"
	CacheKindMap     = "map"
)

// UseTimeUnknown отдаётся, когда у станции нет информации о времени работы.
const UseTimeUnknown = "정보 없음"
