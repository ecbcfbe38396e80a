package domain

// ChargerRow — одна строка на физическое зарядное устройство из
// представления station_charger_with_subsidy. Атрибуты уровня станции
// (имя, адрес, координаты, субсидии) постоянны внутри одного station_id.
type ChargerRow struct {
	StationID      int64    `db:"station_id" json:"station_id" parquet:"station_id"`
	StationName    string   `db:"station_name" json:"station_name" parquet:"station_name"`
	RegionName     string   `db:"region_name" json:"region_name" parquet:"region_name"`
	DistrictName   string   `db:"district_name" json:"district_name" parquet:"district_name"`
	Address        string   `db:"address" json:"address" parquet:"address"`
	Latitude       *float64 `db:"latitude" json:"latitude" parquet:"latitude,optional"`
	Longitude      *float64 `db:"longitude" json:"longitude" parquet:"longitude,optional"`
	ChargerType    string   `db:"charger_type" json:"charger_type" parquet:"charger_type"`
	Capacity       string   `db:"capacity" json:"capacity" parquet:"capacity"`
	ChargerLocalID int64    `db:"charger_local_id" json:"charger_local_id" parquet:"charger_local_id"`
	MaxSubsidyEV   *float64 `db:"max_subsidy_ev" json:"max_subsidy_ev" parquet:"max_subsidy_ev,optional"`
	MaxSubsidyMini *float64 `db:"max_subsidy_mini" json:"max_subsidy_mini" parquet:"max_subsidy_mini,optional"`
	FacilityMajor  string   `db:"facility_major" json:"facility_major" parquet:"facility_major"`
}

// HasCoordinates — строки без координат допустимы, но на карту не попадают.
func (r ChargerRow) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// StationSummary — агрегат по station_id. Пересобирается заново при каждой
// смене региона/фильтра, на месте не мутируется.
type StationSummary struct {
	StationID      int64    `json:"station_id" parquet:"station_id"`
	StationName    string   `json:"station_name" parquet:"station_name"`
	CardTitle      string   `json:"card_title" parquet:"card_title"`
	RegionName     string   `json:"region_name" parquet:"region_name"`
	DistrictName   string   `json:"district_name" parquet:"district_name"`
	ShortAddress   string   `json:"short_address" parquet:"short_address"`
	Latitude       float64  `json:"latitude" parquet:"latitude"`
	Longitude      float64  `json:"longitude" parquet:"longitude"`
	ChargerCount   int64    `json:"charger_count" parquet:"charger_count"`
	ChargerTypes   string   `json:"charger_types" parquet:"charger_types"`
	Capacities     string   `json:"capacities" parquet:"capacities"`
	MaxSubsidyEV   *float64 `json:"max_subsidy_ev" parquet:"max_subsidy_ev,optional"`
	MaxSubsidyMini *float64 `json:"max_subsidy_mini" parquet:"max_subsidy_mini,optional"`
}

// FilteredStation — результат пересборки после фильтра, сгруппированный по
// нормализованному имени станции. Счётчики отформатированы для выдачи,
// например "DC콤보 (3기)".
type FilteredStation struct {
	StationID    int64    `json:"station_id"`
	StationName  string   `json:"station_name"`
	Address      string   `json:"address"`
	ChargerTypes string   `json:"charger_types"`
	Capacities   string   `json:"capacities"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type Point struct {
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
}

type DistrictCenter struct {
	DistrictName string  `db:"district_name" json:"district_name"`
	Latitude     float64 `db:"latitude" json:"latitude"`
	Longitude    float64 `db:"longitude" json:"longitude"`
}

// NationwideRow — строка предрассчитанного межрегионального свода.
type NationwideRow struct {
	RegionName   string `db:"region_name" json:"region_name"`
	StationCount int64  `db:"station_count" json:"station_count"`
	ChargerCount int64  `db:"charger_count" json:"charger_count"`
}
