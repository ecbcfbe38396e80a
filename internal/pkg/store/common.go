package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/uhastre/EV-app/internal/pkg/constants"
)

const (
	viewStationCharger     = "station_charger_view"
	viewStationWithSubsidy = "station_charger_with_subsidy"
	viewNationwideSummary  = "station_charger_nationwide_summary"
	tableChargersGenerated = "chargers_generated"
	tableRegionCenters     = "region_centers"
	tableDistrictCenters   = "district_centers"
	tableDistricts         = "districts"
	tableRegions           = "regions"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
