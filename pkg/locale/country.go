package locale

import (
	"time"

	"islatours/pkg/sanitizer"
)

// IslandTimezone is where every tour departs from.
const IslandTimezone = "America/Tegucigalpa"

type Country struct {
	Code string
	Name string
}

var Countries = map[string]Country{
	"HN": {Code: "HN", Name: "Honduras"},
	"US": {Code: "US", Name: "United States"},
	"CA": {Code: "CA", Name: "Canada"},
	"GB": {Code: "GB", Name: "United Kingdom"},
	"DE": {Code: "DE", Name: "Germany"},
	"FR": {Code: "FR", Name: "France"},
	"ES": {Code: "ES", Name: "Spain"},
	"IT": {Code: "IT", Name: "Italy"},
	"NL": {Code: "NL", Name: "Netherlands"},
	"MX": {Code: "MX", Name: "Mexico"},
	"GT": {Code: "GT", Name: "Guatemala"},
	"SV": {Code: "SV", Name: "El Salvador"},
	"CR": {Code: "CR", Name: "Costa Rica"},
	"AR": {Code: "AR", Name: "Argentina"},
	"BR": {Code: "BR", Name: "Brazil"},
	"AU": {Code: "AU", Name: "Australia"},
}

// InferCountryFromPhone maps an E.164 number to a known country, or nil.
func InferCountryFromPhone(phone string) *Country {
	region := sanitizer.RegionOf(phone)
	if region == "" {
		return nil
	}
	if c, ok := Countries[region]; ok {
		return &c
	}
	return nil
}

var islandLocation = loadIsland()

func loadIsland() *time.Location {
	loc, err := time.LoadLocation(IslandTimezone)
	if err != nil {
		return time.FixedZone("CST", -6*60*60)
	}
	return loc
}

// IslandNow is the current wall time on the island.
func IslandNow() time.Time {
	return time.Now().In(islandLocation)
}

func Island() *time.Location {
	return islandLocation
}

// Tomorrow returns the first bookable calendar date, formatted YYYY-MM-DD,
// relative to now on the island.
func Tomorrow(now time.Time) string {
	local := now.In(islandLocation)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, islandLocation).Format("2006-01-02")
}
