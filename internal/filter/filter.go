package filter

import (
	"sort"

	"github.com/dharmasatrya/ticketreport/internal/models"
)

// ByRoute keeps the records whose origin and destination equal the route
// exactly. Comparison is case-sensitive.
func ByRoute(records []models.RawFields, route models.Route) []models.RawFields {
	result := make([]models.RawFields, 0, len(records))

	for _, r := range records {
		if matchesRoute(r, route) {
			result = append(result, r)
		}
	}

	return result
}

func matchesRoute(r models.RawFields, route models.Route) bool {
	return r.Get(models.FieldOrigin) == route.Origin &&
		r.Get(models.FieldDestination) == route.Destination
}

// SortByCarrier orders durations by carrier code so output is stable
// between runs.
func SortByCarrier(durations []models.CarrierDuration) []models.CarrierDuration {
	sort.Slice(durations, func(i, j int) bool {
		return durations[i].Carrier < durations[j].Carrier
	})
	return durations
}
