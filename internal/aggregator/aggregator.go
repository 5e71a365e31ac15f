package aggregator

import (
	"github.com/dharmasatrya/ticketreport/internal/filter"
	"github.com/dharmasatrya/ticketreport/internal/jsonscan"
	"github.com/dharmasatrya/ticketreport/internal/models"
	"github.com/dharmasatrya/ticketreport/internal/stats"
)

type Config struct {
	Route models.Route
}

func DefaultConfig() Config {
	return Config{Route: models.DefaultRoute}
}

type Aggregator struct {
	config Config
}

type Result struct {
	Report         models.Report
	Errors         []*RecordError
	ObjectsScanned int
	Matched        int
}

func NewAggregator(config Config) *Aggregator {
	return &Aggregator{config: config}
}

func (a *Aggregator) Route() models.Route {
	return a.config.Route
}

// Run builds the route report for a tickets document. Structural errors
// are returned as is. Bad records are collected in Result.Errors and never
// stop the run. ErrNoTickets is returned together with the partial result
// when no valid ticket matched the route.
func (a *Aggregator) Run(doc string) (*Result, error) {
	array, err := jsonscan.TicketsArray(doc)
	if err != nil {
		return nil, err
	}

	objects := jsonscan.SplitObjects(array)
	records := make([]models.RawFields, 0, len(objects))
	for _, obj := range objects {
		records = append(records, jsonscan.ParseObject(obj))
	}

	matched := filter.ByRoute(records, a.config.Route)

	result := &Result{
		ObjectsScanned: len(objects),
		Matched:        len(matched),
	}

	tickets := make([]models.Ticket, 0, len(matched))
	for i, r := range matched {
		t, err := models.NewTicket(r)
		if err != nil {
			result.Errors = append(result.Errors, NewRecordError(i, r, err))
			continue
		}
		tickets = append(tickets, t)
	}

	result.Report = Build(a.config.Route, tickets)
	result.Report.Skipped = len(result.Errors)

	if len(tickets) == 0 {
		return result, ErrNoTickets
	}

	return result, nil
}

// Build computes both aggregates over tickets already filtered to route.
func Build(route models.Route, tickets []models.Ticket) models.Report {
	minDurations := stats.MinDurationsByCarrier(tickets)

	durations := make([]models.CarrierDuration, 0, len(minDurations))
	for carrier, minutes := range minDurations {
		durations = append(durations, models.CarrierDuration{
			Carrier:  carrier,
			Duration: models.NewDuration(minutes),
		})
	}

	return models.Report{
		Route:        route,
		TicketCount:  len(tickets),
		MinDurations: filter.SortByCarrier(durations),
		Prices:       stats.Prices(tickets),
	}
}
