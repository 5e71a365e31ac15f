package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dharmasatrya/ticketreport/internal/datetime"
)

// Field names of a ticket object in the input document.
const (
	FieldOrigin        = "origin"
	FieldDestination   = "destination"
	FieldDepartureDate = "departure_date"
	FieldDepartureTime = "departure_time"
	FieldArrivalDate   = "arrival_date"
	FieldArrivalTime   = "arrival_time"
	FieldCarrier       = "carrier"
	FieldPrice         = "price"
)

// RawFields holds the unconverted key/value strings of one ticket object.
type RawFields map[string]string

func (f RawFields) Get(key string) string {
	return f[key]
}

type Ticket struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Departure   time.Time `json:"departure"`
	Arrival     time.Time `json:"arrival"`
	Carrier     string    `json:"carrier"`
	Price       int       `json:"price"`
}

// NewTicket converts raw fields into a Ticket. A malformed price or
// date/time is reported as an error and no ticket is produced.
func NewTicket(f RawFields) (Ticket, error) {
	price, err := strconv.Atoi(strings.TrimSpace(f.Get(FieldPrice)))
	if err != nil {
		return Ticket{}, fmt.Errorf("invalid price %q: %w", f.Get(FieldPrice), err)
	}

	departure, err := datetime.Parse(f.Get(FieldDepartureDate), f.Get(FieldDepartureTime))
	if err != nil {
		return Ticket{}, fmt.Errorf("invalid departure: %w", err)
	}

	arrival, err := datetime.Parse(f.Get(FieldArrivalDate), f.Get(FieldArrivalTime))
	if err != nil {
		return Ticket{}, fmt.Errorf("invalid arrival: %w", err)
	}

	return Ticket{
		Origin:      f.Get(FieldOrigin),
		Destination: f.Get(FieldDestination),
		Departure:   departure,
		Arrival:     arrival,
		Carrier:     f.Get(FieldCarrier),
		Price:       price,
	}, nil
}

// DurationMinutes is the flight time in whole minutes, truncated toward
// zero. Arrival before departure yields a negative value.
func (t Ticket) DurationMinutes() int64 {
	return t.Arrival.Sub(t.Departure).Milliseconds() / 60000
}

type Duration struct {
	Hours        int64 `json:"hours"`
	Minutes      int64 `json:"minutes"`
	TotalMinutes int64 `json:"total_minutes"`
}

func NewDuration(totalMinutes int64) Duration {
	return Duration{
		Hours:        totalMinutes / 60,
		Minutes:      totalMinutes % 60,
		TotalMinutes: totalMinutes,
	}
}

type CarrierDuration struct {
	Carrier  string   `json:"carrier"`
	Duration Duration `json:"min_duration"`
}

type PriceStats struct {
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Difference float64 `json:"difference"`
}

type Report struct {
	Route        Route             `json:"route"`
	TicketCount  int               `json:"ticket_count"`
	Skipped      int               `json:"skipped"`
	MinDurations []CarrierDuration `json:"min_durations"`
	Prices       PriceStats        `json:"prices"`
}
