package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/ticketreport/internal/models"
)

func ticket(carrier string, minutes int, price int) models.Ticket {
	departure := time.Date(2018, time.May, 12, 16, 20, 0, 0, time.UTC)
	return models.Ticket{
		Origin:      "VVO",
		Destination: "TLV",
		Departure:   departure,
		Arrival:     departure.Add(time.Duration(minutes) * time.Minute),
		Carrier:     carrier,
		Price:       price,
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		expect float64
	}{
		{name: "empty", values: nil, expect: 0},
		{name: "single", values: []int{100}, expect: 100},
		{name: "four prices", values: []int{100, 200, 300, 400}, expect: 250},
		{name: "fractional", values: []int{1, 2}, expect: 1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expect, Mean(tc.values), 1e-9)
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		expect float64
	}{
		{name: "empty", values: nil, expect: 0},
		{name: "odd count", values: []int{100, 200, 300}, expect: 200},
		{name: "even count", values: []int{100, 200, 300, 400}, expect: 250},
		{name: "unsorted input", values: []int{300, 100, 200}, expect: 200},
		{name: "even count with odd sum", values: []int{100, 201}, expect: 150.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expect, Median(tc.values), 1e-9)
		})
	}
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	values := []int{300, 100, 200}
	Median(values)
	assert.Equal(t, []int{300, 100, 200}, values)
}

func TestPrices(t *testing.T) {
	tickets := []models.Ticket{
		ticket("TK", 60, 400),
		ticket("TK", 60, 100),
		ticket("S7", 60, 300),
		ticket("SU", 60, 200),
	}

	got := Prices(tickets)

	assert.Equal(t, 4, got.Count)
	assert.InDelta(t, 250.0, got.Mean, 1e-9)
	assert.InDelta(t, 250.0, got.Median, 1e-9)
	assert.InDelta(t, 0.0, got.Difference, 1e-9)
}

func TestMinDurationsByCarrier(t *testing.T) {
	tickets := []models.Ticket{
		ticket("TK", 120, 1),
		ticket("TK", 90, 1),
		ticket("TK", 150, 1),
		ticket("S7", 600, 1),
	}

	got := MinDurationsByCarrier(tickets)

	assert.Equal(t, map[string]int64{"TK": 90, "S7": 600}, got)
}

func TestMinDurationsByCarrier_Negative(t *testing.T) {
	tickets := []models.Ticket{
		ticket("TK", 30, 1),
		ticket("TK", -90, 1),
	}

	got := MinDurationsByCarrier(tickets)

	assert.Equal(t, int64(-90), got["TK"])
}
