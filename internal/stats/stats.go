package stats

import (
	"sort"

	"github.com/dharmasatrya/ticketreport/internal/models"
)

func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum int64
	for _, v := range values {
		sum += int64(v)
	}
	return float64(sum) / float64(len(values))
}

// Median sorts a copy of values. For an even count it is the floating
// point mean of the two central elements.
func Median(values []int) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]int, n)
	copy(sorted, values)
	sort.Ints(sorted)

	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}

func Prices(tickets []models.Ticket) models.PriceStats {
	prices := make([]int, len(tickets))
	for i, t := range tickets {
		prices[i] = t.Price
	}

	mean := Mean(prices)
	median := Median(prices)

	return models.PriceStats{
		Count:      len(prices),
		Mean:       mean,
		Median:     median,
		Difference: mean - median,
	}
}

// MinDurationsByCarrier keeps, per carrier, the shortest flight in minutes.
// A tie keeps the first ticket seen.
func MinDurationsByCarrier(tickets []models.Ticket) map[string]int64 {
	minDurations := make(map[string]int64)

	for _, t := range tickets {
		duration := t.DurationMinutes()
		if current, ok := minDurations[t.Carrier]; !ok || duration < current {
			minDurations[t.Carrier] = duration
		}
	}

	return minDurations
}
