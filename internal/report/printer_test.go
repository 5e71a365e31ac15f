package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/ticketreport/internal/aggregator"
	"github.com/dharmasatrya/ticketreport/internal/jsonscan"
	"github.com/dharmasatrya/ticketreport/internal/models"
)

func TestPrinter_Report(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Report(models.Report{
		Route: models.DefaultRoute,
		MinDurations: []models.CarrierDuration{
			{Carrier: "S7", Duration: models.NewDuration(585)},
			{Carrier: "TK", Duration: models.NewDuration(90)},
		},
		Prices: models.PriceStats{Mean: 13960, Median: 13500, Difference: 460},
	})

	expect := "Минимальное время перелета между Владивостоком и Тель-Авивом:\n" +
		"Перевозчик S7: 9 часов 45 минут\n" +
		"Перевозчик TK: 1 часов 30 минут\n" +
		"Средняя цена: 13960.00\n" +
		"Медианная цена: 13500.00\n" +
		"Разница между средней ценой и медианой: 460.00\n"
	assert.Equal(t, expect, buf.String())
}

func TestPrinter_Report_CustomRoute(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).MinDurations(models.Report{Route: models.Route{Origin: "UFA", Destination: "LRN"}})

	assert.Equal(t, "Минимальное время перелета по маршруту UFA-LRN:\n", buf.String())
}

func TestPrinter_Prices_Rounding(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Prices(models.Report{Prices: models.PriceStats{Mean: 1.0 / 3, Median: 0.126, Difference: -2.5}})

	assert.Equal(t, "Средняя цена: 0.33\nМедианная цена: 0.13\nРазница между средней ценой и медианой: -2.50\n", buf.String())
}

func TestPrinter_RunError(t *testing.T) {
	tests := []struct {
		name   string
		route  models.Route
		err    error
		expect string
	}{
		{
			name:   "tickets field missing",
			route:  models.DefaultRoute,
			err:    jsonscan.ErrTicketsFieldMissing,
			expect: "Поле tickets не найдено\n",
		},
		{
			name:   "tickets array missing",
			route:  models.DefaultRoute,
			err:    jsonscan.ErrTicketsArrayMissing,
			expect: "Массив tickets не найден\n",
		},
		{
			name:   "no tickets",
			route:  models.DefaultRoute,
			err:    aggregator.ErrNoTickets,
			expect: "Билеты из Владивостока в Тель-Авив не найдены\n",
		},
		{
			name:   "no tickets on custom route",
			route:  models.Route{Origin: "UFA", Destination: "LRN"},
			err:    aggregator.ErrNoTickets,
			expect: "Билеты по маршруту UFA-LRN не найдены\n",
		},
		{
			name:   "unknown error",
			route:  models.DefaultRoute,
			err:    errors.New("boom"),
			expect: "boom\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).RunError(tc.route, tc.err)
			assert.Equal(t, tc.expect, buf.String())
		})
	}
}

func TestPrinter_RecordErrors(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).RecordErrors([]*aggregator.RecordError{
		aggregator.NewRecordError(0, models.RawFields{"carrier": "TK"}, errors.New("invalid price")),
	})

	assert.Equal(t, "Ошибка парсинга билета: invalid price\n", buf.String())
}
