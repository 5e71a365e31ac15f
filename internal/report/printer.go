// Package report renders reports and diagnostics for the console.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/dharmasatrya/ticketreport/internal/aggregator"
	"github.com/dharmasatrya/ticketreport/internal/jsonscan"
	"github.com/dharmasatrya/ticketreport/internal/models"
)

const (
	msgUsage          = "Некорректные параметры запуска. Корректно: report <путь к файлу tickets.json>"
	msgReadError      = "Ошибка при чтении файла: %v"
	msgFieldMissing   = "Поле tickets не найдено"
	msgArrayMissing   = "Массив tickets не найден"
	msgTicketError    = "Ошибка парсинга билета: %v"
	msgNoTickets      = "Билеты из Владивостока в Тель-Авив не найдены"
	msgNoTicketsRoute = "Билеты по маршруту %s не найдены"
	msgDurationHeader = "Минимальное время перелета между Владивостоком и Тель-Авивом:"
	msgRouteHeader    = "Минимальное время перелета по маршруту %s:"
	msgCarrier        = "Перевозчик %s: %d часов %d минут"
	msgMean           = "Средняя цена: %.2f"
	msgMedian         = "Медианная цена: %.2f"
	msgDifference     = "Разница между средней ценой и медианой: %.2f"
)

type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Usage() {
	p.println(msgUsage)
}

func (p *Printer) ReadError(err error) {
	p.printf(msgReadError, err)
}

// RunError prints the diagnostic for an error returned by Aggregator.Run.
func (p *Printer) RunError(route models.Route, err error) {
	switch {
	case errors.Is(err, jsonscan.ErrTicketsFieldMissing):
		p.println(msgFieldMissing)
	case errors.Is(err, jsonscan.ErrTicketsArrayMissing):
		p.println(msgArrayMissing)
	case errors.Is(err, aggregator.ErrNoTickets):
		if route == models.DefaultRoute {
			p.println(msgNoTickets)
		} else {
			p.printf(msgNoTicketsRoute, route)
		}
	default:
		p.println(err.Error())
	}
}

func (p *Printer) RecordErrors(errs []*aggregator.RecordError) {
	for _, err := range errs {
		p.printf(msgTicketError, err.Err)
	}
}

func (p *Printer) MinDurations(r models.Report) {
	if r.Route == models.DefaultRoute {
		p.println(msgDurationHeader)
	} else {
		p.printf(msgRouteHeader, r.Route)
	}

	for _, d := range r.MinDurations {
		p.printf(msgCarrier, d.Carrier, d.Duration.Hours, d.Duration.Minutes)
	}
}

func (p *Printer) Prices(r models.Report) {
	p.printf(msgMean, r.Prices.Mean)
	p.printf(msgMedian, r.Prices.Median)
	p.printf(msgDifference, r.Prices.Difference)
}

func (p *Printer) Report(r models.Report) {
	p.MinDurations(r)
	p.Prices(r)
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *Printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
