package main

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/ticketreport/internal/aggregator"
	"github.com/dharmasatrya/ticketreport/internal/config"
	"github.com/dharmasatrya/ticketreport/internal/reader"
	"github.com/dharmasatrya/ticketreport/internal/report"
)

const (
	exitOK = iota
	exitReadError
	exitUsage
	exitStructure
)

func main() {
	cfg := config.Load()
	logger := cfg.NewLogger()

	os.Exit(run(os.Args[1:], cfg, logger, os.Stdout))
}

func run(args []string, cfg config.Config, logger *logrus.Logger, stdout io.Writer) int {
	printer := report.NewPrinter(stdout)

	if len(args) != 1 {
		printer.Usage()
		return exitUsage
	}

	doc, err := reader.ReadFile(args[0])
	if err != nil {
		printer.ReadError(err)
		return exitReadError
	}
	logger.WithField("path", args[0]).Debug("file loaded")

	agg := aggregator.NewAggregator(aggregator.Config{Route: cfg.Route})
	result, err := agg.Run(doc)
	if result != nil {
		logger.WithFields(logrus.Fields{
			"route":   cfg.Route.String(),
			"objects": result.ObjectsScanned,
			"matched": result.Matched,
			"skipped": len(result.Errors),
		}).Debug("tickets processed")
		printer.RecordErrors(result.Errors)
	}

	if err != nil {
		printer.RunError(cfg.Route, err)
		if errors.Is(err, aggregator.ErrNoTickets) {
			return exitOK
		}
		return exitStructure
	}

	printer.Report(result.Report)
	return exitOK
}
