package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dharmasatrya/ticketreport/internal/aggregator"
	"github.com/dharmasatrya/ticketreport/internal/cache"
	"github.com/dharmasatrya/ticketreport/internal/models"
	"github.com/dharmasatrya/ticketreport/internal/reader"
	"github.com/dharmasatrya/ticketreport/pkg/currency"
)

type ReportHandler struct {
	route  models.Route
	cache  cache.Cache
	logger *logrus.Logger
}

func NewReportHandler(route models.Route, c cache.Cache, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		route:  route,
		cache:  c,
		logger: logger,
	}
}

// Create builds the report for the tickets document in the request body.
// The origin and destination query parameters override the default route.
func (h *ReportHandler) Create(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	route := h.route.WithOverrides(c.QueryParam("origin"), c.QueryParam("destination"))
	if err := route.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	doc, err := reader.Read(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to read request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	key := cache.Key(doc, route)
	if cached, found := h.cache.Get(ctx, key); found {
		return c.JSON(http.StatusOK, buildResponse(*cached, models.ReportMetadata{
			Matched:          cached.TicketCount + cached.Skipped,
			ProcessingTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:         true,
		}))
	}

	result, err := aggregator.NewAggregator(aggregator.Config{Route: route}).Run(doc)
	if result != nil {
		for _, recErr := range result.Errors {
			h.logger.WithField("route", route.String()).WithError(recErr).Warn("ticket skipped")
		}
	}
	if err != nil {
		return h.runError(c, route, err)
	}

	if err := h.cache.Set(ctx, key, &result.Report); err != nil {
		h.logger.WithError(err).Warn("failed to cache report")
	}

	return c.JSON(http.StatusOK, buildResponse(result.Report, models.ReportMetadata{
		ObjectsScanned:   result.ObjectsScanned,
		Matched:          result.Matched,
		Errors:           errorStrings(result.Errors),
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
	}))
}

func (h *ReportHandler) runError(c echo.Context, route models.Route, err error) error {
	if errors.Is(err, aggregator.ErrNoTickets) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "no_tickets",
			Message: err.Error() + ": " + route.String(),
			Code:    http.StatusNotFound,
		})
	}

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_document",
		Message: err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func buildResponse(report models.Report, metadata models.ReportMetadata) models.ReportResponse {
	return models.ReportResponse{
		Report: report,
		Formatted: models.FormattedPrices{
			Mean:       currency.FormatRUB(report.Prices.Mean),
			Median:     currency.FormatRUB(report.Prices.Median),
			Difference: currency.FormatRUB(report.Prices.Difference),
		},
		Metadata: metadata,
	}
}

func errorStrings(errs []*aggregator.RecordError) []string {
	if len(errs) == 0 {
		return nil
	}

	result := make([]string, len(errs))
	for i, err := range errs {
		result[i] = err.Error()
	}
	return result
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
