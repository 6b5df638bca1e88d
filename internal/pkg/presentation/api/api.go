package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gridpulse/power-monitor/internal/pkg/application/aggregation"
	"github.com/gridpulse/power-monitor/internal/pkg/application/alerts"
	"github.com/gridpulse/power-monitor/internal/pkg/application/notifications"
	"github.com/gridpulse/power-monitor/internal/pkg/application/reports"
	"github.com/gridpulse/power-monitor/internal/pkg/application/telemetry"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("power-monitor/api")

// DirectoryStorage serves the read-only client and tariff listings.
type DirectoryStorage interface {
	GetClient(ctx context.Context, conditions ...storage.ConditionFunc) (types.Client, error)
	QueryClients(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Client], error)
	QueryTariffs(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Tariff], error)
}

// ReportPDFRenderer renders the downloadable rendition of a stored report.
type ReportPDFRenderer interface {
	PDF(report types.EnergyReport, client types.Client) ([]byte, string, error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux,
	telemetrySvc telemetry.TelemetryService,
	alertSvc alerts.AlertService,
	aggregationSvc aggregation.AggregationService,
	reportSvc reports.ReportService,
	dispatcher notifications.Dispatcher,
	directory DirectoryStorage,
	pdf ReportPDFRenderer,
) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/readings", func(r chi.Router) {
			r.Post("/", ingestReadingHandler(log, telemetrySvc))
			r.Post("/batch", ingestBatchHandler(log, telemetrySvc))
			r.Get("/latest", latestReadingHandler(log, telemetrySvc))
			r.Get("/recent", recentReadingsHandler(log, telemetrySvc))
		})

		r.Route("/battery", func(r chi.Router) {
			r.Post("/", ingestBatteryHandler(log, telemetrySvc))
			r.Get("/history", batteryHistoryHandler(log, telemetrySvc))
		})

		r.Route("/devices", func(r chi.Router) {
			r.Get("/", queryDevicesHandler(log, telemetrySvc))
			r.Get("/{deviceID}", getDeviceHandler(log, telemetrySvc))
			r.Get("/{deviceID}/stats", deviceStatsHandler(log, telemetrySvc))
		})

		r.Route("/consumption", func(r chi.Router) {
			r.Get("/", queryConsumptionHandler(log, aggregationSvc))
			r.Post("/cost", estimateCostHandler(log, aggregationSvc))
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", queryAlertsHandler(log, alertSvc))
			r.Post("/{alertID}/acknowledge", alertTransitionHandler(log, alertSvc, "acknowledge-alert", alertSvc.Acknowledge))
			r.Post("/{alertID}/resolve", alertTransitionHandler(log, alertSvc, "resolve-alert", alertSvc.Resolve))
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", queryClientsHandler(log, directory))
			r.Get("/{clientID}/reports", clientReportsHandler(log, reportSvc))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", queryReportsHandler(log, reportSvc))
			r.Post("/", generateReportHandler(log, reportSvc))
			r.Post("/{reportID}/send", sendReportHandler(log, reportSvc))
			r.Get("/{reportID}/pdf", reportPDFHandler(log, reportSvc, directory, pdf))
		})

		r.Get("/tariffs", queryTariffsHandler(log, directory))
		r.Get("/notifications", queryNotificationsHandler(log, dispatcher))
	})

	return router, nil
}

func ingestReadingHandler(log *slog.Logger, svc telemetry.TelemetryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "ingest-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var reading types.PowerReading
		err = json.Unmarshal(body, &reading)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.Ingest(ctx, reading)
		if err != nil {
			if errors.Is(err, telemetry.ErrInvalidReading) {
				requestLogger.Debug("reading rejected", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			requestLogger.Error("unable to store reading", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func ingestBatchHandler(log *slog.Logger, svc telemetry.TelemetryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "ingest-batch")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var readings []types.PowerReading
		err = json.Unmarshal(body, &readings)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		stored, err := svc.IngestBatch(ctx, readings)

		response, _ := json.Marshal(map[string]int{"stored": stored})

		w.Header().Add("Content-Type", "application/json")

		if err != nil {
			requestLogger.Debug("batch aborted", "stored", stored, "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			w.Write(response)
			return
		}

		w.WriteHeader(http.StatusCreated)
		w.Write(response)
	}
}

func latestReadingHandler(log *slog.Logger, svc telemetry.TelemetryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "latest-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := r.URL.Query().Get("device_id")
		if deviceID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		reading, err := svc.GetLatest(ctx, deviceID)
		if err != nil {
			if errors.Is(err, telemetry.ErrDeviceNotFound) {
				requestLogger.Debug("no readings for device", "device_id", deviceID)
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("could not fetch latest reading", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, reading)
	}
}

func recentReadingsHandler(log *slog.Logger, svc telemetry.TelemetryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "recent-readings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := r.URL.Query().Get("device_id")
		if deviceID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		readings, err := svc.GetRecent(ctx, deviceID, r.URL.Query())
		if err != nil {
			requestLogger.Error("could not fetch readings", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, readings)
	}
}

func ingestBatteryHandler(log *slog.Logger, svc telemetry.TelemetryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "ingest-battery")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var reading types.BatteryReading
		err = json.Unmarshal(body, &reading)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.IngestBattery(ctx, reading)
		if err != nil {
			if errors.Is(err, telemetry.ErrInvalidReading) {
				requestLogger.Debug("battery reading rejected", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			requestLogger.Error("unable to store battery reading", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func batteryHistoryHandler(log *slog.Logger, svc telemetry.TelemetryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "battery-history")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := r.URL.Query().Get("device_id")
		if deviceID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		readings, err := svc.GetBatteryHistory(ctx, deviceID, r.URL.Query())
		if err != nil {
			requestLogger.Error("could not fetch battery history", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, readings)
	}
}

func queryDevicesHandler(log *slog.Logger, svc telemetry.TelemetryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-devices")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		devices, err := svc.GetDevices(ctx, r.URL.Query())
		if err != nil {
			requestLogger.Error("unable to fetch devices", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, devices)
	}
}

func getDeviceHandler(log *slog.Logger, svc telemetry.TelemetryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-device")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		if deviceID != "" {
			requestLogger = requestLogger.With(slog.String("device_id", deviceID))
		}

		device, err := svc.GetDevice(ctx, deviceID)
		if err != nil {
			if errors.Is(err, telemetry.ErrDeviceNotFound) {
				requestLogger.Debug("device not found")
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("could not fetch device", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, device)
	}
}

func deviceStatsHandler(log *slog.Logger, svc telemetry.TelemetryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "device-stats")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		deviceID := chi.URLParam(r, "deviceID")
		if deviceID != "" {
			requestLogger = requestLogger.With(slog.String("device_id", deviceID))
		}

		to := time.Now().UTC()
		from := to.Add(-24 * time.Hour)

		if v := r.URL.Query().Get("from"); v != "" {
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				from = t
			}
		}
		if v := r.URL.Query().Get("to"); v != "" {
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				to = t
			}
		}

		stats, err := svc.GetDeviceStats(ctx, deviceID, from, to)
		if err != nil {
			if errors.Is(err, telemetry.ErrDeviceNotFound) {
				requestLogger.Debug("device not found")
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("could not fetch device stats", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, map[string]any{
			"deviceID":     deviceID,
			"from":         from,
			"to":           to,
			"avgPower":     stats.AvgPower,
			"peakPower":    stats.PeakPower,
			"minPower":     stats.MinPower,
			"avgVoltage":   stats.AvgVoltage,
			"readingCount": stats.ReadingCount,
		})
	}
}

func queryConsumptionHandler(log *slog.Logger, svc aggregation.AggregationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-consumption")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		consumption, err := svc.Query(ctx, r.URL.Query())
		if err != nil {
			requestLogger.Error("unable to fetch consumption", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, consumption)
	}
}

func estimateCostHandler(log *slog.Logger, svc aggregation.AggregationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "estimate-cost")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req struct {
			ConsumptionKwh float64 `json:"consumptionKwh"`
			TariffID       string  `json:"tariffID"`
		}
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		cost, tariff, err := svc.EstimateCost(ctx, req.ConsumptionKwh, req.TariffID)
		if err != nil {
			if errors.Is(err, aggregation.ErrNoTariff) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to estimate cost", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, map[string]any{
			"consumptionKwh": req.ConsumptionKwh,
			"cost":           cost,
			"ratePerKwh":     tariff.RatePerKwh,
			"currency":       tariff.Currency,
		})
	}
}

func queryAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := svc.Query(ctx, r.URL.Query())
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, result)
	}
}

func alertTransitionHandler(log *slog.Logger, svc alerts.AlertService, spanName string, transition func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), spanName)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		err = transition(ctx, alertID)
		if err != nil {
			if errors.Is(err, alerts.ErrAlertNotFound) {
				requestLogger.Debug("alert not found")
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if errors.Is(err, alerts.ErrInvalidTransition) {
				requestLogger.Debug("invalid transition")
				w.WriteHeader(http.StatusConflict)
				return
			}
			requestLogger.Error("unable to update alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryClientsHandler(log *slog.Logger, directory DirectoryStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-clients")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		clients, err := directory.QueryClients(ctx, storage.ParseConditions(r.URL.Query())...)
		if err != nil {
			requestLogger.Error("unable to fetch clients", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, clients)
	}
}

func clientReportsHandler(log *slog.Logger, svc reports.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "client-reports")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		clientID := chi.URLParam(r, "clientID")

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit == 0 {
			limit = 20
		}

		result, err := svc.GetByClientID(ctx, clientID, offset, limit)
		if err != nil {
			requestLogger.Error("unable to fetch reports", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, result)
	}
}

func queryReportsHandler(log *slog.Logger, svc reports.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-reports")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := svc.Query(ctx, r.URL.Query())
		if err != nil {
			requestLogger.Error("unable to fetch reports", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, result)
	}
}

func generateReportHandler(log *slog.Logger, svc reports.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "generate-report")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req reports.GenerateRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		report, err := svc.Generate(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, reports.ErrClientNotFound):
				requestLogger.Debug("client not found", "client_id", req.ClientID)
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, reports.ErrDeviceNotFound):
				requestLogger.Debug("device not found", "device_id", req.DeviceID)
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, reports.ErrNoDevices), errors.Is(err, reports.ErrInvalidDateRange):
				requestLogger.Debug("report rejected", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
			default:
				requestLogger.Error("unable to generate report", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, report)
	}
}

func sendReportHandler(log *slog.Logger, svc reports.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "send-report")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		reportID := chi.URLParam(r, "reportID")
		if reportID != "" {
			requestLogger = requestLogger.With(slog.String("report_id", reportID))
		}

		// an absent or empty body means every channel
		var req struct {
			SendEmail    *bool `json:"sendEmail"`
			SendWhatsApp *bool `json:"sendWhatsApp"`
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(body) > 0 {
			err = json.Unmarshal(body, &req)
			if err != nil {
				requestLogger.Error("unable to unmarshal body", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		var channels []types.Channel
		if req.SendEmail != nil || req.SendWhatsApp != nil {
			if req.SendEmail != nil && *req.SendEmail {
				channels = append(channels, types.ChannelEmail)
			}
			if req.SendWhatsApp != nil && *req.SendWhatsApp {
				channels = append(channels, types.ChannelWhatsApp)
			}
		}

		records, err := svc.Send(ctx, reportID, channels...)
		if err != nil {
			if errors.Is(err, reports.ErrReportNotFound) || errors.Is(err, reports.ErrClientNotFound) {
				requestLogger.Debug("report not found", "err", err.Error())
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to send report", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		results := map[types.Channel]types.DeliveryStatus{}
		for _, record := range records {
			results[record.Channel] = record.Status
		}

		writeJSON(w, requestLogger, http.StatusOK, map[string]any{
			"reportID": reportID,
			"results":  results,
		})
	}
}

func reportPDFHandler(log *slog.Logger, svc reports.ReportService, directory DirectoryStorage, pdf ReportPDFRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "report-pdf")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		reportID := chi.URLParam(r, "reportID")

		report, err := svc.GetByID(ctx, reportID)
		if err != nil {
			if errors.Is(err, reports.ErrReportNotFound) {
				requestLogger.Debug("report not found", "report_id", reportID)
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to fetch report", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		client, err := directory.GetClient(ctx, storage.WithClientID(report.ClientID))
		if err != nil {
			requestLogger.Error("unable to fetch client", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, filename, err := pdf.PDF(report, client)
		if err != nil {
			requestLogger.Error("unable to render pdf", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/pdf")
		w.Header().Add("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func queryTariffsHandler(log *slog.Logger, directory DirectoryStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-tariffs")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		tariffs, err := directory.QueryTariffs(ctx, storage.ParseConditions(r.URL.Query())...)
		if err != nil {
			requestLogger.Error("unable to fetch tariffs", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, tariffs)
	}
}

func queryNotificationsHandler(log *slog.Logger, dispatcher notifications.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-notifications")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		records, err := dispatcher.Query(ctx, r.URL.Query())
		if err != nil {
			requestLogger.Error("unable to fetch notifications", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, records)
	}
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("unable to marshal response", "err", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}
