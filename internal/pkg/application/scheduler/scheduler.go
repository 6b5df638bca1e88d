package scheduler

import (
	"context"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/gridpulse/power-monitor/internal/pkg/application/aggregation"
	"github.com/gridpulse/power-monitor/internal/pkg/application/reports"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"
)

// Scheduler drives the daily housekeeping: it rolls up yesterday's
// consumption for every active device and generates and sends the reports
// that have come due for each client.
type Scheduler interface {
	Start(ctx context.Context)
}

//go:generate moq -rm -out clientstorage_mock.go . ClientStorage

type ClientStorage interface {
	QueryClients(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Client], error)
}

type scheduler struct {
	aggregator aggregation.AggregationService
	reporter   reports.ReportService
	clients    ClientStorage

	interval time.Duration
	lastDay  time.Time
}

func New(aggregator aggregation.AggregationService, reporter reports.ReportService, clients ClientStorage) Scheduler {
	return &scheduler{
		aggregator: aggregator,
		reporter:   reporter,
		clients:    clients,
		interval:   time.Hour,
	}
}

func (s *scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *scheduler) run(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx, time.Now().UTC())

	for {
		select {
		case <-ctx.Done():
			log.Debug("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx, time.Now().UTC())
		}
	}
}

// tick runs the daily work once per UTC day, on the first tick after midnight.
func (s *scheduler) tick(ctx context.Context, now time.Time) {
	day := now.Truncate(24 * time.Hour)
	if day.Equal(s.lastDay) {
		return
	}

	s.processDay(ctx, now)
	s.lastDay = day
}

func (s *scheduler) processDay(ctx context.Context, now time.Time) {
	log := logging.GetFromContext(ctx)

	yesterday := now.AddDate(0, 0, -1)

	err := s.aggregator.CalculateAll(ctx, yesterday)
	if err != nil {
		log.Error("daily aggregation failed", "date", yesterday.Format("2006-01-02"), "err", err.Error())
	}

	result, err := s.clients.QueryClients(ctx, storage.WithActive(true))
	if err != nil {
		log.Error("could not fetch clients", "err", err.Error())
		return
	}

	for _, client := range result.Data {
		if !reportDue(client.ReportFrequency, now) {
			continue
		}

		report, err := s.reporter.Generate(ctx, reports.GenerateRequest{
			ClientID:   client.ID,
			ReportType: reportType(client.ReportFrequency),
		})
		if err != nil {
			log.Error("could not generate scheduled report", "client_id", client.ID, "err", err.Error())
			continue
		}

		_, err = s.reporter.Send(ctx, report.ID)
		if err != nil {
			log.Error("could not send scheduled report", "report_id", report.ID, "err", err.Error())
		}
	}
}

// reportDue decides whether a client's subscription fires today. Weekly
// reports go out on Mondays, monthly reports on the first of the month.
func reportDue(frequency types.ReportFrequency, now time.Time) bool {
	switch frequency {
	case types.FrequencyDaily:
		return true
	case types.FrequencyWeekly:
		return now.Weekday() == time.Monday
	case types.FrequencyMonthly:
		return now.Day() == 1
	default:
		return false
	}
}

func reportType(frequency types.ReportFrequency) types.ReportType {
	switch frequency {
	case types.FrequencyWeekly:
		return types.ReportWeekly
	case types.FrequencyMonthly:
		return types.ReportMonthly
	default:
		return types.ReportDaily
	}
}
