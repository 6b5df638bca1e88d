package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gridpulse/power-monitor/internal/pkg/application/aggregation"
	"github.com/gridpulse/power-monitor/internal/pkg/application/reports"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/matryer/is"
)

func TestReportDue(t *testing.T) {
	is := is.New(t)

	monday := time.Date(2024, 6, 10, 6, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	firstOfMonth := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)

	is.True(reportDue(types.FrequencyDaily, tuesday))
	is.True(reportDue(types.FrequencyWeekly, monday))
	is.True(!reportDue(types.FrequencyWeekly, tuesday))
	is.True(reportDue(types.FrequencyMonthly, firstOfMonth))
	is.True(!reportDue(types.FrequencyMonthly, monday))
	is.True(!reportDue(types.ReportFrequency(""), tuesday))
}

func TestProcessDayAggregatesAndSendsDueReports(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	agg := &aggregation.AggregationServiceMock{
		CalculateAllFunc: func(ctx context.Context, date time.Time) error {
			return nil
		},
	}
	reporter := &reports.ReportServiceMock{
		GenerateFunc: func(ctx context.Context, req reports.GenerateRequest) (types.EnergyReport, error) {
			return types.EnergyReport{ID: "report-" + req.ClientID, ClientID: req.ClientID}, nil
		},
		SendFunc: func(ctx context.Context, reportID string, channels ...types.Channel) ([]types.NotificationRecord, error) {
			return nil, nil
		},
	}
	clients := &ClientStorageMock{
		QueryClientsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Client], error) {
			return types.Collection[types.Client]{
				Data: []types.Client{
					{ID: "client-1", Active: true, ReportFrequency: types.FrequencyDaily},
					{ID: "client-2", Active: true, ReportFrequency: types.FrequencyWeekly},
					{ID: "client-3", Active: true, ReportFrequency: types.FrequencyMonthly},
				},
				Count: 3, TotalCount: 3,
			}, nil
		},
	}

	s := &scheduler{aggregator: agg, reporter: reporter, clients: clients}

	// a Tuesday, so only the daily subscription fires
	s.processDay(ctx, time.Date(2024, 6, 11, 0, 30, 0, 0, time.UTC))

	is.Equal(1, len(agg.CalculateAllCalls()))
	is.Equal(10, agg.CalculateAllCalls()[0].Date.Day())

	is.Equal(1, len(reporter.GenerateCalls()))
	is.Equal("client-1", reporter.GenerateCalls()[0].Req.ClientID)
	is.Equal(types.ReportDaily, reporter.GenerateCalls()[0].Req.ReportType)
	is.Equal(1, len(reporter.SendCalls()))
	is.Equal("report-client-1", reporter.SendCalls()[0].ReportID)
}

func TestProcessDayContinuesWhenOneClientFails(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	agg := &aggregation.AggregationServiceMock{
		CalculateAllFunc: func(ctx context.Context, date time.Time) error {
			return nil
		},
	}
	reporter := &reports.ReportServiceMock{
		GenerateFunc: func(ctx context.Context, req reports.GenerateRequest) (types.EnergyReport, error) {
			if req.ClientID == "client-1" {
				return types.EnergyReport{}, fmt.Errorf("no devices")
			}
			return types.EnergyReport{ID: "report-2"}, nil
		},
		SendFunc: func(ctx context.Context, reportID string, channels ...types.Channel) ([]types.NotificationRecord, error) {
			return nil, nil
		},
	}
	clients := &ClientStorageMock{
		QueryClientsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Client], error) {
			return types.Collection[types.Client]{
				Data: []types.Client{
					{ID: "client-1", Active: true, ReportFrequency: types.FrequencyDaily},
					{ID: "client-2", Active: true, ReportFrequency: types.FrequencyDaily},
				},
				Count: 2, TotalCount: 2,
			}, nil
		},
	}

	s := &scheduler{aggregator: agg, reporter: reporter, clients: clients}
	s.processDay(ctx, time.Date(2024, 6, 11, 0, 30, 0, 0, time.UTC))

	is.Equal(2, len(reporter.GenerateCalls()))
	is.Equal(1, len(reporter.SendCalls()))
	is.Equal("report-2", reporter.SendCalls()[0].ReportID)
}

func TestTickRunsOncePerDay(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	agg := &aggregation.AggregationServiceMock{
		CalculateAllFunc: func(ctx context.Context, date time.Time) error {
			return nil
		},
	}
	clients := &ClientStorageMock{
		QueryClientsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Client], error) {
			return types.Collection[types.Client]{}, nil
		},
	}

	s := &scheduler{aggregator: agg, reporter: &reports.ReportServiceMock{}, clients: clients}

	midnight := time.Date(2024, 6, 11, 0, 15, 0, 0, time.UTC)
	s.tick(ctx, midnight)
	s.tick(ctx, midnight.Add(time.Hour))
	s.tick(ctx, midnight.Add(12*time.Hour))

	is.Equal(1, len(agg.CalculateAllCalls()))

	s.tick(ctx, midnight.AddDate(0, 0, 1))
	is.Equal(2, len(agg.CalculateAllCalls()))
}
