package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var ErrReportNotFound = fmt.Errorf("report not found")
var ErrClientNotFound = fmt.Errorf("client not found")
var ErrDeviceNotFound = fmt.Errorf("device not found")
var ErrNoDevices = fmt.Errorf("client has no devices to report on")
var ErrInvalidDateRange = fmt.Errorf("invalid date range")

const fallbackCurrency = "NGN"

//go:generate moq -rm -out reportservice_mock.go . ReportService
type ReportService interface {
	Generate(ctx context.Context, req GenerateRequest) (types.EnergyReport, error)
	Send(ctx context.Context, reportID string, channels ...types.Channel) ([]types.NotificationRecord, error)

	GetByID(ctx context.Context, reportID string) (types.EnergyReport, error)
	GetByClientID(ctx context.Context, clientID string, offset, limit int) (types.Collection[types.EnergyReport], error)
	Query(ctx context.Context, params map[string][]string) (types.Collection[types.EnergyReport], error)
}

//go:generate moq -rm -out reportstorage_mock.go . ReportStorage
type ReportStorage interface {
	GetClient(ctx context.Context, conditions ...storage.ConditionFunc) (types.Client, error)
	GetClientDevices(ctx context.Context, clientID string) ([]types.Device, error)
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	GetTariff(ctx context.Context, conditions ...storage.ConditionFunc) (types.Tariff, error)

	ConsumptionTotalsByDevice(ctx context.Context, deviceID string, start, end time.Time) (storage.ConsumptionTotals, error)
	PowerFactorStats(ctx context.Context, deviceID string, from, to time.Time) (float64, int64, error)
	AlertCountsByDevice(ctx context.Context, deviceID string, start, end time.Time) (int, int, error)

	AddReport(ctx context.Context, report types.EnergyReport) error
	GetReport(ctx context.Context, conditions ...storage.ConditionFunc) (types.EnergyReport, error)
	QueryReports(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.EnergyReport], error)
	SetReportDelivery(ctx context.Context, reportID string, channel types.Channel) error
}

// ReportDispatcher delivers a finished report to the client's channels and
// returns one record per delivery attempt.
//
//go:generate moq -rm -out dispatcher_mock.go . ReportDispatcher
type ReportDispatcher interface {
	SendReport(ctx context.Context, client types.Client, report types.EnergyReport, channels ...types.Channel) ([]types.NotificationRecord, error)
}

type GenerateRequest struct {
	ClientID   string           `json:"clientID"`
	ReportType types.ReportType `json:"reportType"`
	DeviceID   string           `json:"deviceID,omitempty"`
	StartDate  *time.Time       `json:"startDate,omitempty"`
	EndDate    *time.Time       `json:"endDate,omitempty"`
}

type reportSvc struct {
	storage    ReportStorage
	dispatcher ReportDispatcher
	messenger  messaging.MsgContext
}

func New(s ReportStorage, d ReportDispatcher, m messaging.MsgContext) ReportService {
	return &reportSvc{
		storage:    s,
		dispatcher: d,
		messenger:  m,
	}
}

// Generate synthesizes a report over the resolved date range. One report row
// is stored regardless of how many devices contribute; per-device figures go
// into the breakdown.
func (svc *reportSvc) Generate(ctx context.Context, req GenerateRequest) (types.EnergyReport, error) {
	start, end, err := resolveDates(req.ReportType, req.StartDate, req.EndDate, time.Now().UTC())
	if err != nil {
		return types.EnergyReport{}, err
	}

	client, err := svc.storage.GetClient(ctx, storage.WithClientID(req.ClientID))
	if err != nil {
		if err == storage.ErrNoRows {
			return types.EnergyReport{}, ErrClientNotFound
		}
		return types.EnergyReport{}, err
	}

	devices, err := svc.resolveDevices(ctx, client.ID, req.DeviceID)
	if err != nil {
		return types.EnergyReport{}, err
	}
	if len(devices) == 0 {
		return types.EnergyReport{}, ErrNoDevices
	}

	from := start
	to := end.Add(24*time.Hour - time.Nanosecond)

	report := types.EnergyReport{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		DeviceID:    req.DeviceID,
		ReportType:  req.ReportType,
		StartDate:   start,
		EndDate:     end,
		Currency:    svc.currency(ctx),
		GeneratedAt: time.Now().UTC(),
	}

	var pfSum float64
	var pfCount int64

	for _, device := range devices {
		totals, err := svc.storage.ConsumptionTotalsByDevice(ctx, device.DeviceID, start, end)
		if err != nil {
			return types.EnergyReport{}, err
		}

		sum, count, err := svc.storage.PowerFactorStats(ctx, device.DeviceID, from, to)
		if err != nil {
			return types.EnergyReport{}, err
		}

		alerts, critical, err := svc.storage.AlertCountsByDevice(ctx, device.DeviceID, start, end)
		if err != nil {
			return types.EnergyReport{}, err
		}

		// each stored reading represents one nominal 5 minute interval
		uptime := float64(count) * 5.0 / 60.0

		report.Breakdown = append(report.Breakdown, types.DeviceBreakdown{
			DeviceID:       device.DeviceID,
			DeviceName:     device.Name,
			Consumption:    totals.Consumption,
			Cost:           totals.Cost,
			PeakPower:      totals.PeakPower,
			UptimeHours:    uptime,
			Alerts:         alerts,
			CriticalAlerts: critical,
		})

		pfSum += sum
		pfCount += count
	}

	report.TotalConsumption = lo.SumBy(report.Breakdown, func(d types.DeviceBreakdown) float64 { return d.Consumption })
	report.TotalCost = lo.SumBy(report.Breakdown, func(d types.DeviceBreakdown) float64 { return d.Cost })
	report.UptimeHours = lo.SumBy(report.Breakdown, func(d types.DeviceBreakdown) float64 { return d.UptimeHours })
	report.TotalAlerts = lo.SumBy(report.Breakdown, func(d types.DeviceBreakdown) int { return d.Alerts })
	report.CriticalAlerts = lo.SumBy(report.Breakdown, func(d types.DeviceBreakdown) int { return d.CriticalAlerts })
	report.PeakPower = lo.MaxBy(report.Breakdown, func(a, b types.DeviceBreakdown) bool { return a.PeakPower > b.PeakPower }).PeakPower

	// pooled average weighted by sample count, not an average of averages
	if pfCount > 0 {
		report.AvgPowerFactor = pfSum / float64(pfCount)
	}

	days := end.Sub(start).Hours()/24 + 1
	report.AvgDailyConsumption = report.TotalConsumption / days

	err = svc.storage.AddReport(ctx, report)
	if err != nil {
		return types.EnergyReport{}, err
	}

	err = svc.messenger.PublishOnTopic(ctx, &ReportGenerated{
		ReportID:   report.ID,
		ClientID:   report.ClientID,
		ReportType: string(report.ReportType),
		Timestamp:  report.GeneratedAt,
	})
	if err != nil {
		return types.EnergyReport{}, err
	}

	return report, nil
}

// Send delivers a stored report over the requested channels, or over both
// when none are named, and flips the delivery flag for every channel that
// reports success. The returned records carry one per-channel outcome each,
// skipped channels included; skips leave the flag untouched.
func (svc *reportSvc) Send(ctx context.Context, reportID string, channels ...types.Channel) ([]types.NotificationRecord, error) {
	report, err := svc.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	client, err := svc.storage.GetClient(ctx, storage.WithClientID(report.ClientID))
	if err != nil {
		if err == storage.ErrNoRows {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	records, err := svc.dispatcher.SendReport(ctx, client, report, channels...)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.Status != types.DeliverySent && record.Status != types.DeliveryDelivered {
			continue
		}

		err = svc.storage.SetReportDelivery(ctx, reportID, record.Channel)
		if err != nil {
			return nil, err
		}
	}

	return records, nil
}

func (svc *reportSvc) GetByID(ctx context.Context, reportID string) (types.EnergyReport, error) {
	report, err := svc.storage.GetReport(ctx, storage.WithReportID(reportID))
	if err != nil {
		if err == storage.ErrNoRows {
			return types.EnergyReport{}, ErrReportNotFound
		}
		return types.EnergyReport{}, err
	}

	return report, nil
}

func (svc *reportSvc) GetByClientID(ctx context.Context, clientID string, offset, limit int) (types.Collection[types.EnergyReport], error) {
	reports, err := svc.storage.QueryReports(ctx, storage.WithClientID(clientID), storage.WithOffset(offset), storage.WithLimit(limit))
	if err != nil {
		return types.Collection[types.EnergyReport]{}, err
	}

	return reports, nil
}

func (svc *reportSvc) Query(ctx context.Context, params map[string][]string) (types.Collection[types.EnergyReport], error) {
	reports, err := svc.storage.QueryReports(ctx, storage.ParseConditions(params)...)
	if err != nil {
		return types.Collection[types.EnergyReport]{}, err
	}

	return reports, nil
}

func (svc *reportSvc) resolveDevices(ctx context.Context, clientID, deviceID string) ([]types.Device, error) {
	if deviceID != "" {
		device, err := svc.storage.GetDevice(ctx, storage.WithDeviceID(deviceID))
		if err != nil {
			if err == storage.ErrNoRows {
				return nil, ErrDeviceNotFound
			}
			return nil, err
		}
		return []types.Device{device}, nil
	}

	return svc.storage.GetClientDevices(ctx, clientID)
}

func (svc *reportSvc) currency(ctx context.Context) string {
	tariff, err := svc.storage.GetTariff(ctx, storage.WithActive(true))
	if err != nil || tariff.Currency == "" {
		return fallbackCurrency
	}
	return tariff.Currency
}

// resolveDates turns a report type into an inclusive date interval. Relative
// types anchor on today: DAILY covers today, WEEKLY the trailing 7 days and
// MONTHLY the trailing 30. CUSTOM requires both endpoints.
func resolveDates(reportType types.ReportType, start, end *time.Time, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch reportType {
	case types.ReportDaily:
		return today, today, nil
	case types.ReportWeekly:
		return today.AddDate(0, 0, -6), today, nil
	case types.ReportMonthly:
		return today.AddDate(0, 0, -29), today, nil
	case types.ReportCustom:
		if start == nil || end == nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: custom reports require both start and end dates", ErrInvalidDateRange)
		}

		s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

		if e.Before(s) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end date precedes start date", ErrInvalidDateRange)
		}

		return s, e, nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown report type %q", ErrInvalidDateRange, reportType)
}
