package reports

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/matryer/is"
)

func TestResolveDatesWeekly(t *testing.T) {
	is := is.New(t)

	now := time.Date(2024, 6, 10, 15, 45, 0, 0, time.UTC)

	start, end, err := resolveDates(types.ReportWeekly, nil, nil, now)
	is.NoErr(err)
	is.Equal(time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), start)
	is.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), end)
}

func TestResolveDatesMonthly(t *testing.T) {
	is := is.New(t)

	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	start, end, err := resolveDates(types.ReportMonthly, nil, nil, now)
	is.NoErr(err)
	is.Equal(time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), start)
	is.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), end)
}

func TestResolveDatesCustomValidation(t *testing.T) {
	is := is.New(t)

	now := time.Now().UTC()
	june1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	june7 := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)

	_, _, err := resolveDates(types.ReportCustom, nil, nil, now)
	is.True(err != nil)

	_, _, err = resolveDates(types.ReportCustom, &june7, &june1, now)
	is.True(err != nil)

	start, end, err := resolveDates(types.ReportCustom, &june1, &june7, now)
	is.NoErr(err)
	is.Equal(june1, start)
	is.Equal(june7, end)
}

func TestGenerateSynthesizesAcrossDevices(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	totals := map[string]storage.ConsumptionTotals{
		"PZEM-001": {Consumption: 30.0, Cost: 6750.0, PeakPower: 3200.0},
		"PZEM-002": {Consumption: 15.2, Cost: 3420.0, PeakPower: 4100.0},
	}
	pfSums := map[string]float64{"PZEM-001": 85.0, "PZEM-002": 19.0}
	pfCounts := map[string]int64{"PZEM-001": 100, "PZEM-002": 20}

	s := &ReportStorageMock{
		GetClientFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Client, error) {
			return types.Client{ID: "client-1", Name: "Adeola Motors"}, nil
		},
		GetClientDevicesFunc: func(ctx context.Context, clientID string) ([]types.Device, error) {
			return []types.Device{
				{DeviceID: "PZEM-001", Name: "Main Inverter"},
				{DeviceID: "PZEM-002", Name: "Workshop Inverter"},
			}, nil
		},
		GetTariffFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Tariff, error) {
			return types.Tariff{ID: "default", Currency: "NGN", Active: true}, nil
		},
		ConsumptionTotalsByDeviceFunc: func(ctx context.Context, deviceID string, start, end time.Time) (storage.ConsumptionTotals, error) {
			return totals[deviceID], nil
		},
		PowerFactorStatsFunc: func(ctx context.Context, deviceID string, from, to time.Time) (float64, int64, error) {
			return pfSums[deviceID], pfCounts[deviceID], nil
		},
		AlertCountsByDeviceFunc: func(ctx context.Context, deviceID string, start, end time.Time) (int, int, error) {
			if deviceID == "PZEM-001" {
				return 3, 1, nil
			}
			return 0, 0, nil
		},
		AddReportFunc: func(ctx context.Context, report types.EnergyReport) error {
			return nil
		},
	}

	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	june1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	june7 := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)

	svc := New(s, &ReportDispatcherMock{}, m)

	report, err := svc.Generate(ctx, GenerateRequest{
		ClientID:   "client-1",
		ReportType: types.ReportCustom,
		StartDate:  &june1,
		EndDate:    &june7,
	})
	is.NoErr(err)

	is.True(math.Abs(report.TotalConsumption-45.2) < 1e-6)
	is.True(math.Abs(report.TotalCost-10170.0) < 1e-6)
	is.Equal(4100.0, report.PeakPower)
	is.Equal(3, report.TotalAlerts)
	is.Equal(1, report.CriticalAlerts)
	is.Equal("NGN", report.Currency)
	is.Equal(2, len(report.Breakdown))

	// pooled power factor weighted by sample count: (85+19)/120
	is.True(math.Abs(report.AvgPowerFactor-104.0/120.0) < 1e-6)

	// (100+20) five minute intervals
	is.True(math.Abs(report.UptimeHours-10.0) < 1e-6)

	// seven inclusive days
	is.True(math.Abs(report.AvgDailyConsumption-45.2/7.0) < 1e-6)

	is.Equal(1, len(s.AddReportCalls()))
	is.Equal("reports.reportGenerated", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestGenerateFailsWithoutDevices(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &ReportStorageMock{
		GetClientFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Client, error) {
			return types.Client{ID: "client-1"}, nil
		},
		GetClientDevicesFunc: func(ctx context.Context, clientID string) ([]types.Device, error) {
			return []types.Device{}, nil
		},
	}

	svc := New(s, &ReportDispatcherMock{}, &messaging.MsgContextMock{})

	_, err := svc.Generate(ctx, GenerateRequest{ClientID: "client-1", ReportType: types.ReportDaily})
	is.Equal(ErrNoDevices, err)
}

func TestSendMarksOnlyDeliveredChannels(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &ReportStorageMock{
		GetReportFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.EnergyReport, error) {
			return types.EnergyReport{ID: "report-1", ClientID: "client-1"}, nil
		},
		GetClientFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Client, error) {
			return types.Client{ID: "client-1", EmailReports: true}, nil
		},
		SetReportDeliveryFunc: func(ctx context.Context, reportID string, channel types.Channel) error {
			return nil
		},
	}

	d := &ReportDispatcherMock{
		SendReportFunc: func(ctx context.Context, client types.Client, report types.EnergyReport, channels ...types.Channel) ([]types.NotificationRecord, error) {
			return []types.NotificationRecord{
				{Channel: types.ChannelEmail, Status: types.DeliverySent},
				{Channel: types.ChannelWhatsApp, Status: types.DeliveryFailed},
			}, nil
		},
	}

	svc := New(s, d, &messaging.MsgContextMock{})

	records, err := svc.Send(ctx, "report-1")
	is.NoErr(err)

	// the caller sees every outcome, but only the successful channel is
	// flagged as delivered on the report
	is.Equal(2, len(records))
	is.Equal(1, len(s.SetReportDeliveryCalls()))
	is.Equal(types.ChannelEmail, s.SetReportDeliveryCalls()[0].Channel)
}

func TestSendForwardsRequestedChannels(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &ReportStorageMock{
		GetReportFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.EnergyReport, error) {
			return types.EnergyReport{ID: "report-1", ClientID: "client-1"}, nil
		},
		GetClientFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Client, error) {
			return types.Client{ID: "client-1", EmailReports: true}, nil
		},
	}

	d := &ReportDispatcherMock{
		SendReportFunc: func(ctx context.Context, client types.Client, report types.EnergyReport, channels ...types.Channel) ([]types.NotificationRecord, error) {
			return []types.NotificationRecord{
				{Channel: types.ChannelEmail, Status: types.DeliverySkipped},
			}, nil
		},
	}

	svc := New(s, d, &messaging.MsgContextMock{})

	records, err := svc.Send(ctx, "report-1", types.ChannelEmail)
	is.NoErr(err)

	is.Equal([]types.Channel{types.ChannelEmail}, d.SendReportCalls()[0].Channels)
	is.Equal(1, len(records))
	is.Equal(types.DeliverySkipped, records[0].Status)
}

func TestGenerateRejectsUnknownDevice(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &ReportStorageMock{
		GetClientFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Client, error) {
			return types.Client{ID: "client-1"}, nil
		},
		GetDeviceFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
			return types.Device{}, storage.ErrNoRows
		},
	}

	svc := New(s, &ReportDispatcherMock{}, &messaging.MsgContextMock{})

	_, err := svc.Generate(ctx, GenerateRequest{
		ClientID:   "client-1",
		ReportType: types.ReportDaily,
		DeviceID:   "PZEM-404",
	})
	is.Equal(ErrDeviceNotFound, err)
}
