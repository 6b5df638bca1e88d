package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/matryer/is"
)

func TestIngestProvisionsDeviceAndPublishes(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newStorageMock()
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, m)

	err := svc.Ingest(ctx, types.PowerReading{
		DeviceID:    "PZEM-001",
		Voltage:     230.5,
		Current:     5.2,
		Power:       1198.6,
		Frequency:   50.0,
		PowerFactor: 0.95,
		Timestamp:   time.Date(2025, 6, 10, 8, 15, 0, 0, time.UTC),
	})
	is.NoErr(err)

	is.Equal(1, len(s.EnsureDeviceCalls()))
	is.Equal("Unknown Device", s.EnsureDeviceCalls()[0].Device.Name)
	is.Equal("inverter", s.EnsureDeviceCalls()[0].Device.Type)
	is.Equal(1, len(s.AddPowerReadingCalls()))

	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal("telemetry.reading", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestIngestRejectsBadPowerFactor(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newStorageMock()
	svc := New(s, &messaging.MsgContextMock{})

	err := svc.Ingest(ctx, types.PowerReading{
		DeviceID:    "PZEM-001",
		Voltage:     230.0,
		PowerFactor: 1.2,
	})
	is.True(errors.Is(err, ErrInvalidReading))
	is.Equal(0, len(s.AddPowerReadingCalls()))
}

func TestIngestDefaultsTimestamp(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newStorageMock()
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, m)

	err := svc.Ingest(ctx, types.PowerReading{DeviceID: "PZEM-001", Voltage: 230.0, PowerFactor: 0.9})
	is.NoErr(err)
	is.True(!s.AddPowerReadingCalls()[0].Reading.Timestamp.IsZero())
}

func TestIngestBatchStopsOnFirstBadReading(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newStorageMock()
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, m)

	stored, err := svc.IngestBatch(ctx, []types.PowerReading{
		{DeviceID: "PZEM-001", Voltage: 230.0, PowerFactor: 0.9},
		{DeviceID: "", Voltage: 230.0},
		{DeviceID: "PZEM-002", Voltage: 231.0, PowerFactor: 0.9},
	})
	is.True(err != nil)
	is.Equal(1, stored)
	is.Equal(1, len(s.AddPowerReadingCalls()))
}

func TestIngestBatteryValidatesStateOfCharge(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newStorageMock()
	svc := New(s, &messaging.MsgContextMock{})

	err := svc.IngestBattery(ctx, types.BatteryReading{DeviceID: "PZEM-001", Voltage: 24.8, SOC: 110})
	is.True(errors.Is(err, ErrInvalidReading))

	err = svc.IngestBattery(ctx, types.BatteryReading{DeviceID: "PZEM-001", Voltage: 24.8, SOC: 85, Charging: true})
	is.NoErr(err)
	is.Equal(1, len(s.AddBatteryReadingCalls()))
}

func TestGetLatestMapsNoRows(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newStorageMock()
	s.GetLatestPowerReadingFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.PowerReading, error) {
		return types.PowerReading{}, storage.ErrNoRows
	}

	svc := New(s, &messaging.MsgContextMock{})

	_, err := svc.GetLatest(ctx, "PZEM-404")
	is.Equal(ErrDeviceNotFound, err)
}

func TestGetDeviceStatsRequiresKnownDevice(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newStorageMock()
	s.GetDeviceFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error) {
		return types.Device{}, storage.ErrNoRows
	}

	svc := New(s, &messaging.MsgContextMock{})

	_, err := svc.GetDeviceStats(ctx, "PZEM-404", time.Now().Add(-24*time.Hour), time.Now())
	is.Equal(ErrDeviceNotFound, err)
	is.Equal(0, len(s.PowerStatsByDeviceCalls()))
}

func newStorageMock() *TelemetryStorageMock {
	return &TelemetryStorageMock{
		EnsureDeviceFunc: func(ctx context.Context, device types.Device) error {
			return nil
		},
		AddPowerReadingFunc: func(ctx context.Context, reading types.PowerReading) error {
			return nil
		},
		AddBatteryReadingFunc: func(ctx context.Context, reading types.BatteryReading) error {
			return nil
		},
	}
}
