package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
)

var ErrDeviceNotFound = fmt.Errorf("device not found")
var ErrInvalidReading = fmt.Errorf("invalid reading")

//go:generate moq -rm -out telemetry_mock.go . TelemetryService
type TelemetryService interface {
	Ingest(ctx context.Context, reading types.PowerReading) error
	IngestBatch(ctx context.Context, readings []types.PowerReading) (int, error)
	IngestBattery(ctx context.Context, reading types.BatteryReading) error

	GetLatest(ctx context.Context, deviceID string) (types.PowerReading, error)
	GetRecent(ctx context.Context, deviceID string, params map[string][]string) (types.Collection[types.PowerReading], error)
	GetBatteryHistory(ctx context.Context, deviceID string, params map[string][]string) (types.Collection[types.BatteryReading], error)

	GetDevices(ctx context.Context, params map[string][]string) (types.Collection[types.Device], error)
	GetDevice(ctx context.Context, deviceID string) (types.Device, error)
	GetDeviceStats(ctx context.Context, deviceID string, from, to time.Time) (storage.PowerStats, error)
}

//go:generate moq -rm -out telemetrystorage_mock.go . TelemetryStorage
type TelemetryStorage interface {
	EnsureDevice(ctx context.Context, device types.Device) error
	GetDevice(ctx context.Context, conditions ...storage.ConditionFunc) (types.Device, error)
	QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)

	AddPowerReading(ctx context.Context, reading types.PowerReading) error
	QueryPowerReadings(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.PowerReading], error)
	GetLatestPowerReading(ctx context.Context, conditions ...storage.ConditionFunc) (types.PowerReading, error)
	PowerStatsByDevice(ctx context.Context, deviceID string, from, to time.Time) (storage.PowerStats, error)

	AddBatteryReading(ctx context.Context, reading types.BatteryReading) error
	QueryBatteryReadings(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.BatteryReading], error)
}

type svc struct {
	storage   TelemetryStorage
	messenger messaging.MsgContext
}

func New(s TelemetryStorage, m messaging.MsgContext) TelemetryService {
	return &svc{
		storage:   s,
		messenger: m,
	}
}

// Ingest validates and stores a reading, provisioning the device on first
// contact. The reading is republished on telemetry.reading for downstream
// consumers.
func (t *svc) Ingest(ctx context.Context, reading types.PowerReading) error {
	err := validateReading(reading)
	if err != nil {
		return err
	}

	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now().UTC()
	}

	err = t.storage.EnsureDevice(ctx, types.Device{
		DeviceID: reading.DeviceID,
		Name:     "Unknown Device",
		Type:     "inverter",
		Active:   true,
		LastSeen: reading.Timestamp,
	})
	if err != nil {
		return err
	}

	err = t.storage.AddPowerReading(ctx, reading)
	if err != nil {
		return err
	}

	return t.messenger.PublishOnTopic(ctx, &ReadingReceived{
		DeviceID:       reading.DeviceID,
		Voltage:        reading.Voltage,
		Current:        reading.Current,
		Power:          reading.Power,
		Frequency:      reading.Frequency,
		PowerFactor:    reading.PowerFactor,
		BatteryVoltage: reading.BatteryVoltage,
		BatterySOC:     reading.BatterySOC,
		Timestamp:      reading.Timestamp,
	})
}

// IngestBatch stores readings one by one and returns the number stored. A
// bad reading aborts the rest of the batch.
func (t *svc) IngestBatch(ctx context.Context, readings []types.PowerReading) (int, error) {
	for i, reading := range readings {
		err := t.Ingest(ctx, reading)
		if err != nil {
			return i, fmt.Errorf("reading %d: %w", i, err)
		}
	}

	return len(readings), nil
}

func (t *svc) IngestBattery(ctx context.Context, reading types.BatteryReading) error {
	if reading.DeviceID == "" {
		return fmt.Errorf("%w: no deviceID is set", ErrInvalidReading)
	}
	if reading.SOC < 0 || reading.SOC > 100 {
		return fmt.Errorf("%w: state of charge %.1f outside 0-100", ErrInvalidReading, reading.SOC)
	}
	if reading.Voltage < 0 {
		return fmt.Errorf("%w: negative voltage", ErrInvalidReading)
	}

	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now().UTC()
	}

	err := t.storage.EnsureDevice(ctx, types.Device{
		DeviceID: reading.DeviceID,
		Name:     "Unknown Device",
		Type:     "inverter",
		Active:   true,
		LastSeen: reading.Timestamp,
	})
	if err != nil {
		return err
	}

	return t.storage.AddBatteryReading(ctx, reading)
}

func (t *svc) GetLatest(ctx context.Context, deviceID string) (types.PowerReading, error) {
	reading, err := t.storage.GetLatestPowerReading(ctx, storage.WithDeviceID(deviceID))
	if err != nil {
		if err == storage.ErrNoRows {
			return types.PowerReading{}, ErrDeviceNotFound
		}
		return types.PowerReading{}, err
	}

	return reading, nil
}

func (t *svc) GetRecent(ctx context.Context, deviceID string, params map[string][]string) (types.Collection[types.PowerReading], error) {
	conditions := append(storage.ParseConditions(params), storage.WithDeviceID(deviceID))

	readings, err := t.storage.QueryPowerReadings(ctx, conditions...)
	if err != nil {
		return types.Collection[types.PowerReading]{}, err
	}

	return readings, nil
}

func (t *svc) GetBatteryHistory(ctx context.Context, deviceID string, params map[string][]string) (types.Collection[types.BatteryReading], error) {
	conditions := append(storage.ParseConditions(params), storage.WithDeviceID(deviceID))

	readings, err := t.storage.QueryBatteryReadings(ctx, conditions...)
	if err != nil {
		return types.Collection[types.BatteryReading]{}, err
	}

	return readings, nil
}

func (t *svc) GetDevices(ctx context.Context, params map[string][]string) (types.Collection[types.Device], error) {
	devices, err := t.storage.QueryDevices(ctx, storage.ParseConditions(params)...)
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	return devices, nil
}

func (t *svc) GetDevice(ctx context.Context, deviceID string) (types.Device, error) {
	device, err := t.storage.GetDevice(ctx, storage.WithDeviceID(deviceID))
	if err != nil {
		if err == storage.ErrNoRows {
			return types.Device{}, ErrDeviceNotFound
		}
		return types.Device{}, err
	}

	return device, nil
}

func (t *svc) GetDeviceStats(ctx context.Context, deviceID string, from, to time.Time) (storage.PowerStats, error) {
	_, err := t.GetDevice(ctx, deviceID)
	if err != nil {
		return storage.PowerStats{}, err
	}

	return t.storage.PowerStatsByDevice(ctx, deviceID, from, to)
}

func validateReading(r types.PowerReading) error {
	if r.DeviceID == "" {
		return fmt.Errorf("%w: no deviceID is set", ErrInvalidReading)
	}
	if r.Voltage < 0 || r.Current < 0 || r.Power < 0 {
		return fmt.Errorf("%w: negative electrical values", ErrInvalidReading)
	}
	if r.PowerFactor < 0 || r.PowerFactor > 1 {
		return fmt.Errorf("%w: power factor %.2f outside 0-1", ErrInvalidReading, r.PowerFactor)
	}
	if r.BatterySOC != nil && (*r.BatterySOC < 0 || *r.BatterySOC > 100) {
		return fmt.Errorf("%w: state of charge %.1f outside 0-100", ErrInvalidReading, *r.BatterySOC)
	}

	return nil
}
