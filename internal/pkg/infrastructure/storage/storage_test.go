package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func newDevice(t *testing.T, ctx context.Context, s *Storage) types.Device {
	device := types.Device{
		DeviceID: "PZEM-" + uuid.NewString(),
		Name:     "Main Inverter",
		Type:     "inverter",
		Active:   true,
	}

	err := s.EnsureDevice(ctx, device)
	if err != nil {
		t.Fatal(err)
	}

	return device
}

func TestEnsureDeviceIsIdempotent(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := newDevice(t, ctx, s)

	err := s.EnsureDevice(ctx, device)
	is.NoErr(err)

	d, err := s.GetDevice(ctx, WithDeviceID(device.DeviceID))
	is.NoErr(err)
	is.Equal(device.DeviceID, d.DeviceID)
}

func TestAddAndGetLatestPowerReading(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := newDevice(t, ctx, s)
	now := time.Now().UTC().Truncate(time.Microsecond)

	for i := 0; i < 3; i++ {
		err := s.AddPowerReading(ctx, types.PowerReading{
			DeviceID:    device.DeviceID,
			Voltage:     230.0 + float64(i),
			Power:       1000.0,
			PowerFactor: 0.9,
			Timestamp:   now.Add(time.Duration(i) * 5 * time.Minute),
		})
		is.NoErr(err)
	}

	latest, err := s.GetLatestPowerReading(ctx, WithDeviceID(device.DeviceID))
	is.NoErr(err)
	is.Equal(232.0, latest.Voltage)

	readings, err := s.QueryPowerReadings(ctx, WithDeviceID(device.DeviceID))
	is.NoErr(err)
	is.Equal(uint64(3), readings.TotalCount)
}

func TestUpsertDailyConsumptionOverwrites(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := newDevice(t, ctx, s)
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	err := s.UpsertDailyConsumption(ctx, types.DailyConsumption{
		DeviceID: device.DeviceID, Date: date, TotalConsumption: 4.5, TotalCost: 1012.5,
	})
	is.NoErr(err)

	err = s.UpsertDailyConsumption(ctx, types.DailyConsumption{
		DeviceID: device.DeviceID, Date: date, TotalConsumption: 5.0, TotalCost: 1125.0,
	})
	is.NoErr(err)

	result, err := s.QueryDailyConsumption(ctx, WithDeviceID(device.DeviceID))
	is.NoErr(err)
	is.Equal(uint64(1), result.TotalCount)
	is.Equal(5.0, result.Data[0].TotalConsumption)
}

func TestQueryAlertsWithConditions(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := newDevice(t, ctx, s)
	v := 265.0

	err := s.AddAlert(ctx, types.Alert{
		ID: uuid.NewString(), DeviceID: device.DeviceID, AlertType: "HIGH_VOLTAGE",
		Message: "Voltage above safe limit", Value: &v,
		Severity: types.SeverityWarning, Status: types.AlertActive, ObservedAt: time.Now().UTC(),
	})
	is.NoErr(err)

	result, err := s.QueryAlerts(ctx, WithDeviceID(device.DeviceID), WithStatus("ACTIVE"))
	is.NoErr(err)
	is.Equal(uint64(1), result.TotalCount)
	is.Equal(types.SeverityWarning, result.Data[0].Severity)
}

func TestSubscribedClientsFollowAttachments(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	device := newDevice(t, ctx, s)

	subscribed := types.Client{
		ID: uuid.NewString(), Name: "Adeola Motors", WhatsAppNumber: "+2348012345678",
		Active: true, WhatsAppAlerts: true,
	}
	unsubscribed := types.Client{
		ID: uuid.NewString(), Name: "Quiet Client", Active: true, WhatsAppAlerts: false,
	}

	is.NoErr(s.AddClient(ctx, subscribed))
	is.NoErr(s.AddClient(ctx, unsubscribed))
	is.NoErr(s.AttachDevice(ctx, subscribed.ID, device.DeviceID))
	is.NoErr(s.AttachDevice(ctx, unsubscribed.ID, device.DeviceID))

	clients, err := s.GetSubscribedClients(ctx, device.DeviceID)
	is.NoErr(err)
	is.Equal(1, len(clients))
	is.Equal(subscribed.ID, clients[0].ID)

	devices, err := s.GetClientDevices(ctx, subscribed.ID)
	is.NoErr(err)
	is.Equal(1, len(devices))
}

func TestSeedTariffsUpsertsById(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	id := uuid.NewString()

	err := SeedTariffs(ctx, s, []types.Tariff{
		{ID: id, Name: "Standard Rate", RatePerKwh: 225.0, Currency: "NGN", Active: true},
	})
	is.NoErr(err)

	tariff, err := s.GetTariff(ctx, WithTariffID(id))
	is.NoErr(err)
	is.Equal(225.0, tariff.RatePerKwh)
	is.Equal("NGN", tariff.Currency)
}
