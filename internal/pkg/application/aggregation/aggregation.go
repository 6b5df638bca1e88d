package aggregation

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var ErrNoTariff = fmt.Errorf("no active tariff configured")

// nominalInterval is the expected reporting cadence. Gaps wider than this
// are treated as outages and contribute no energy beyond one interval.
const nominalInterval = 5 * time.Minute

//go:generate moq -rm -out aggregation_mock.go . AggregationService
type AggregationService interface {
	CalculateDaily(ctx context.Context, deviceID string, date time.Time) (types.DailyConsumption, error)
	CalculateRange(ctx context.Context, deviceID string, start, end time.Time) error
	CalculateAll(ctx context.Context, date time.Time) error

	Query(ctx context.Context, params map[string][]string) (types.Collection[types.DailyConsumption], error)
	EstimateCost(ctx context.Context, kwh float64, tariffID string) (float64, types.Tariff, error)
}

//go:generate moq -rm -out aggregationstorage_mock.go . AggregationStorage
type AggregationStorage interface {
	QueryPowerReadings(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.PowerReading], error)
	QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)
	UpsertDailyConsumption(ctx context.Context, dc types.DailyConsumption) error
	QueryDailyConsumption(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.DailyConsumption], error)
	GetTariff(ctx context.Context, conditions ...storage.ConditionFunc) (types.Tariff, error)
}

type svc struct {
	storage AggregationStorage
}

func New(s AggregationStorage) AggregationService {
	return &svc{storage: s}
}

// CalculateDaily recomputes the aggregate for one device and one calendar
// day and upserts it. Days without readings still get a zero-valued row, so
// a report over the range can tell "no data" from "not yet aggregated".
func (a *svc) CalculateDaily(ctx context.Context, deviceID string, date time.Time) (types.DailyConsumption, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	readings, err := a.storage.QueryPowerReadings(ctx,
		storage.WithDeviceID(deviceID),
		storage.WithTimeRange(dayStart, dayEnd),
		storage.WithSortBy("ts"),
		storage.WithLimit(5000),
	)
	if err != nil {
		return types.DailyConsumption{}, err
	}

	summary := summarize(readings.Data)

	dc := types.DailyConsumption{
		DeviceID:         deviceID,
		Date:             dayStart,
		TotalConsumption: summary.ConsumptionKwh,
		AvgPower:         summary.AvgPower,
		PeakPower:        summary.PeakPower,
		MinPower:         summary.MinPower,
	}

	cost, _, err := a.EstimateCost(ctx, summary.ConsumptionKwh, "")
	if err != nil && err != ErrNoTariff {
		return types.DailyConsumption{}, err
	}
	dc.TotalCost = cost

	err = a.storage.UpsertDailyConsumption(ctx, dc)
	if err != nil {
		return types.DailyConsumption{}, err
	}

	return dc, nil
}

func (a *svc) CalculateRange(ctx context.Context, deviceID string, start, end time.Time) error {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		_, err := a.CalculateDaily(ctx, deviceID, d)
		if err != nil {
			return fmt.Errorf("aggregate %s for %s: %w", d.Format(time.DateOnly), deviceID, err)
		}
	}

	return nil
}

// CalculateAll aggregates one day for every active device. A failing device
// is logged and skipped so the rest of the fleet still gets its aggregates.
func (a *svc) CalculateAll(ctx context.Context, date time.Time) error {
	log := logging.GetFromContext(ctx)

	devices, err := a.storage.QueryDevices(ctx, storage.WithActive(true), storage.WithLimit(1000))
	if err != nil {
		return err
	}

	for _, device := range devices.Data {
		_, err := a.CalculateDaily(ctx, device.DeviceID, date)
		if err != nil {
			log.Error("could not aggregate daily consumption", "device_id", device.DeviceID, "err", err.Error())
		}
	}

	return nil
}

// Query lists daily aggregates over an inclusive date window. The window
// defaults to the trailing 30 days; period=weekly narrows it to 7, and
// explicit from/to dates override either endpoint.
func (a *svc) Query(ctx context.Context, params map[string][]string) (types.Collection[types.DailyConsumption], error) {
	get := func(key string) string {
		if v, ok := params[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := 30
	if strings.EqualFold(get("period"), "weekly") {
		days = 7
	}
	start := end.AddDate(0, 0, -(days - 1))

	if t, ok := parseDate(get("from")); ok {
		start = t
	}
	if t, ok := parseDate(get("to")); ok {
		end = t
	}

	conditions := []storage.ConditionFunc{storage.WithDateRange(start, end)}

	if v := get("device_id"); v != "" {
		conditions = append(conditions, storage.WithDeviceID(v))
	}
	if n, err := strconv.Atoi(get("limit")); err == nil && n > 0 {
		conditions = append(conditions, storage.WithLimit(n))
	}
	if n, err := strconv.Atoi(get("offset")); err == nil && n > 0 {
		conditions = append(conditions, storage.WithOffset(n))
	}

	consumption, err := a.storage.QueryDailyConsumption(ctx, conditions...)
	if err != nil {
		return types.Collection[types.DailyConsumption]{}, err
	}

	return consumption, nil
}

// EstimateCost prices an energy amount. An empty tariffID resolves the
// active flat-rate tariff; a reference selects that tariff directly.
func (a *svc) EstimateCost(ctx context.Context, kwh float64, tariffID string) (float64, types.Tariff, error) {
	condition := storage.WithActive(true)
	if tariffID != "" {
		condition = storage.WithTariffID(tariffID)
	}

	tariff, err := a.storage.GetTariff(ctx, condition)
	if err != nil {
		if err == storage.ErrNoRows {
			return 0, types.Tariff{}, ErrNoTariff
		}
		return 0, types.Tariff{}, err
	}

	return kwh * tariff.RatePerKwh, tariff, nil
}

func parseDate(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

type daySummary struct {
	ConsumptionKwh float64
	AvgPower       float64
	PeakPower      float64
	MinPower       float64
}

// summarize computes a time-weighted energy total. Each reading is held
// until the next one arrives, with the hold capped at nominalInterval, and
// the final reading is held for one nominal interval.
func summarize(readings []types.PowerReading) daySummary {
	if len(readings) == 0 {
		return daySummary{}
	}

	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Timestamp.Before(readings[j].Timestamp)
	})

	summary := daySummary{
		MinPower: readings[0].Power,
	}

	var sum float64

	for i, r := range readings {
		held := nominalInterval
		if i < len(readings)-1 {
			delta := readings[i+1].Timestamp.Sub(r.Timestamp)
			if delta < held {
				held = delta
			}
		}

		summary.ConsumptionKwh += r.Power * held.Hours() / 1000.0

		sum += r.Power
		if r.Power > summary.PeakPower {
			summary.PeakPower = r.Power
		}
		if r.Power < summary.MinPower {
			summary.MinPower = r.Power
		}
	}

	summary.AvgPower = sum / float64(len(readings))

	return summary
}
