package storage

import (
	"context"
	"time"

	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/jackc/pgx/v5"
)

// UpsertDailyConsumption overwrites any previous aggregate for the same
// (device, date) instead of failing on the unique constraint, so recomputes
// stay idempotent.
func (s *Storage) UpsertDailyConsumption(ctx context.Context, dc types.DailyConsumption) error {
	if dc.DeviceID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO daily_consumption (device_id, date, total_consumption, avg_power, peak_power, min_power, total_cost)
		VALUES (@device_id, @date, @total_consumption, @avg_power, @peak_power, @min_power, @total_cost)
		ON CONFLICT (device_id, date) DO UPDATE SET
			total_consumption = EXCLUDED.total_consumption,
			avg_power = EXCLUDED.avg_power,
			peak_power = EXCLUDED.peak_power,
			min_power = EXCLUDED.min_power,
			total_cost = EXCLUDED.total_cost
	`, pgx.NamedArgs{
		"device_id":         dc.DeviceID,
		"date":              dc.Date.Format(time.DateOnly),
		"total_consumption": dc.TotalConsumption,
		"avg_power":         dc.AvgPower,
		"peak_power":        dc.PeakPower,
		"min_power":         dc.MinPower,
		"total_cost":        dc.TotalCost,
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryDailyConsumption(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.DailyConsumption], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "date"
		condition.sortOrder = "DESC"
	}
	condition.timeColumn = "date"

	query := `
		SELECT device_id, date, total_consumption, avg_power, peak_power, min_power, total_cost, count(*) OVER () AS total
		FROM daily_consumption
		` + condition.Where() + condition.OrderBy() + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.DailyConsumption]{}, err
	}

	var dc types.DailyConsumption
	var total int64

	consumption := make([]types.DailyConsumption, 0)

	_, err = pgx.ForEachRow(rows, []any{&dc.DeviceID, &dc.Date, &dc.TotalConsumption, &dc.AvgPower, &dc.PeakPower, &dc.MinPower, &dc.TotalCost, &total}, func() error {
		consumption = append(consumption, dc)
		return nil
	})
	if err != nil {
		return types.Collection[types.DailyConsumption]{}, err
	}

	return types.Collection[types.DailyConsumption]{
		Data:       consumption,
		Count:      uint64(len(consumption)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

type ConsumptionTotals struct {
	Consumption float64
	Cost        float64
	PeakPower   float64
}

// ConsumptionTotalsByDevice sums stored daily aggregates over an inclusive
// date interval. Days without an aggregate contribute zero.
func (s *Storage) ConsumptionTotalsByDevice(ctx context.Context, deviceID string, start, end time.Time) (ConsumptionTotals, error) {
	var totals ConsumptionTotals

	err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_consumption), 0), COALESCE(SUM(total_cost), 0), COALESCE(MAX(peak_power), 0)
		FROM daily_consumption
		WHERE device_id = @device_id AND date >= @start_date AND date <= @end_date
	`, pgx.NamedArgs{
		"device_id":  deviceID,
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
	}).Scan(&totals.Consumption, &totals.Cost, &totals.PeakPower)
	if err != nil {
		return ConsumptionTotals{}, err
	}

	return totals, nil
}
