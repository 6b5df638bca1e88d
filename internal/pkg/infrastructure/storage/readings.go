package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddPowerReading(ctx context.Context, r types.PowerReading) error {
	if r.DeviceID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO power_readings (ts, device_id, voltage, current, power, frequency, power_factor, battery_voltage, battery_soc)
		VALUES (@ts, @device_id, @voltage, @current, @power, @frequency, @power_factor, @battery_voltage, @battery_soc)
	`, pgx.NamedArgs{
		"ts":              r.Timestamp.UTC(),
		"device_id":       r.DeviceID,
		"voltage":         r.Voltage,
		"current":         r.Current,
		"power":           r.Power,
		"frequency":       r.Frequency,
		"power_factor":    r.PowerFactor,
		"battery_voltage": r.BatteryVoltage,
		"battery_soc":     r.BatterySOC,
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryPowerReadings(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.PowerReading], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "ts"
		condition.sortOrder = "DESC"
	}

	query := `
		SELECT ts, device_id, voltage, current, power, frequency, power_factor, battery_voltage, battery_soc, count(*) OVER () AS total
		FROM power_readings
		` + condition.Where() + condition.OrderBy() + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.PowerReading]{}, err
	}

	var r types.PowerReading
	var batteryVoltage, batterySOC sql.NullFloat64
	var total int64

	readings := make([]types.PowerReading, 0)

	_, err = pgx.ForEachRow(rows, []any{&r.Timestamp, &r.DeviceID, &r.Voltage, &r.Current, &r.Power, &r.Frequency, &r.PowerFactor, &batteryVoltage, &batterySOC, &total}, func() error {
		reading := r
		if batteryVoltage.Valid {
			v := batteryVoltage.Float64
			reading.BatteryVoltage = &v
		}
		if batterySOC.Valid {
			v := batterySOC.Float64
			reading.BatterySOC = &v
		}
		readings = append(readings, reading)
		return nil
	})
	if err != nil {
		return types.Collection[types.PowerReading]{}, err
	}

	return types.Collection[types.PowerReading]{
		Data:       readings,
		Count:      uint64(len(readings)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

func (s *Storage) GetLatestPowerReading(ctx context.Context, conditions ...ConditionFunc) (types.PowerReading, error) {
	result, err := s.QueryPowerReadings(ctx, append(conditions, WithSortBy("ts"), WithSortDesc(true), WithLimit(1))...)
	if err != nil {
		return types.PowerReading{}, err
	}

	if result.Count == 0 {
		return types.PowerReading{}, ErrNoRows
	}

	return result.Data[0], nil
}

type PowerStats struct {
	AvgPower     float64
	PeakPower    float64
	MinPower     float64
	AvgVoltage   float64
	ReadingCount int64
}

// PowerStatsByDevice aggregates readings over a time range. Zero readings
// yield a zero-valued stats record, not an error.
func (s *Storage) PowerStatsByDevice(ctx context.Context, deviceID string, from, to time.Time) (PowerStats, error) {
	var stats PowerStats

	err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(AVG(power), 0), COALESCE(MAX(power), 0), COALESCE(MIN(power), 0), COALESCE(AVG(voltage), 0), COUNT(*)
		FROM power_readings
		WHERE device_id = @device_id AND ts >= @from AND ts <= @to
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"from":      from.UTC(),
		"to":        to.UTC(),
	}).Scan(&stats.AvgPower, &stats.PeakPower, &stats.MinPower, &stats.AvgVoltage, &stats.ReadingCount)
	if err != nil {
		return PowerStats{}, err
	}

	return stats, nil
}

// PowerFactorStats returns the sum and count of power factor samples so
// callers can pool averages across devices weighted by sample count.
func (s *Storage) PowerFactorStats(ctx context.Context, deviceID string, from, to time.Time) (float64, int64, error) {
	var sum float64
	var count int64

	err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(power_factor), 0), COUNT(*)
		FROM power_readings
		WHERE device_id = @device_id AND ts >= @from AND ts <= @to
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"from":      from.UTC(),
		"to":        to.UTC(),
	}).Scan(&sum, &count)
	if err != nil {
		return 0, 0, err
	}

	return sum, count, nil
}

func (s *Storage) AddBatteryReading(ctx context.Context, b types.BatteryReading) error {
	if b.DeviceID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO battery_readings (ts, device_id, voltage, soc, charging, temperature)
		VALUES (@ts, @device_id, @voltage, @soc, @charging, @temperature)
	`, pgx.NamedArgs{
		"ts":          b.Timestamp.UTC(),
		"device_id":   b.DeviceID,
		"voltage":     b.Voltage,
		"soc":         b.SOC,
		"charging":    b.Charging,
		"temperature": b.Temperature,
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryBatteryReadings(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.BatteryReading], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "ts"
		condition.sortOrder = "DESC"
	}

	query := `
		SELECT ts, device_id, voltage, soc, charging, temperature, count(*) OVER () AS total
		FROM battery_readings
		` + condition.Where() + condition.OrderBy() + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.BatteryReading]{}, err
	}

	var b types.BatteryReading
	var temperature sql.NullFloat64
	var total int64

	readings := make([]types.BatteryReading, 0)

	_, err = pgx.ForEachRow(rows, []any{&b.Timestamp, &b.DeviceID, &b.Voltage, &b.SOC, &b.Charging, &temperature, &total}, func() error {
		reading := b
		if temperature.Valid {
			t := temperature.Float64
			reading.Temperature = &t
		}
		readings = append(readings, reading)
		return nil
	})
	if err != nil {
		return types.Collection[types.BatteryReading]{}, err
	}

	return types.Collection[types.BatteryReading]{
		Data:       readings,
		Count:      uint64(len(readings)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

func (s *Storage) GetLatestBatteryReading(ctx context.Context, conditions ...ConditionFunc) (types.BatteryReading, error) {
	result, err := s.QueryBatteryReadings(ctx, append(conditions, WithSortBy("ts"), WithSortDesc(true), WithLimit(1))...)
	if err != nil {
		return types.BatteryReading{}, err
	}

	if result.Count == 0 {
		return types.BatteryReading{}, ErrNoRows
	}

	return result.Data[0], nil
}
