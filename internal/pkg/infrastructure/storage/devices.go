package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/jackc/pgx/v5"
)

// EnsureDevice provisions a device on first contact and bumps last_seen on
// every subsequent one. Name, type and location are only written on insert,
// so an operator rename survives ingestion.
func (s *Storage) EnsureDevice(ctx context.Context, device types.Device) error {
	lastSeen := device.LastSeen
	if lastSeen.IsZero() {
		lastSeen = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO devices (device_id, name, type, location, active, last_seen)
		VALUES (@device_id, @name, @type, @location, @active, @last_seen)
		ON CONFLICT (device_id) DO UPDATE SET last_seen = GREATEST(devices.last_seen, EXCLUDED.last_seen)
	`, pgx.NamedArgs{
		"device_id": device.DeviceID,
		"name":      device.Name,
		"type":      device.Type,
		"location":  device.Location,
		"active":    device.Active,
		"last_seen": lastSeen,
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) AddDevice(ctx context.Context, device types.Device) error {
	if device.DeviceID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO devices (device_id, name, type, location, active)
		VALUES (@device_id, @name, @type, @location, @active)
		ON CONFLICT (device_id) DO NOTHING
	`, pgx.NamedArgs{
		"device_id": device.DeviceID,
		"name":      device.Name,
		"type":      device.Type,
		"location":  device.Location,
		"active":    device.Active,
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) GetDevice(ctx context.Context, conditions ...ConditionFunc) (types.Device, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	var device types.Device
	var lastSeen sql.NullTime

	err := s.pool.QueryRow(ctx, `
		SELECT device_id, name, type, location, active, last_seen, created_at
		FROM devices
		`+condition.Where(), condition.NamedArgs()).
		Scan(&device.DeviceID, &device.Name, &device.Type, &device.Location, &device.Active, &lastSeen, &device.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	if lastSeen.Valid {
		device.LastSeen = lastSeen.Time
	}

	return device, nil
}

func (s *Storage) QueryDevices(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Device], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "device_id"
	}
	condition.timeColumn = "last_seen"

	query := `
		SELECT device_id, name, type, location, active, last_seen, created_at, count(*) OVER () AS total
		FROM devices
		` + condition.Where() + condition.OrderBy() + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	var device types.Device
	var lastSeen sql.NullTime
	var total int64

	devices := make([]types.Device, 0)

	_, err = pgx.ForEachRow(rows, []any{&device.DeviceID, &device.Name, &device.Type, &device.Location, &device.Active, &lastSeen, &device.CreatedAt, &total}, func() error {
		d := device
		if lastSeen.Valid {
			d.LastSeen = lastSeen.Time
		}
		devices = append(devices, d)
		return nil
	})
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	return types.Collection[types.Device]{
		Data:       devices,
		Count:      uint64(len(devices)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}
