package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddTariff(ctx context.Context, tariff types.Tariff) error {
	if tariff.ID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO tariffs (tariff_id, name, rate_per_kwh, currency, tod_start, tod_end, active)
		VALUES (@tariff_id, @name, @rate_per_kwh, @currency, @tod_start, @tod_end, @active)
		ON CONFLICT (tariff_id) DO UPDATE SET
			name = EXCLUDED.name,
			rate_per_kwh = EXCLUDED.rate_per_kwh,
			currency = EXCLUDED.currency,
			tod_start = EXCLUDED.tod_start,
			tod_end = EXCLUDED.tod_end,
			active = EXCLUDED.active
	`, pgx.NamedArgs{
		"tariff_id":    tariff.ID,
		"name":         tariff.Name,
		"rate_per_kwh": tariff.RatePerKwh,
		"currency":     tariff.Currency,
		"tod_start":    tariff.TimeOfDayStart,
		"tod_end":      tariff.TimeOfDayEnd,
		"active":       tariff.Active,
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) GetTariff(ctx context.Context, conditions ...ConditionFunc) (types.Tariff, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	var tariff types.Tariff
	var todStart, todEnd sql.NullString

	err := s.pool.QueryRow(ctx, `
		SELECT tariff_id, name, rate_per_kwh, currency, tod_start, tod_end, active
		FROM tariffs
		`+condition.Where()+`
		ORDER BY tariff_id
		LIMIT 1
	`, condition.NamedArgs()).
		Scan(&tariff.ID, &tariff.Name, &tariff.RatePerKwh, &tariff.Currency, &todStart, &todEnd, &tariff.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Tariff{}, ErrNoRows
		}
		return types.Tariff{}, err
	}

	if todStart.Valid {
		v := todStart.String
		tariff.TimeOfDayStart = &v
	}
	if todEnd.Valid {
		v := todEnd.String
		tariff.TimeOfDayEnd = &v
	}

	return tariff, nil
}

func (s *Storage) QueryTariffs(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Tariff], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "tariff_id"
	}

	query := `
		SELECT tariff_id, name, rate_per_kwh, currency, tod_start, tod_end, active, count(*) OVER () AS total
		FROM tariffs
		` + condition.Where() + condition.OrderBy() + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Tariff]{}, err
	}

	var tariff types.Tariff
	var todStart, todEnd sql.NullString
	var total int64

	tariffs := make([]types.Tariff, 0)

	_, err = pgx.ForEachRow(rows, []any{&tariff.ID, &tariff.Name, &tariff.RatePerKwh, &tariff.Currency, &todStart, &todEnd, &tariff.Active, &total}, func() error {
		t := tariff
		if todStart.Valid {
			v := todStart.String
			t.TimeOfDayStart = &v
		}
		if todEnd.Valid {
			v := todEnd.String
			t.TimeOfDayEnd = &v
		}
		tariffs = append(tariffs, t)
		return nil
	})
	if err != nil {
		return types.Collection[types.Tariff]{}, err
	}

	return types.Collection[types.Tariff]{
		Data:       tariffs,
		Count:      uint64(len(tariffs)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

// SeedTariffs loads reference tariffs at startup, upserting by id so the
// seed stays in sync with configuration across restarts.
func SeedTariffs(ctx context.Context, s *Storage, tariffs []types.Tariff) error {
	for _, t := range tariffs {
		if err := s.AddTariff(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
