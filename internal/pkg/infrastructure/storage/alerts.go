package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddAlert(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, device_id, alert_type, message, value, severity, status, observed_at)
		VALUES (@alert_id, @device_id, @alert_type, @message, @value, @severity, @status, @observed_at)
	`, pgx.NamedArgs{
		"alert_id":    alert.ID,
		"device_id":   alert.DeviceID,
		"alert_type":  alert.AlertType,
		"message":     alert.Message,
		"value":       alert.Value,
		"severity":    string(alert.Severity),
		"status":      string(alert.Status),
		"observed_at": alert.ObservedAt.UTC(),
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	var alert types.Alert
	var value sql.NullFloat64
	var resolvedAt sql.NullTime

	err := s.pool.QueryRow(ctx, `
		SELECT alert_id, device_id, alert_type, message, value, severity, status, observed_at, resolved_at
		FROM alerts
		`+condition.Where(), condition.NamedArgs()).
		Scan(&alert.ID, &alert.DeviceID, &alert.AlertType, &alert.Message, &value, &alert.Severity, &alert.Status, &alert.ObservedAt, &resolvedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	if value.Valid {
		v := value.Float64
		alert.Value = &v
	}
	if resolvedAt.Valid {
		t := resolvedAt.Time
		alert.ResolvedAt = &t
	}

	return alert, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "observed_at"
		condition.sortOrder = "DESC"
	}
	condition.timeColumn = "observed_at"

	query := `
		SELECT alert_id, device_id, alert_type, message, value, severity, status, observed_at, resolved_at, count(*) OVER () AS total
		FROM alerts
		` + condition.Where() + condition.OrderBy() + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	var alert types.Alert
	var value sql.NullFloat64
	var resolvedAt sql.NullTime
	var total int64

	alerts := make([]types.Alert, 0)

	_, err = pgx.ForEachRow(rows, []any{&alert.ID, &alert.DeviceID, &alert.AlertType, &alert.Message, &value, &alert.Severity, &alert.Status, &alert.ObservedAt, &resolvedAt, &total}, func() error {
		a := alert
		if value.Valid {
			v := value.Float64
			a.Value = &v
		}
		if resolvedAt.Valid {
			t := resolvedAt.Time
			a.ResolvedAt = &t
		}
		alerts = append(alerts, a)
		return nil
	})
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

func (s *Storage) SetAlertStatus(ctx context.Context, alertID string, status types.AlertStatus, resolvedAt *time.Time) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE alerts SET status = @status, resolved_at = COALESCE(@resolved_at, resolved_at)
		WHERE alert_id = @alert_id
	`, pgx.NamedArgs{
		"alert_id":    alertID,
		"status":      string(status),
		"resolved_at": resolvedAt,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// AlertCountsByDevice counts alerts observed in an inclusive date interval,
// total and critical.
func (s *Storage) AlertCountsByDevice(ctx context.Context, deviceID string, start, end time.Time) (int, int, error) {
	var total, critical int

	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE severity = 'CRITICAL')
		FROM alerts
		WHERE device_id = @device_id AND observed_at >= @from AND observed_at < @to
	`, pgx.NamedArgs{
		"device_id": deviceID,
		"from":      start.UTC(),
		"to":        end.AddDate(0, 0, 1).UTC(),
	}).Scan(&total, &critical)
	if err != nil {
		return 0, 0, err
	}

	return total, critical, nil
}
