package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddNotification(ctx context.Context, n types.NotificationRecord) error {
	if n.ID == "" {
		return ErrNoID
	}

	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO notification_records (notification_id, recipient, body, channel, message_type, status, alert_id, client_id, report_id, response, created_at, sent_at)
		VALUES (@notification_id, @recipient, @body, @channel, @message_type, @status, @alert_id, @client_id, @report_id, @response, @created_at, @sent_at)
	`, pgx.NamedArgs{
		"notification_id": n.ID,
		"recipient":       n.Recipient,
		"body":            n.Body,
		"channel":         string(n.Channel),
		"message_type":    n.MessageType,
		"status":          string(n.Status),
		"alert_id":        n.AlertID,
		"client_id":       n.ClientID,
		"report_id":       n.ReportID,
		"response":        []byte(n.Response),
		"created_at":      createdAt,
		"sent_at":         n.SentAt,
	})
	if err != nil {
		return err
	}

	return nil
}

// UpdateNotification records the final outcome of a send attempt, keeping
// the provider response verbatim for audit.
func (s *Storage) UpdateNotification(ctx context.Context, notificationID string, status types.DeliveryStatus, response []byte, sentAt *time.Time) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE notification_records SET status = @status, response = @response, sent_at = COALESCE(@sent_at, sent_at)
		WHERE notification_id = @notification_id
	`, pgx.NamedArgs{
		"notification_id": notificationID,
		"status":          string(status),
		"response":        response,
		"sent_at":         sentAt,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) QueryNotifications(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.NotificationRecord], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "created_at"
		condition.sortOrder = "DESC"
	}
	condition.timeColumn = "created_at"

	query := `
		SELECT notification_id, recipient, body, channel, message_type, status, alert_id, client_id, report_id, response, created_at, sent_at, count(*) OVER () AS total
		FROM notification_records
		` + condition.Where() + condition.OrderBy() + condition.OffsetLimit()

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.NotificationRecord]{}, err
	}

	var n types.NotificationRecord
	var response []byte
	var sentAt sql.NullTime
	var total int64

	records := make([]types.NotificationRecord, 0)

	_, err = pgx.ForEachRow(rows, []any{&n.ID, &n.Recipient, &n.Body, &n.Channel, &n.MessageType, &n.Status, &n.AlertID, &n.ClientID, &n.ReportID, &response, &n.CreatedAt, &sentAt, &total}, func() error {
		record := n
		if len(response) > 0 {
			record.Response = append([]byte(nil), response...)
		}
		if sentAt.Valid {
			t := sentAt.Time
			record.SentAt = &t
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return types.Collection[types.NotificationRecord]{}, err
	}

	return types.Collection[types.NotificationRecord]{
		Data:       records,
		Count:      uint64(len(records)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}
