package notifications

import (
	"context"
	"encoding/json"
	"time"

	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/gridpulse/power-monitor/pkg/types"
)

var tracer = otel.Tracer("power-monitor/notifications")

type alertCreated struct {
	Alert struct {
		ID         string    `json:"id"`
		DeviceID   string    `json:"deviceID"`
		AlertType  string    `json:"alertType"`
		Message    string    `json:"message"`
		Value      *float64  `json:"value,omitempty"`
		Severity   string    `json:"severity"`
		Status     string    `json:"status"`
		ObservedAt time.Time `json:"observedAt"`
	} `json:"alert"`
	Timestamp time.Time `json:"timestamp"`
}

// NewAlertCreatedHandler forwards WARNING and CRITICAL alerts to the
// subscribed clients of the device. INFO alerts are stored only and never
// pushed.
func NewAlertCreatedHandler(d Dispatcher) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "dispatch-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := alertCreated{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		severity := types.Severity(msg.Alert.Severity)
		if severity != types.SeverityWarning && severity != types.SeverityCritical {
			return
		}

		alert := types.Alert{
			ID:         msg.Alert.ID,
			DeviceID:   msg.Alert.DeviceID,
			AlertType:  msg.Alert.AlertType,
			Message:    msg.Alert.Message,
			Value:      msg.Alert.Value,
			Severity:   severity,
			Status:     types.AlertStatus(msg.Alert.Status),
			ObservedAt: msg.Alert.ObservedAt,
		}

		err = d.DispatchAlert(ctx, alert)
		if err != nil {
			log.Error("could not dispatch alert", "alert_id", alert.ID, "device_id", alert.DeviceID, "err", err.Error())
		}
	}
}
