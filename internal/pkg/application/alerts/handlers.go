package alerts

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

var tracer = otel.Tracer("power-monitor/alerts")

type readingReceived struct {
	DeviceID       string   `json:"deviceID"`
	Voltage        float64  `json:"voltage"`
	Current        float64  `json:"current"`
	Power          float64  `json:"power"`
	Frequency      float64  `json:"frequency"`
	PowerFactor    float64  `json:"powerFactor"`
	BatteryVoltage *float64 `json:"batteryVoltage,omitempty"`
	BatterySOC     *float64 `json:"batterySoc,omitempty"`
	Timestamp      string   `json:"timestamp"`
}

// NewReadingReceivedHandler evaluates each incoming reading against the
// threshold rules and stores an alert per crossing.
func NewReadingReceivedHandler(svc AlertService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "evaluate-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		msg := readingReceived{}

		err = json.Unmarshal(itm.Body(), &msg)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		ts, err := time.Parse(time.RFC3339Nano, msg.Timestamp)
		if err != nil {
			ts = time.Now().UTC()
		}

		reading := types.PowerReading{
			DeviceID:       msg.DeviceID,
			Voltage:        msg.Voltage,
			Current:        msg.Current,
			Power:          msg.Power,
			Frequency:      msg.Frequency,
			PowerFactor:    msg.PowerFactor,
			BatteryVoltage: msg.BatteryVoltage,
			BatterySOC:     msg.BatterySOC,
			Timestamp:      ts,
		}

		for _, alert := range svc.Evaluator().Evaluate(reading) {
			err = svc.Add(ctx, alert)
			if err != nil {
				log.Error("could not create alert", "device_id", alert.DeviceID, "alert_type", alert.AlertType, "err", err.Error())
				return
			}
		}
	}
}
