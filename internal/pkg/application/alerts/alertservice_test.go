package alerts

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/matryer/is"
)

func TestReadingReceivedHandler(t *testing.T) {
	is := is.New(t)
	log := slog.Default()
	ctx := context.Background()

	s := &AlertStorageMock{
		AddAlertFunc: func(ctx context.Context, alert types.Alert) error {
			return nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, m, NewEvaluator(nil))

	soc := 15.0
	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(readingReceived{
				DeviceID:   "PZEM-001",
				Voltage:    265.0,
				Current:    12.5,
				Power:      3300.0,
				BatterySOC: &soc,
				Timestamp:  "2025-06-10T08:15:00Z",
			})
			return b
		},
	}

	handler := NewReadingReceivedHandler(svc)
	handler(ctx, msg, log)

	// 265V crosses HIGH_VOLTAGE and 15% crosses both battery rules
	is.Equal(3, len(s.AddAlertCalls()))
	is.Equal("HIGH_VOLTAGE", s.AddAlertCalls()[0].Alert.AlertType)
	is.Equal(3, len(m.PublishOnTopicCalls()))
}

func TestEvaluatorSkipsMissingBatteryMetrics(t *testing.T) {
	is := is.New(t)

	e := NewEvaluator(nil)

	alerts := e.Evaluate(types.PowerReading{
		DeviceID:  "PZEM-001",
		Voltage:   230.0,
		Power:     1200.0,
		Timestamp: time.Now().UTC(),
	})

	is.Equal(0, len(alerts))
}

func TestEvaluatorReportsCrossings(t *testing.T) {
	is := is.New(t)

	e := NewEvaluator(nil)

	alerts := e.Evaluate(types.PowerReading{
		DeviceID:  "PZEM-001",
		Voltage:   170.0,
		Power:     5500.0,
		Timestamp: time.Now().UTC(),
	})

	is.Equal(2, len(alerts))
	is.Equal("LOW_VOLTAGE", alerts[0].AlertType)
	is.Equal(types.SeverityWarning, alerts[0].Severity)
	is.Equal("OVERLOAD", alerts[1].AlertType)
	is.Equal(170.0, *alerts[0].Value)
}

func TestAddFillsDefaultsAndPublishes(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlertStorageMock{
		AddAlertFunc: func(ctx context.Context, alert types.Alert) error {
			return nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, m, NewEvaluator(nil))

	err := svc.Add(ctx, types.Alert{DeviceID: "PZEM-001", AlertType: "OVERLOAD"})
	is.NoErr(err)

	added := s.AddAlertCalls()[0].Alert
	is.True(added.ID != "")
	is.Equal(types.SeverityInfo, added.Severity)
	is.Equal(types.AlertActive, added.Status)

	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal("alerts.alertCreated", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestAcknowledgeRequiresActiveAlert(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlertStorageMock{
		GetAlertFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
			return types.Alert{ID: "alert-1", Status: types.AlertResolved}, nil
		},
	}

	svc := New(s, &messaging.MsgContextMock{}, NewEvaluator(nil))

	err := svc.Acknowledge(ctx, "alert-1")
	is.Equal(ErrInvalidTransition, err)
	is.Equal(0, len(s.SetAlertStatusCalls()))
}

func TestResolveStampsTimestampAndPublishes(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlertStorageMock{
		GetAlertFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
			return types.Alert{ID: "alert-1", Status: types.AlertAcknowledged}, nil
		},
		SetAlertStatusFunc: func(ctx context.Context, alertID string, status types.AlertStatus, resolvedAt *time.Time) error {
			return nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, m, NewEvaluator(nil))

	err := svc.Resolve(ctx, "alert-1")
	is.NoErr(err)

	call := s.SetAlertStatusCalls()[0]
	is.Equal(types.AlertResolved, call.Status)
	is.True(call.ResolvedAt != nil)
	is.Equal("alerts.alertResolved", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestConfigurationRejectsUnknownOperator(t *testing.T) {
	is := is.New(t)

	yaml := `
rules:
  - metric: voltage
    operator: between
    threshold: 250
    severity: WARNING
    alertType: HIGH_VOLTAGE
    message: Voltage above safe limit
`
	_, err := NewConfiguration(strings.NewReader(yaml))
	is.True(err != nil)
}
