package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
)

var ErrAlertNotFound = fmt.Errorf("alert not found")
var ErrInvalidTransition = fmt.Errorf("invalid alert status transition")

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Query(ctx context.Context, params map[string][]string) (types.Collection[types.Alert], error)
	GetByID(ctx context.Context, alertID string) (types.Alert, error)
	GetByDeviceID(ctx context.Context, deviceID string, offset, limit int) (types.Collection[types.Alert], error)

	Add(ctx context.Context, alert types.Alert) error
	Acknowledge(ctx context.Context, alertID string) error
	Resolve(ctx context.Context, alertID string) error

	Evaluator() *Evaluator
	RegisterTopicMessageHandler(ctx context.Context) error
}

//go:generate moq -rm -out alertstorage_mock.go . AlertStorage
type AlertStorage interface {
	AddAlert(ctx context.Context, alert types.Alert) error
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	SetAlertStatus(ctx context.Context, alertID string, status types.AlertStatus, resolvedAt *time.Time) error
}

type alertSvc struct {
	storage   AlertStorage
	messenger messaging.MsgContext
	evaluator *Evaluator
}

func New(s AlertStorage, m messaging.MsgContext, evaluator *Evaluator) AlertService {
	return &alertSvc{
		storage:   s,
		messenger: m,
		evaluator: evaluator,
	}
}

func (svc *alertSvc) Evaluator() *Evaluator {
	return svc.evaluator
}

func (svc *alertSvc) RegisterTopicMessageHandler(ctx context.Context) error {
	return svc.messenger.RegisterTopicMessageHandler("telemetry.reading", NewReadingReceivedHandler(svc))
}

func (svc *alertSvc) Query(ctx context.Context, params map[string][]string) (types.Collection[types.Alert], error) {
	alerts, err := svc.storage.QueryAlerts(ctx, storage.ParseConditions(params)...)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return alerts, nil
}

func (svc *alertSvc) GetByID(ctx context.Context, alertID string) (types.Alert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID))
	if err != nil {
		if err == storage.ErrNoRows {
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc *alertSvc) GetByDeviceID(ctx context.Context, deviceID string, offset, limit int) (types.Collection[types.Alert], error) {
	alerts, err := svc.storage.QueryAlerts(ctx, storage.WithDeviceID(deviceID), storage.WithOffset(offset), storage.WithLimit(limit))
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return alerts, nil
}

func (svc *alertSvc) Add(ctx context.Context, alert types.Alert) error {
	if alert.DeviceID == "" {
		return fmt.Errorf("no deviceID is set on alert")
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.Severity == "" {
		alert.Severity = types.SeverityInfo
	}
	if alert.Status == "" {
		alert.Status = types.AlertActive
	}
	if alert.ObservedAt.IsZero() {
		alert.ObservedAt = time.Now().UTC()
	}

	err := svc.storage.AddAlert(ctx, alert)
	if err != nil {
		return err
	}

	return svc.messenger.PublishOnTopic(ctx, &AlertCreated{
		Alert:     alert,
		Timestamp: alert.ObservedAt,
	})
}

// Acknowledge moves an alert from ACTIVE to ACKNOWLEDGED. Transitions only
// run forward; acknowledging a resolved alert is rejected.
func (svc *alertSvc) Acknowledge(ctx context.Context, alertID string) error {
	alert, err := svc.GetByID(ctx, alertID)
	if err != nil {
		return err
	}

	if alert.Status != types.AlertActive {
		return ErrInvalidTransition
	}

	return svc.storage.SetAlertStatus(ctx, alertID, types.AlertAcknowledged, nil)
}

func (svc *alertSvc) Resolve(ctx context.Context, alertID string) error {
	alert, err := svc.GetByID(ctx, alertID)
	if err != nil {
		return err
	}

	if alert.Status == types.AlertResolved {
		return ErrInvalidTransition
	}

	now := time.Now().UTC()

	err = svc.storage.SetAlertStatus(ctx, alertID, types.AlertResolved, &now)
	if err != nil {
		return err
	}

	return svc.messenger.PublishOnTopic(ctx, &AlertResolved{
		ID:        alertID,
		Timestamp: now,
	})
}
