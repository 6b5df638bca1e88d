package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gridpulse/power-monitor/internal/pkg/infrastructure/storage"
	"github.com/gridpulse/power-monitor/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

//go:generate moq -rm -out dispatcher_mock.go . Dispatcher
type Dispatcher interface {
	SendReport(ctx context.Context, client types.Client, report types.EnergyReport, channels ...types.Channel) ([]types.NotificationRecord, error)
	SendAlert(ctx context.Context, client types.Client, alert types.Alert) (types.NotificationRecord, error)
	DispatchAlert(ctx context.Context, alert types.Alert) error

	Query(ctx context.Context, params map[string][]string) (types.Collection[types.NotificationRecord], error)
	RegisterTopicMessageHandler(ctx context.Context) error
}

//go:generate moq -rm -out notificationstorage_mock.go . NotificationStorage
type NotificationStorage interface {
	AddNotification(ctx context.Context, n types.NotificationRecord) error
	UpdateNotification(ctx context.Context, notificationID string, status types.DeliveryStatus, response []byte, sentAt *time.Time) error
	QueryNotifications(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.NotificationRecord], error)
	GetSubscribedClients(ctx context.Context, deviceID string) ([]types.Client, error)
}

// ReportRenderer produces the channel specific renditions of a report. All
// renditions must present identical figures.
//
//go:generate moq -rm -out renderer_mock.go . ReportRenderer
type ReportRenderer interface {
	HTML(report types.EnergyReport, client types.Client) (string, error)
	Text(report types.EnergyReport, client types.Client) string
	Summary(report types.EnergyReport, client types.Client) string
	PDF(report types.EnergyReport, client types.Client) ([]byte, string, error)
}

type dispatcher struct {
	storage   NotificationStorage
	messenger messaging.MsgContext
	renderer  ReportRenderer
	email     EmailTransport
	whatsapp  MessageTransport
}

func New(s NotificationStorage, m messaging.MsgContext, r ReportRenderer, email EmailTransport, whatsapp MessageTransport) Dispatcher {
	return &dispatcher{
		storage:   s,
		messenger: m,
		renderer:  r,
		email:     email,
		whatsapp:  whatsapp,
	}
}

func (d *dispatcher) RegisterTopicMessageHandler(ctx context.Context) error {
	return d.messenger.RegisterTopicMessageHandler("alerts.alertCreated", NewAlertCreatedHandler(d))
}

// SendReport delivers a report over the requested channels, or over both
// when none are named. Channels run independently: a failure on one never
// blocks the other. A channel the client opted out of, or has no contact
// for, yields a SKIPPED record without a delivery attempt.
func (d *dispatcher) SendReport(ctx context.Context, client types.Client, report types.EnergyReport, channels ...types.Channel) ([]types.NotificationRecord, error) {
	if len(channels) == 0 {
		channels = []types.Channel{types.ChannelEmail, types.ChannelWhatsApp}
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	records := make([]types.NotificationRecord, 0, len(channels))

	collect := func(record types.NotificationRecord) {
		mu.Lock()
		records = append(records, record)
		mu.Unlock()
	}

	for _, channel := range channels {
		switch channel {
		case types.ChannelEmail:
			if !client.EmailReports || client.Email == "" {
				collect(d.skippedRecord(types.ChannelEmail, client, report))
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				collect(d.emailReport(ctx, client, report))
			}()
		case types.ChannelWhatsApp:
			if !client.WhatsAppAlerts || client.WhatsAppNumber == "" {
				collect(d.skippedRecord(types.ChannelWhatsApp, client, report))
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				collect(d.whatsappReport(ctx, client, report))
			}()
		}
	}

	wg.Wait()

	return records, nil
}

// skippedRecord reports a channel that was requested but never attempted.
// Skips are outcomes for the caller, not delivery attempts, so nothing is
// persisted.
func (d *dispatcher) skippedRecord(channel types.Channel, client types.Client, report types.EnergyReport) types.NotificationRecord {
	record := d.newRecord(channel, "", "", "report")
	record.ClientID = client.ID
	record.ReportID = report.ID
	record.Status = types.DeliverySkipped
	return record
}

func (d *dispatcher) emailReport(ctx context.Context, client types.Client, report types.EnergyReport) types.NotificationRecord {
	subject := fmt.Sprintf("Energy Report %s - %s", report.StartDate.Format(time.DateOnly), report.EndDate.Format(time.DateOnly))

	record := d.newRecord(types.ChannelEmail, client.Email, subject, "report")
	record.ClientID = client.ID
	record.ReportID = report.ID
	d.begin(ctx, record)

	html, err := d.renderer.HTML(report, client)
	if err != nil {
		return d.finish(ctx, record, nil, err)
	}
	text := d.renderer.Text(report, client)

	var attachment *Attachment

	pdf, filename, err := d.renderer.PDF(report, client)
	if err == nil {
		attachment = &Attachment{Filename: filename, Content: pdf}
	}

	response, err := d.email.SendEmail(ctx, client.Email, subject, html, text, attachment)

	return d.finish(ctx, record, response, err)
}

func (d *dispatcher) whatsappReport(ctx context.Context, client types.Client, report types.EnergyReport) types.NotificationRecord {
	body := d.renderer.Summary(report, client)

	record := d.newRecord(types.ChannelWhatsApp, client.WhatsAppNumber, body, "report")
	record.ClientID = client.ID
	record.ReportID = report.ID
	d.begin(ctx, record)

	response, err := d.whatsapp.SendMessage(ctx, client.WhatsAppNumber, body)

	return d.finish(ctx, record, response, err)
}

// SendAlert pushes one alert to one client over WhatsApp.
func (d *dispatcher) SendAlert(ctx context.Context, client types.Client, alert types.Alert) (types.NotificationRecord, error) {
	body := formatAlert(alert)

	record := d.newRecord(types.ChannelWhatsApp, client.WhatsAppNumber, body, "alert")
	record.ClientID = client.ID
	record.AlertID = alert.ID
	d.begin(ctx, record)

	response, err := d.whatsapp.SendMessage(ctx, client.WhatsAppNumber, body)

	return d.finish(ctx, record, response, err), nil
}

// DispatchAlert fans an alert out to every subscribed client of the device.
// A failed client is logged and skipped.
func (d *dispatcher) DispatchAlert(ctx context.Context, alert types.Alert) error {
	log := logging.GetFromContext(ctx)

	clients, err := d.storage.GetSubscribedClients(ctx, alert.DeviceID)
	if err != nil {
		return err
	}

	for _, client := range clients {
		if client.WhatsAppNumber == "" {
			continue
		}

		record, err := d.SendAlert(ctx, client, alert)
		if err != nil {
			log.Error("could not send alert notification", "client_id", client.ID, "err", err.Error())
			continue
		}

		if record.Status == types.DeliveryFailed {
			log.Warn("alert notification failed", "client_id", client.ID, "alert_id", alert.ID)
		}
	}

	return nil
}

func (d *dispatcher) Query(ctx context.Context, params map[string][]string) (types.Collection[types.NotificationRecord], error) {
	records, err := d.storage.QueryNotifications(ctx, storage.ParseConditions(params)...)
	if err != nil {
		return types.Collection[types.NotificationRecord]{}, err
	}

	return records, nil
}

func (d *dispatcher) newRecord(channel types.Channel, recipient, body, messageType string) types.NotificationRecord {
	return types.NotificationRecord{
		ID:          uuid.NewString(),
		Recipient:   recipient,
		Body:        body,
		Channel:     channel,
		MessageType: messageType,
		Status:      types.DeliveryPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// begin persists the PENDING record before the delivery attempt, so an
// attempt that crashes mid-flight still leaves an audit row. Storage
// problems degrade to a log line.
func (d *dispatcher) begin(ctx context.Context, record types.NotificationRecord) {
	log := logging.GetFromContext(ctx)

	err := d.storage.AddNotification(ctx, record)
	if err != nil {
		log.Error("could not store notification record", "notification_id", record.ID, "err", err.Error())
	}
}

// finish updates the record with its outcome. The provider response is kept
// verbatim. Storage problems degrade to a log line so the caller still gets
// the delivery outcome.
func (d *dispatcher) finish(ctx context.Context, record types.NotificationRecord, response []byte, sendErr error) types.NotificationRecord {
	log := logging.GetFromContext(ctx)

	if sendErr != nil {
		record.Status = types.DeliveryFailed
		record.Response = []byte(fmt.Sprintf(`{"error":%q}`, sendErr.Error()))
	} else {
		now := time.Now().UTC()
		record.Status = types.DeliverySent
		record.SentAt = &now
		record.Response = response
	}

	err := d.storage.UpdateNotification(ctx, record.ID, record.Status, record.Response, record.SentAt)
	if err != nil {
		log.Error("could not update notification record", "notification_id", record.ID, "err", err.Error())
	}

	return record
}

func formatAlert(alert types.Alert) string {
	body := fmt.Sprintf("[%s] %s on %s: %s", alert.Severity, alert.AlertType, alert.DeviceID, alert.Message)
	if alert.Value != nil {
		body = fmt.Sprintf("%s (measured %.2f)", body, *alert.Value)
	}
	return body
}
