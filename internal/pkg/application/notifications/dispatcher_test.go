package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/gridpulse/power-monitor/pkg/types"
	"github.com/matryer/is"
)

func TestSendReportDeliversToBothChannels(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newNotificationStorageMock()
	email := &EmailTransportMock{
		SendEmailFunc: func(ctx context.Context, to, subject, htmlBody, textBody string, attachment *Attachment) ([]byte, error) {
			return []byte(`{"provider":"smtp"}`), nil
		},
	}
	whatsapp := &MessageTransportMock{
		SendMessageFunc: func(ctx context.Context, to, body string) ([]byte, error) {
			return []byte(`{"sid":"SM123"}`), nil
		},
	}

	d := New(s, &messaging.MsgContextMock{}, newRendererMock(), email, whatsapp)

	records, err := d.SendReport(ctx, testClient(), testReport())
	is.NoErr(err)

	is.Equal(2, len(records))
	for _, record := range records {
		is.Equal(types.DeliverySent, record.Status)
		is.True(record.SentAt != nil)
	}

	// one PENDING row per attempt, then each updated to its outcome
	is.Equal(2, len(s.AddNotificationCalls()))
	is.Equal(2, len(s.UpdateNotificationCalls()))
	for _, call := range s.UpdateNotificationCalls() {
		is.Equal(types.DeliverySent, call.Status)
	}

	is.Equal(1, len(email.SendEmailCalls()))
	is.Equal("report text", email.SendEmailCalls()[0].TextBody)
	is.True(email.SendEmailCalls()[0].Attachment != nil)
	is.Equal("energy_report_Adeola_Motors_2024-06-01_2024-06-07.pdf", email.SendEmailCalls()[0].Attachment.Filename)
}

func TestSendReportChannelsFailIndependently(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newNotificationStorageMock()
	email := &EmailTransportMock{
		SendEmailFunc: func(ctx context.Context, to, subject, htmlBody, textBody string, attachment *Attachment) ([]byte, error) {
			return nil, fmt.Errorf("relay refused connection")
		},
	}
	whatsapp := &MessageTransportMock{
		SendMessageFunc: func(ctx context.Context, to, body string) ([]byte, error) {
			return []byte(`{"sid":"SM123"}`), nil
		},
	}

	d := New(s, &messaging.MsgContextMock{}, newRendererMock(), email, whatsapp)

	records, err := d.SendReport(ctx, testClient(), testReport())
	is.NoErr(err)
	is.Equal(2, len(records))

	byChannel := map[types.Channel]types.NotificationRecord{}
	for _, record := range records {
		byChannel[record.Channel] = record
	}

	is.Equal(types.DeliveryFailed, byChannel[types.ChannelEmail].Status)
	is.True(strings.Contains(string(byChannel[types.ChannelEmail].Response), "relay refused connection"))
	is.Equal(types.DeliverySent, byChannel[types.ChannelWhatsApp].Status)
}

func TestSendReportSkipsChannelsWithoutOptIn(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newNotificationStorageMock()
	whatsapp := &MessageTransportMock{
		SendMessageFunc: func(ctx context.Context, to, body string) ([]byte, error) {
			return []byte(`{}`), nil
		},
	}

	client := testClient()
	client.EmailReports = false

	d := New(s, &messaging.MsgContextMock{}, newRendererMock(), &EmailTransportMock{}, whatsapp)

	records, err := d.SendReport(ctx, client, testReport())
	is.NoErr(err)

	// a skipped channel still gets an outcome, but no delivery attempt
	// and no stored record
	is.Equal(2, len(records))

	byChannel := map[types.Channel]types.NotificationRecord{}
	for _, record := range records {
		byChannel[record.Channel] = record
	}

	is.Equal(types.DeliverySkipped, byChannel[types.ChannelEmail].Status)
	is.Equal(types.DeliverySent, byChannel[types.ChannelWhatsApp].Status)
	is.Equal(1, len(s.AddNotificationCalls()))
	is.Equal(types.ChannelWhatsApp, s.AddNotificationCalls()[0].N.Channel)
}

func TestSendReportHonoursRequestedChannels(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newNotificationStorageMock()
	whatsapp := &MessageTransportMock{
		SendMessageFunc: func(ctx context.Context, to, body string) ([]byte, error) {
			return []byte(`{}`), nil
		},
	}

	email := &EmailTransportMock{
		SendEmailFunc: func(ctx context.Context, to, subject, htmlBody, textBody string, attachment *Attachment) ([]byte, error) {
			return []byte(`{}`), nil
		},
	}

	d := New(s, &messaging.MsgContextMock{}, newRendererMock(), email, whatsapp)

	records, err := d.SendReport(ctx, testClient(), testReport(), types.ChannelWhatsApp)
	is.NoErr(err)

	is.Equal(1, len(records))
	is.Equal(types.ChannelWhatsApp, records[0].Channel)
	is.Equal(0, len(email.SendEmailCalls()))
	is.Equal(1, len(whatsapp.SendMessageCalls()))
}

func TestNoopTransportRecordsMockDelivery(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newNotificationStorageMock()

	d := New(s, &messaging.MsgContextMock{}, newRendererMock(), NewNoopEmailTransport(), NewNoopMessageTransport())

	record, err := d.SendAlert(ctx, testClient(), testAlert(types.SeverityCritical))
	is.NoErr(err)

	is.Equal(types.DeliverySent, record.Status)

	var response map[string]any
	is.NoErr(json.Unmarshal(record.Response, &response))
	is.Equal(true, response["mock"])
}

func TestDispatchAlertSkipsClientsWithoutNumber(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := newNotificationStorageMock()
	s.GetSubscribedClientsFunc = func(ctx context.Context, deviceID string) ([]types.Client, error) {
		return []types.Client{
			{ID: "client-1", WhatsAppAlerts: true, WhatsAppNumber: "+2348012345678"},
			{ID: "client-2", WhatsAppAlerts: true},
		}, nil
	}

	whatsapp := &MessageTransportMock{
		SendMessageFunc: func(ctx context.Context, to, body string) ([]byte, error) {
			return []byte(`{}`), nil
		},
	}

	d := New(s, &messaging.MsgContextMock{}, newRendererMock(), &EmailTransportMock{}, whatsapp)

	err := d.DispatchAlert(ctx, testAlert(types.SeverityWarning))
	is.NoErr(err)

	is.Equal(1, len(whatsapp.SendMessageCalls()))
	is.Equal("+2348012345678", whatsapp.SendMessageCalls()[0].To)
}

func TestAlertCreatedHandlerGatesOnSeverity(t *testing.T) {
	is := is.New(t)
	log := slog.Default()
	ctx := context.Background()

	d := &DispatcherMock{
		DispatchAlertFunc: func(ctx context.Context, alert types.Alert) error {
			return nil
		},
	}

	handler := NewAlertCreatedHandler(d)

	handler(ctx, alertMessage(types.SeverityInfo), log)
	is.Equal(0, len(d.DispatchAlertCalls()))

	handler(ctx, alertMessage(types.SeverityWarning), log)
	is.Equal(1, len(d.DispatchAlertCalls()))

	handler(ctx, alertMessage(types.SeverityCritical), log)
	is.Equal(2, len(d.DispatchAlertCalls()))
	is.Equal("PZEM-001", d.DispatchAlertCalls()[1].Alert.DeviceID)
}

func alertMessage(severity types.Severity) messaging.IncomingTopicMessage {
	return &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(map[string]any{
				"alert":     testAlert(severity),
				"timestamp": time.Now().UTC(),
			})
			return b
		},
	}
}

func testClient() types.Client {
	return types.Client{
		ID:             "client-1",
		Name:           "Adeola Motors",
		Email:          "ops@adeolamotors.example",
		WhatsAppNumber: "+2348012345678",
		Active:         true,
		WhatsAppAlerts: true,
		EmailReports:   true,
	}
}

func testReport() types.EnergyReport {
	return types.EnergyReport{
		ID:        "report-1",
		ClientID:  "client-1",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC),
		Currency:  "NGN",
	}
}

func testAlert(severity types.Severity) types.Alert {
	v := 265.0
	return types.Alert{
		ID:         "alert-1",
		DeviceID:   "PZEM-001",
		AlertType:  "HIGH_VOLTAGE",
		Message:    "Voltage above safe limit",
		Value:      &v,
		Severity:   severity,
		Status:     types.AlertActive,
		ObservedAt: time.Now().UTC(),
	}
}

func newNotificationStorageMock() *NotificationStorageMock {
	return &NotificationStorageMock{
		AddNotificationFunc: func(ctx context.Context, n types.NotificationRecord) error {
			return nil
		},
		UpdateNotificationFunc: func(ctx context.Context, notificationID string, status types.DeliveryStatus, response []byte, sentAt *time.Time) error {
			return nil
		},
	}
}

func newRendererMock() *ReportRendererMock {
	return &ReportRendererMock{
		HTMLFunc: func(report types.EnergyReport, client types.Client) (string, error) {
			return "<html></html>", nil
		},
		TextFunc: func(report types.EnergyReport, client types.Client) string {
			return "report text"
		},
		SummaryFunc: func(report types.EnergyReport, client types.Client) string {
			return "summary"
		},
		PDFFunc: func(report types.EnergyReport, client types.Client) ([]byte, string, error) {
			filename := fmt.Sprintf("energy_report_%s_%s_%s.pdf", strings.ReplaceAll(client.Name, " ", "_"),
				report.StartDate.Format("2006-01-02"), report.EndDate.Format("2006-01-02"))
			return []byte("%PDF"), filename, nil
		},
	}
}
