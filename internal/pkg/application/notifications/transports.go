package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	twilio "github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
)

type Attachment struct {
	Filename string
	Content  []byte
}

//go:generate moq -rm -out emailtransport_mock.go . EmailTransport
type EmailTransport interface {
	SendEmail(ctx context.Context, to, subject, htmlBody, textBody string, attachment *Attachment) ([]byte, error)
}

//go:generate moq -rm -out messagetransport_mock.go . MessageTransport
type MessageTransport interface {
	SendMessage(ctx context.Context, to, body string) ([]byte, error)
}

type smtpTransport struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPTransport(host string, port int, username, password, from string) EmailTransport {
	return &smtpTransport{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendEmail delivers a multipart message, plain text first with the html
// rendition as the alternative.
func (t *smtpTransport) SendEmail(ctx context.Context, to, subject, htmlBody, textBody string, attachment *Attachment) ([]byte, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", t.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if attachment != nil {
		m.Attach(attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment.Content)
			return err
		}))
	}

	err := t.dialer.DialAndSend(m)
	if err != nil {
		return nil, fmt.Errorf("smtp send to %s: %w", to, err)
	}

	return []byte(fmt.Sprintf(`{"provider":"smtp","to":%q,"subject":%q}`, to, subject)), nil
}

type twilioTransport struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioTransport sends WhatsApp messages through the Twilio API. The
// from number is the WhatsApp enabled sender without the whatsapp: prefix.
func NewTwilioTransport(accountSID, authToken, from string) MessageTransport {
	return &twilioTransport{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (t *twilioTransport) SendMessage(ctx context.Context, to, body string) ([]byte, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(whatsappAddr(to))
	params.SetFrom(whatsappAddr(t.from))
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return nil, fmt.Errorf("twilio send to %s: %w", to, err)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}

	return b, nil
}

func whatsappAddr(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}

type noopEmailTransport struct{}

// NewNoopEmailTransport logs nothing and sends nothing. Used when no SMTP
// relay is configured, so delivery records still get written with a mock
// response.
func NewNoopEmailTransport() EmailTransport {
	return &noopEmailTransport{}
}

func (t *noopEmailTransport) SendEmail(ctx context.Context, to, subject, htmlBody, textBody string, attachment *Attachment) ([]byte, error) {
	return []byte(fmt.Sprintf(`{"mock":true,"channel":"email","to":%q}`, to)), nil
}

type noopMessageTransport struct{}

func NewNoopMessageTransport() MessageTransport {
	return &noopMessageTransport{}
}

func (t *noopMessageTransport) SendMessage(ctx context.Context, to, body string) ([]byte, error) {
	return []byte(fmt.Sprintf(`{"mock":true,"channel":"whatsapp","to":%q}`, to)), nil
}
