package mailer

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendgridSender delivers mail through the SendGrid v3 API.
type SendgridSender struct {
	key  string
	from *sgmail.Email
}

// NewSendgridSender creates a SendGrid-backed sender.
func NewSendgridSender(apiKey, fromName, fromAddr string) *SendgridSender {
	return &SendgridSender{
		key:  apiKey,
		from: sgmail.NewEmail(fromName, fromAddr),
	}
}

// Send delivers one message synchronously. The email worker counts a failed
// delivery and moves on, so any non-2xx response is just an error here.
func (s *SendgridSender) Send(msg *Message) error {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToAddress))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Body))

	req := sendgrid.GetRequest(s.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
