package notifications

import (
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const (
	fromName    = "Code with Ahsan"
	fromAddress = "no-reply@codewithahsan.dev"
)

// Mailer sends transactional email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(toEmail, toName, subject, htmlContent, plainText string) error
}

type sendgridMailer struct {
	apiKey string
}

// NewMailer returns a sendgrid-backed Mailer. If apiKey is empty a no-op
// mailer is returned so local environments work without credentials.
func NewMailer(apiKey string) Mailer {
	if apiKey == "" {
		zap.S().Warn("SENDGRID_API_KEY not set, emails will be dropped")
		return noopMailer{}
	}
	return &sendgridMailer{apiKey: apiKey}
}

func (m *sendgridMailer) Send(toEmail, toName, subject, htmlContent, plainText string) error {
	from := mail.NewEmail(fromName, fromAddress)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}

type noopMailer struct{}

func (noopMailer) Send(toEmail, toName, subject, htmlContent, plainText string) error {
	zap.S().Debugw("dropping email, no sendgrid api key", "to", toEmail, "subject", subject)
	return nil
}
