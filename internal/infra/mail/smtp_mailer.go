// Package mail implements the outbound email collaborator over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/gomail.v2"

	"fryfinder/config"
	"fryfinder/internal/domain/service"
)

// smtpMailer sends transactional mail through an SMTP relay using gomail.
// When no credential is configured every send is a logged no-op, so local
// development never needs a mail account.
type smtpMailer struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	return &smtpMailer{
		cfg:    cfg.SMTP,
		logger: logger,
	}
}

// SendOrderConfirmation sends the order summary to the customer.
func (m *smtpMailer) SendOrderConfirmation(ctx context.Context, to string, confirmation *service.OrderConfirmation) error {
	subject := fmt.Sprintf("Order confirmed - %s", confirmation.LocationName)

	var body strings.Builder
	fmt.Fprintf(&body, "<p>Thanks for your order at %s on %s!</p>",
		confirmation.LocationName, confirmation.EventDate.Format("Monday, January 2"))
	body.WriteString("<ul>")
	for _, line := range confirmation.Lines {
		fmt.Fprintf(&body, "<li>%d x %s - $%.2f</li>", line.Quantity, line.Name, line.UnitPrice*float64(line.Quantity))
	}
	body.WriteString("</ul>")
	fmt.Fprintf(&body, "<p><strong>Total: $%.2f</strong></p>", confirmation.Total)
	if confirmation.EstimatedWait != nil {
		fmt.Fprintf(&body, "<p>Estimated wait: about %d minutes.</p>", *confirmation.EstimatedWait)
	}
	if confirmation.PickupTime != "" {
		fmt.Fprintf(&body, "<p>Requested pickup time: %s</p>", confirmation.PickupTime)
	}
	body.WriteString("<p>Payment is collected in person. See you there!</p>")

	return m.send(to, subject, body.String())
}

// SendOrderReady tells the customer their order is ready.
func (m *smtpMailer) SendOrderReady(ctx context.Context, to string, locationName string) error {
	subject := fmt.Sprintf("Your order at %s is ready", locationName)
	body := fmt.Sprintf("<p>Your order at %s is ready. Come and get it while it's hot!</p>", locationName)

	return m.send(to, subject, body)
}

func (m *smtpMailer) send(to, subject, htmlBody string) error {
	if !m.configured() {
		m.logger.Warn("SMTP not configured, skipping email",
			slog.String("subject", subject),
		)

		return nil
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", m.cfg.Email, m.cfg.Sender)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Email, m.cfg.Password)
	if err := dialer.DialAndSend(message); err != nil {
		return err
	}

	return nil
}

func (m *smtpMailer) configured() bool {
	return m.cfg != nil && m.cfg.Host != "" && m.cfg.Email != ""
}
