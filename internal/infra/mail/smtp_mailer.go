// Package mail delivers email over SMTP with go-mail.
package mail

import (
	"context"
	"log/slog"
	"time"

	"authsvc/config"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const sendTimeout = 30 * time.Second

// sender is the part of *gomail.Client the mailer uses.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// smtpMailer implements service.Mailer. Every Send dials a fresh connection,
// so concurrent requests never share SMTP session state.
type smtpMailer struct {
	from      string
	newSender func() (sender, error)
	logger    *slog.Logger
}

// NewSMTPMailer builds a mailer that authenticates with the configured account
// and requires STARTTLS.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg == nil || cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail host must be provided")
	}
	mailCfg := *cfg.Mail

	return &smtpMailer{
		from: mailCfg.From,
		newSender: func() (sender, error) {
			client, err := gomail.NewClient(mailCfg.Host,
				gomail.WithPort(mailCfg.Port),
				gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
				gomail.WithUsername(mailCfg.Username),
				gomail.WithPassword(mailCfg.Password),
				gomail.WithTLSPolicy(gomail.TLSMandatory),
				gomail.WithTimeout(sendTimeout),
			)
			if err != nil {
				return nil, errors.Wrap(err, "failed to create SMTP client")
			}

			return client, nil
		},
		logger: logger,
	}, nil
}

// Send delivers msg in a single attempt.
func (m *smtpMailer) Send(ctx context.Context, msg *service.Message) error {
	gm, err := m.buildMsg(msg)
	if err != nil {
		return err
	}

	client, err := m.newSender()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, gm); err != nil {
		return errors.Wrap(err, "failed to send email")
	}
	m.logger.Debug("Email sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))

	return nil
}

func (m *smtpMailer) buildMsg(msg *service.Message) (*gomail.Msg, error) {
	gm := gomail.NewMsg()
	if err := gm.From(m.from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := gm.To(msg.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	gm.Subject(msg.Subject)
	gm.SetBodyString(gomail.TypeTextPlain, msg.Body)

	return gm, nil
}
