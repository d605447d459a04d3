package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"authsvc/config"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type recordingSender struct {
	sent []*gomail.Msg
	err  error
}

func (s *recordingSender) DialAndSendWithContext(_ context.Context, messages ...*gomail.Msg) error {
	s.sent = append(s.sent, messages...)

	return s.err
}

func newTestMailer(s *recordingSender) *smtpMailer {
	return &smtpMailer{
		from:      "shop@example.com",
		newSender: func() (sender, error) { return s, nil },
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewSMTPMailer(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{}, slog.Default())
	assert.Error(t, err)

	m, err := NewSMTPMailer(&config.Config{Mail: &config.MailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "shop@example.com",
		Password: "secret",
		From:     "shop@example.com",
	}}, slog.Default())
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestSMTPMailer_Send(t *testing.T) {
	s := &recordingSender{}
	m := newTestMailer(s)

	err := m.Send(context.Background(), &service.Message{
		To:      "owner@example.com",
		Subject: "New payment",
		Body:    "hello",
	})
	require.NoError(t, err)
	require.Len(t, s.sent, 1)

	recipients, err := s.sent[0].GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"owner@example.com"}, recipients)
	assert.Equal(t, []string{"New payment"}, s.sent[0].GetGenHeader(gomail.HeaderSubject))
}

func TestSMTPMailer_SendSingleAttemptOnFailure(t *testing.T) {
	s := &recordingSender{err: errors.New("535 authentication failed")}
	m := newTestMailer(s)

	err := m.Send(context.Background(), &service.Message{To: "owner@example.com", Subject: "x", Body: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "535 authentication failed")
	assert.Len(t, s.sent, 1)
}

func TestSMTPMailer_InvalidRecipient(t *testing.T) {
	s := &recordingSender{}
	m := newTestMailer(s)

	err := m.Send(context.Background(), &service.Message{To: "not an address", Subject: "x", Body: "y"})
	assert.Error(t, err)
	assert.Empty(t, s.sent)
}
