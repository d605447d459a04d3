package service

import "context"

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers email through an outbound transport. Send makes exactly one
// delivery attempt.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
