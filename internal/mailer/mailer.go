// Package mailer wraps the transactional email provider behind a small
// Sender interface so the intake pipeline can treat email as an optional,
// injected capability.
package mailer

import "context"

// Message is a single outbound notification email.
type Message struct {
	From    string
	To      []string
	Cc      []string
	Subject string
	HTML    string
}

// Sender delivers a message through the configured provider. Implementations
// return the provider's message ID on success.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// Recipients is the fixed notification routing for form submissions. Values
// come from configuration, never from request data.
type Recipients struct {
	From string
	To   string
	Cc   string
}
