package mailer

import "github.com/rs/zerolog"

// ConsoleSender logs messages instead of delivering them. Used when no
// SendGrid API key is configured (local development and tests).
type ConsoleSender struct {
	log zerolog.Logger
}

// NewConsoleSender creates a logging sender.
func NewConsoleSender(log zerolog.Logger) *ConsoleSender {
	return &ConsoleSender{log: log.With().Str("component", "console_mailer").Logger()}
}

// Send logs the message and reports success.
func (s *ConsoleSender) Send(msg *Message) error {
	s.log.Info().
		Str("to", msg.ToAddress).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("Email (console)")
	return nil
}
