// Package mailer delivers invitation emails. Delivery is abstracted behind
// the Sender interface so production uses SendGrid while development and
// tests use the console sender.
package mailer

// Message is a single outbound email.
type Message struct {
	ToName    string
	ToAddress string
	Subject   string
	Body      string
}

// Sender delivers a message to its recipient.
type Sender interface {
	Send(msg *Message) error
}
