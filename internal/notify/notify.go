// Package notify emails the site owner when a contact form submission arrives.
package notify

import (
	"context"
	"fmt"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers email through a provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFactory builds a Sender for an API key. Keys live in the settings
// record and may change between requests.
type SenderFactory func(apiKey string) Sender

// Credentials identify the provider account and the recipient.
type Credentials struct {
	APIKey    string
	Recipient string
}

// DeliveryError reports that the provider rejected or failed to accept a message.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver notification: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Notifier formats submissions and hands them to a Sender.
type Notifier struct {
	from      string
	newSender SenderFactory
}

// NewNotifier returns a Notifier that sends from the given address.
func NewNotifier(from string, newSender SenderFactory) *Notifier {
	return &Notifier{from: from, newSender: newSender}
}

// Notify emails sub to creds.Recipient. Provider failures are returned as *DeliveryError.
func (n *Notifier) Notify(ctx context.Context, sub *model.ContactSubmission, creds Credentials) error {
	msg, err := Compose(n.from, creds.Recipient, sub)
	if err != nil {
		return err
	}
	if err := n.newSender(creds.APIKey).Send(ctx, msg); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}
