package notify

import (
	"context"
	"net/url"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers mail through the Resend API.
type ResendSender struct {
	client *resend.Client
}

var _ Sender = (*ResendSender)(nil)

// NewResendSender returns a sender for apiKey. A non-nil baseURL overrides the
// API endpoint.
func NewResendSender(apiKey string, baseURL *url.URL) *ResendSender {
	client := resend.NewClient(apiKey)
	if baseURL != nil {
		client.BaseURL = baseURL
	}
	return &ResendSender{client: client}
}

// ResendFactory returns a SenderFactory producing ResendSenders against baseURL.
func ResendFactory(baseURL *url.URL) SenderFactory {
	return func(apiKey string) Sender {
		return NewResendSender(apiKey, baseURL)
	}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	return err
}
