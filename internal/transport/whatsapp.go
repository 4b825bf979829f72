// Package transport sends outbound WhatsApp messages through the
// programmable-messaging provider.
package transport

import (
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Sender interface {
	Send(to, body string) error
	SendMedia(to, body, mediaURL string) error
}

type WhatsAppSender struct {
	client *twilio.RestClient
	from   string
}

func NewWhatsAppSender(accountSID, authToken, from string) *WhatsAppSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &WhatsAppSender{client: client, from: from}
}

func (s *WhatsAppSender) Send(to, body string) error {
	return s.send(to, body, "")
}

func (s *WhatsAppSender) SendMedia(to, body, mediaURL string) error {
	return s.send(to, body, mediaURL)
}

func (s *WhatsAppSender) send(to, body, mediaURL string) error {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(waAddress(s.from))
	params.SetTo(waAddress(to))
	params.SetBody(body)
	if mediaURL != "" {
		params.SetMediaUrl([]string{mediaURL})
	}

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send whatsapp message to %s: %w", to, err)
	}
	return nil
}

// waAddress makes sure the number carries the provider's whatsapp:+
// prefix exactly once.
func waAddress(number string) string {
	number = strings.TrimPrefix(number, "whatsapp:")
	if !strings.HasPrefix(number, "+") {
		number = "+" + number
	}
	return "whatsapp:" + number
}
