// Package whatsapp sends outbound WhatsApp messages through Twilio. A no-op
// sender stands in when credentials are not configured so callers never have
// to nil-check.
package whatsapp

import (
	"errors"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/aqarcrm/aqarcrm/internal/logging"
)

var ErrNotConfigured = errors.New("whatsapp sender not configured")

type Sender interface {
	Send(toPhone, body string) error
}

type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, from: from}
}

func (s *TwilioSender) Send(toPhone, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(normalize(toPhone))
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}

// normalize ensures the whatsapp: channel prefix Twilio expects.
func normalize(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "whatsapp:") {
		return phone
	}
	return "whatsapp:" + phone
}

// NoopSender logs and drops messages.
type NoopSender struct{}

func (NoopSender) Send(toPhone, body string) error {
	logging.Logger.Debugf("whatsapp: sender disabled, dropping message to %s", toPhone)
	return ErrNotConfigured
}

// FromConfig picks the Twilio sender when fully configured, the no-op
// otherwise.
func FromConfig(accountSID, authToken, from string) Sender {
	if accountSID == "" || authToken == "" || from == "" {
		logging.Logger.Warn("whatsapp: Twilio credentials missing, messaging disabled")
		return NoopSender{}
	}
	return NewTwilioSender(accountSID, authToken, from)
}
