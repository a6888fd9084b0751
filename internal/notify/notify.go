// Package notify delivers password-reset links to users. E-mail transport is
// an external collaborator; what ships here is the Twilio SMS carrier for
// accounts with a phone on file, plus a log-only sender for development.
// Either way a failed send is logged, never silently dropped.
package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/ankitmishra16/Blogger/internal/models"
)

// Sender delivers a reset link to a user.
type Sender interface {
	SendResetLink(ctx context.Context, user *models.User, link string) error
}

const resetBody = `To reset your password, visit the following link:
%s

If you did not make this request then simply ignore this message and no changes will be made.`

// TwilioSender texts the reset link over the Twilio Messages API.
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

func (s *TwilioSender) SendResetLink(ctx context.Context, user *models.User, link string) error {
	if user.Phone == "" {
		return fmt.Errorf("user %d has no phone number on file", user.ID)
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(user.Phone)
	params.SetFrom(s.from)
	params.SetBody(fmt.Sprintf(resetBody, link))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send to user %d: %w", user.ID, err)
	}
	return nil
}

// LogSender writes the reset link to the process log. Development fallback
// when no Twilio credentials are configured.
type LogSender struct{}

func (LogSender) SendResetLink(_ context.Context, user *models.User, link string) error {
	log.Printf("password reset link for %s: %s", user.Email, link)
	return nil
}
