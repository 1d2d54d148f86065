package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/internal/pkg/mail"
)

func validMessage() models.ContactMessage {
	return models.ContactMessage{
		FirstName: " Ada ",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Research question",
		Message:   "Could we talk about your latest paper?",
	}
}

func TestSubmit_SendsMail(t *testing.T) {
	var sent []mail.Message
	svc := &Service{
		Recipient: "prof@example.com",
		Send: func(m mail.Message) error {
			sent = append(sent, m)
			return nil
		},
	}

	require.NoError(t, svc.Submit(validMessage(), ""))
	require.Len(t, sent, 1)
	assert.Equal(t, "prof@example.com", sent[0].To)
	assert.Equal(t, "ada@example.com", sent[0].ReplyTo)
	assert.Equal(t, "[Contact] Research question", sent[0].Subject)
	assert.Contains(t, sent[0].Body, "Name: Ada Lovelace")
}

func TestSubmit_Validation(t *testing.T) {
	svc := &Service{Recipient: "prof@example.com", Send: func(mail.Message) error {
		t.Fatal("must not send invalid messages")
		return nil
	}}

	msg := validMessage()
	msg.Email = "not-an-email"
	err := svc.Submit(msg, "")
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	msg = validMessage()
	msg.Message = "   "
	assert.True(t, errors.As(svc.Submit(msg, ""), &verr))
}

func TestSubmit_Captcha(t *testing.T) {
	svc := &Service{
		Recipient: "prof@example.com",
		Send:      func(mail.Message) error { return nil },
		VerifyCaptcha: func(token string) (bool, error) {
			if token == "good" {
				return true, nil
			}
			return false, errors.New("bad token")
		},
	}

	assert.ErrorIs(t, svc.Submit(validMessage(), "bad"), ErrCaptcha)
	assert.NoError(t, svc.Submit(validMessage(), "good"))
}

func TestSubmit_NotConfigured(t *testing.T) {
	svc := &Service{Send: func(mail.Message) error { return nil }}
	assert.ErrorIs(t, svc.Submit(validMessage(), ""), ErrNotConfigured)
}

func TestSubmit_SendFailure(t *testing.T) {
	svc := &Service{Recipient: "prof@example.com", Send: func(mail.Message) error {
		return errors.New("connection refused")
	}}
	assert.ErrorContains(t, svc.Submit(validMessage(), ""), "connection refused")
}
