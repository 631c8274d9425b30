package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/dto"
	"github.com/MugaboVedaste/e-comerce-Kush/internal/infra"
)

// ErrTransport signals that the message was valid but the mail hand-off
// failed; handlers surface it as a server error.
var ErrTransport = errors.New("failed to send message, please try again later")

// MailSender abstracts the SMTP mailer so tests can stub the transport.
type MailSender interface {
	Send(to, subject, body string) error
}

// ContactService relays contact-form messages to the fixed operator mailbox.
// Pure I/O glue: validate, compose plain text, hand off.
type ContactService interface {
	SendMessage(ctx context.Context, req dto.ContactRequest) error
}

type contactService struct {
	mailer   MailSender
	breaker  *infra.CircuitBreaker
	operator string
}

func NewContactService(mailer MailSender, breaker *infra.CircuitBreaker, operator string) ContactService {
	return &contactService{mailer: mailer, breaker: breaker, operator: operator}
}

func (s *contactService) SendMessage(_ context.Context, req dto.ContactRequest) error {
	subject := "Contact message from " + req.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s",
		req.Name, req.Email, req.Phone, req.Message)

	err := s.breaker.Execute(func() error {
		return s.mailer.Send(s.operator, subject, body)
	})
	if err != nil {
		return ErrTransport
	}
	return nil
}
