package worker

// email_worker.go
// Processes email jobs from QueueEmail: operator notifications enqueued when
// a new review is submitted.

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sender is the outbound mail transport, satisfied by infra.Mailer.
type Sender interface {
	Send(to, subject, body string) error
}

// EmailWorker sends queued notification mail via SMTP.
type EmailWorker struct {
	mailer Sender
}

func NewEmailWorker(mailer Sender) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends one queued email. A returned error moves the job to the DLQ.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return err
	}
	if payload.To == "" {
		log.Warn().Msg("email_worker: empty recipient — skipping")
		return errors.New("empty recipient")
	}

	if err := w.mailer.Send(payload.To, payload.Subject, payload.Body); err != nil {
		log.Error().Err(err).Str("to", payload.To).Msg("email_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.To).Msg("email_worker: notification sent")
	return nil
}
