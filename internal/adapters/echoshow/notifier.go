// Package echoshow is a mock smart-display sender. There is no real device
// integration yet: sends are logged and succeed after a fixed delay so the
// caller experiences the same latency shape a real push would have.
package echoshow

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"otasuke/internal/domain"
)

const sendDelay = time.Second

type Notifier struct {
	log   zerolog.Logger
	delay time.Duration
}

func New(log zerolog.Logger) *Notifier {
	return &Notifier{log: log, delay: sendDelay}
}

// Send logs the message and resolves after the fixed delay. It only fails
// when the context is cancelled first.
func (n *Notifier) Send(ctx context.Context, user domain.UserID, title, message string) error {
	n.log.Info().
		Str("recipient", user.Label()).
		Str("title", title).
		Str("message", message).
		Msg("echo show send (dev mode)")

	t := time.NewTimer(n.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
