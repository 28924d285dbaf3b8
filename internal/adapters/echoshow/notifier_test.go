package echoshow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"otasuke/internal/domain"
)

func TestSend_ResolvesAfterDelay(t *testing.T) {
	n := &Notifier{log: zerolog.Nop(), delay: 5 * time.Millisecond}
	if err := n.Send(context.Background(), domain.UserMother, "今日の特売", "お米が安いです"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSend_CancelledContext(t *testing.T) {
	n := &Notifier{log: zerolog.Nop(), delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := n.Send(ctx, domain.UserGibo, "t", "m")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
