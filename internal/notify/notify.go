package notify

import (
	"context"
	"errors"

	"github.com/ridness/clubbot/core/logger"
	"github.com/ridness/clubbot/core/telegram/sender"
	"log/slog"
)

// Sender delivers one text message to one chat. Implemented by the bot
// layer over the Telegram transport.
type Sender interface {
	SendTo(ctx context.Context, chatID int64, text string) error
}

// SenderFunc adapts a bare function to the Sender interface.
type SenderFunc func(ctx context.Context, chatID int64, text string) error

// SendTo calls the underlying function.
func (f SenderFunc) SendTo(ctx context.Context, chatID int64, text string) error {
	return f(ctx, chatID, text)
}

// Outcome is the per-recipient delivery result. For queued deliveries Err
// reflects acceptance by the outbound dispatcher, not final delivery —
// fan-out is best-effort by design.
type Outcome struct {
	Recipient int64
	Err       error
}

// Notifier broadcasts one payload to a set of recipients with per-recipient
// failure isolation. When a dispatcher is present, deliveries are queued
// asynchronously so a slow recipient never blocks the caller; a full queue
// falls back to a direct send.
type Notifier struct {
	sender     Sender
	dispatcher *sender.Dispatcher
}

// New builds a notifier. dispatcher may be nil, in which case every
// delivery is synchronous.
func New(s Sender, dispatcher *sender.Dispatcher) *Notifier {
	return &Notifier{sender: s, dispatcher: dispatcher}
}

// Deliver sends the payload to every recipient independently. A failure for
// one recipient never blocks or rolls back the others, and callers must not
// fail their own flow on a non-empty error outcome.
func (n *Notifier) Deliver(ctx context.Context, recipients []int64, payload string) []Outcome {
	outcomes := make([]Outcome, 0, len(recipients))
	for _, recipient := range recipients {
		if recipient == 0 {
			continue
		}
		err := n.deliverOne(ctx, recipient, payload)
		if err != nil {
			logger.Warn(ctx, "notify", "deliver.failed",
				slog.Int64("chat_id", recipient),
				slog.String("err", err.Error()),
			)
		}
		outcomes = append(outcomes, Outcome{Recipient: recipient, Err: err})
	}
	logger.Info(ctx, "notify", "deliver.done",
		slog.Int("recipients", len(outcomes)),
	)
	return outcomes
}

func (n *Notifier) deliverOne(ctx context.Context, recipient int64, payload string) error {
	if n.dispatcher == nil {
		return n.sender.SendTo(ctx, recipient, payload)
	}
	err := n.dispatcher.Enqueue(ctx, "notify.deliver", "sendMessage", func() error {
		return n.sender.SendTo(ctx, recipient, payload)
	})
	if errors.Is(err, sender.ErrQueueFull) || errors.Is(err, sender.ErrQueueClosed) {
		return n.sender.SendTo(ctx, recipient, payload)
	}
	return err
}
