// Package notification delivers completed ledger events to interested parties.
package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// KindDeposit is emitted after a credit.
	KindDeposit = "deposit"
	// KindWithdrawal is emitted after a debit.
	KindWithdrawal = "withdrawal"
	// KindTransfer is emitted once per completed transfer, addressed to the receiver.
	KindTransfer = "transfer"
	// KindInterest is emitted when interest is credited.
	KindInterest = "interest"
	// KindClosure is emitted when an account is closed.
	KindClosure = "account_closure"
)

// Message describes a completed ledger event.
type Message struct {
	Kind         string
	AccountID    string
	Counterparty string
	Amount       decimal.Decimal
	Body         string
	At           time.Time
}

// Notifier delivers ledger events to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes every message to a structured logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(ctx context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	attrs := []any{
		slog.String("kind", message.Kind),
		slog.String("account_id", message.AccountID),
		slog.String("amount", message.Amount.StringFixed(2)),
		slog.Time("at", message.At),
	}
	if message.Counterparty != "" {
		attrs = append(attrs, slog.String("counterparty", message.Counterparty))
	}
	if message.Body != "" {
		attrs = append(attrs, slog.String("body", message.Body))
	}
	n.logger.InfoContext(ctx, "notification", attrs...)
	return nil
}

// Fanout delivers each message to every notifier and joins their errors.
type Fanout []Notifier

// Send forwards message to every non-nil notifier.
func (f Fanout) Send(ctx context.Context, message Message) error {
	var errs []error
	for _, n := range f {
		if n == nil {
			continue
		}
		if err := n.Send(ctx, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps every message in memory. Useful for tests and simulations.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

// Send appends message.
func (r *Recorder) Send(_ context.Context, message Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return nil
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}
