// Package bank is the calling layer around account: it owns the set of open
// accounts, resolves ids, and reports every outcome to logs, notifications
// and metrics.
package bank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/congo-pay/corebank/internal/account"
	"github.com/congo-pay/corebank/internal/clock"
	"github.com/congo-pay/corebank/internal/metrics"
	"github.com/congo-pay/corebank/internal/money"
	"github.com/congo-pay/corebank/internal/notification"
)

const (
	opOpen     = "open"
	opDeposit  = "deposit"
	opWithdraw = "withdraw"
	opTransfer = "transfer"
	opInterest = "interest"
	opClose    = "close"

	defaultInterestWorkers = 4
)

// Service coordinates account operations.
type Service struct {
	repo     Repository
	clock    clock.Clock
	notifier notification.Notifier
	metrics  *metrics.Recorder
	logger   *slog.Logger
	workers  int
}

// Option customizes a Service.
type Option func(*Service)

// WithClock sets the clock handed to every account the service opens.
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithNotifier sets the destination for completed operations.
func WithNotifier(n notification.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithInterestWorkers bounds the concurrency of ApplyInterestAll.
func WithInterestWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewService builds a service over repo.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		clock:   clock.NewSystem(nil),
		logger:  slog.Default(),
		workers: defaultInterestWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenInput captures the data required to open an account. An empty ID is
// replaced with a generated one.
type OpenInput struct {
	ID             string
	Type           account.Type
	InitialBalance decimal.Decimal
}

// TransferInput describes a transfer between two stored accounts.
type TransferInput struct {
	FromID      string
	ToID        string
	Amount      decimal.Decimal
	Description string
}

// TransferResult reports both balances after a completed transfer.
type TransferResult struct {
	From account.Snapshot
	To   account.Snapshot
}

// InterestRun summarizes a monthly interest run.
type InterestRun struct {
	Accounts int
	Credited int
	Total    decimal.Decimal
}

// Statement is an account's state together with a copy of its ledger.
type Statement struct {
	Account      account.Snapshot
	Transactions []account.Transaction
}

// Open creates and stores a new account.
func (s *Service) Open(ctx context.Context, in OpenInput) (account.Snapshot, error) {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	acct, err := account.New(id, in.Type, in.InitialBalance, account.WithClock(s.clock))
	if err != nil {
		return account.Snapshot{}, s.reject(ctx, opOpen, id, err)
	}
	if err := s.repo.Create(ctx, acct); err != nil {
		return account.Snapshot{}, s.reject(ctx, opOpen, id, err)
	}

	snap := acct.Snapshot()
	s.metrics.Opened()
	s.accept(ctx, opOpen, snap)
	return snap, nil
}

// Get returns the current state of an account.
func (s *Service) Get(ctx context.Context, id string) (account.Snapshot, error) {
	acct, err := s.repo.Get(ctx, id)
	if err != nil {
		return account.Snapshot{}, err
	}
	return acct.Snapshot(), nil
}

// List returns every stored account ordered by id.
func (s *Service) List(ctx context.Context) ([]account.Snapshot, error) {
	accts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]account.Snapshot, 0, len(accts))
	for _, acct := range accts {
		out = append(out, acct.Snapshot())
	}
	return out, nil
}

// Deposit credits an account.
func (s *Service) Deposit(ctx context.Context, id string, amount decimal.Decimal, description string) (account.Snapshot, error) {
	acct, err := s.repo.Get(ctx, id)
	if err != nil {
		return account.Snapshot{}, s.reject(ctx, opDeposit, id, err)
	}
	if err := acct.Deposit(amount, description); err != nil {
		return account.Snapshot{}, s.reject(ctx, opDeposit, id, err)
	}

	snap := acct.Snapshot()
	s.accept(ctx, opDeposit, snap, slog.String("amount", money.Format(amount)))
	s.notify(ctx, notification.Message{
		Kind:      notification.KindDeposit,
		AccountID: id,
		Amount:    amount,
		Body:      description,
		At:        snap.LastActivityAt,
	})
	return snap, nil
}

// Withdraw debits an account.
func (s *Service) Withdraw(ctx context.Context, id string, amount decimal.Decimal, description string) (account.Snapshot, error) {
	acct, err := s.repo.Get(ctx, id)
	if err != nil {
		return account.Snapshot{}, s.reject(ctx, opWithdraw, id, err)
	}
	if err := acct.Withdraw(amount, description); err != nil {
		return account.Snapshot{}, s.reject(ctx, opWithdraw, id, err)
	}

	snap := acct.Snapshot()
	s.accept(ctx, opWithdraw, snap, slog.String("amount", money.Format(amount)))
	s.notify(ctx, notification.Message{
		Kind:      notification.KindWithdrawal,
		AccountID: id,
		Amount:    amount,
		Body:      description,
		At:        snap.LastActivityAt,
	})
	return snap, nil
}

// Transfer moves funds between two stored accounts. An unknown target is
// reported as account.ErrTargetUnavailable.
func (s *Service) Transfer(ctx context.Context, in TransferInput) (TransferResult, error) {
	from, err := s.repo.Get(ctx, in.FromID)
	if err != nil {
		return TransferResult{}, s.reject(ctx, opTransfer, in.FromID, err)
	}
	to, err := s.repo.Get(ctx, in.ToID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			err = fmt.Errorf("%w: %w", account.ErrTargetUnavailable, err)
		}
		return TransferResult{}, s.reject(ctx, opTransfer, in.FromID, err)
	}
	if err := from.Transfer(to, in.Amount, in.Description); err != nil {
		return TransferResult{}, s.reject(ctx, opTransfer, in.FromID, err)
	}

	res := TransferResult{From: from.Snapshot(), To: to.Snapshot()}
	s.metrics.Balance(res.To.ID, res.To.Balance)
	s.accept(ctx, opTransfer, res.From,
		slog.String("to", in.ToID),
		slog.String("amount", money.Format(in.Amount)),
	)
	body := fmt.Sprintf("You received %s from account %s", money.Format(in.Amount), in.FromID)
	if in.Description != "" {
		body += ": " + in.Description
	}
	s.notify(ctx, notification.Message{
		Kind:         notification.KindTransfer,
		AccountID:    in.ToID,
		Counterparty: in.FromID,
		Amount:       in.Amount,
		Body:         body,
		At:           res.To.LastActivityAt,
	})
	return res, nil
}

// ApplyInterest credits one account's interest and returns the amount.
// Closed accounts and empty balances earn zero without error.
func (s *Service) ApplyInterest(ctx context.Context, id string) (decimal.Decimal, error) {
	acct, err := s.repo.Get(ctx, id)
	if err != nil {
		return money.Zero, s.reject(ctx, opInterest, id, err)
	}
	return s.applyInterest(ctx, acct), nil
}

// ApplyInterestAll runs interest over every stored account concurrently.
func (s *Service) ApplyInterestAll(ctx context.Context) (InterestRun, error) {
	accts, err := s.repo.List(ctx)
	if err != nil {
		return InterestRun{}, err
	}

	var (
		mu  sync.Mutex
		run = InterestRun{Accounts: len(accts), Total: money.Zero}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, acct := range accts {
		acct := acct
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			credited := s.applyInterest(gctx, acct)
			if !credited.IsPositive() {
				return nil
			}
			mu.Lock()
			run.Credited++
			run.Total = run.Total.Add(credited)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return run, fmt.Errorf("interest run: %w", err)
	}

	s.logger.InfoContext(ctx, "interest run completed",
		"accounts", run.Accounts,
		"credited", run.Credited,
		"total", money.Format(run.Total),
	)
	return run, nil
}

// Close deactivates an account with a zero balance.
func (s *Service) Close(ctx context.Context, id string) (account.Snapshot, error) {
	acct, err := s.repo.Get(ctx, id)
	if err != nil {
		return account.Snapshot{}, s.reject(ctx, opClose, id, err)
	}
	if err := acct.Close(); err != nil {
		return account.Snapshot{}, s.reject(ctx, opClose, id, err)
	}

	snap := acct.Snapshot()
	s.metrics.Closed()
	s.accept(ctx, opClose, snap)
	s.notify(ctx, notification.Message{
		Kind:      notification.KindClosure,
		AccountID: id,
		Amount:    money.Zero,
		At:        snap.LastActivityAt,
	})
	return snap, nil
}

// Statement returns the account state and a copy of its ledger.
func (s *Service) Statement(ctx context.Context, id string) (Statement, error) {
	acct, err := s.repo.Get(ctx, id)
	if err != nil {
		return Statement{}, err
	}
	return Statement{Account: acct.Snapshot(), Transactions: acct.Transactions()}, nil
}

func (s *Service) applyInterest(ctx context.Context, acct *account.Account) decimal.Decimal {
	credited := acct.ApplyInterest()
	if !credited.IsPositive() {
		return credited
	}

	snap := acct.Snapshot()
	s.metrics.InterestCredited(credited)
	s.accept(ctx, opInterest, snap, slog.String("amount", money.Format(credited)))
	s.notify(ctx, notification.Message{
		Kind:      notification.KindInterest,
		AccountID: snap.ID,
		Amount:    credited,
		At:        snap.LastActivityAt,
	})
	return credited
}

func (s *Service) accept(ctx context.Context, op string, snap account.Snapshot, attrs ...any) {
	s.metrics.Accepted(op)
	s.metrics.Balance(snap.ID, snap.Balance)
	args := append([]any{
		slog.String("op", op),
		slog.String("account_id", snap.ID),
		slog.String("balance", money.Format(snap.Balance)),
	}, attrs...)
	s.logger.InfoContext(ctx, "operation accepted", args...)
}

func (s *Service) reject(ctx context.Context, op, id string, err error) error {
	reason := Reason(err)
	s.metrics.Rejected(op, reason)
	s.logger.WarnContext(ctx, "operation rejected",
		slog.String("op", op),
		slog.String("account_id", id),
		slog.String("reason", reason),
		slog.Any("error", err),
	)
	return err
}

func (s *Service) notify(ctx context.Context, msg notification.Message) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "notification failed", "kind", msg.Kind, "account_id", msg.AccountID, "error", err)
	}
}

// Reason maps an operation error to a short label for logs and metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, account.ErrTargetUnavailable):
		return "target_unavailable"
	case errors.Is(err, ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, ErrAccountExists):
		return "exists"
	case errors.Is(err, account.ErrAccountInactive):
		return "inactive"
	case errors.Is(err, account.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, account.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, account.ErrDailyLimitExceeded):
		return "daily_limit"
	case errors.Is(err, account.ErrBalanceNotZero):
		return "balance_not_zero"
	case errors.Is(err, account.ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "error"
	}
}
