package simulation

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/congo-pay/corebank/internal/account"
	"github.com/congo-pay/corebank/internal/bank"
	"github.com/congo-pay/corebank/internal/clock"
	"github.com/congo-pay/corebank/internal/metrics"
	"github.com/congo-pay/corebank/internal/money"
	"github.com/congo-pay/corebank/internal/notification"
)

// Result tallies a replay.
type Result struct {
	Accepted int
	Rejected int
	Accounts []account.Snapshot
}

// Runner replays scenarios.
type Runner struct {
	logger   *slog.Logger
	notifier notification.Notifier
	metrics  *metrics.Recorder
	workers  int
}

// NewRunner builds a runner. notifier and rec may be nil.
func NewRunner(logger *slog.Logger, notifier notification.Notifier, rec *metrics.Recorder, interestWorkers int) *Runner {
	return &Runner{logger: logger, notifier: notifier, metrics: rec, workers: interestWorkers}
}

// Run replays sc against a fresh in-memory bank and writes one line per step
// followed by the final balances. Rejected operations are reported and the
// replay continues.
func (r *Runner) Run(ctx context.Context, sc Scenario, out io.Writer) (Result, error) {
	if err := sc.Validate(); err != nil {
		return Result{}, err
	}

	clk := clock.NewManual(sc.Start)
	svc := bank.NewService(bank.NewMemoryRepository(),
		bank.WithClock(clk),
		bank.WithLogger(r.logger),
		bank.WithNotifier(r.notifier),
		bank.WithMetrics(r.metrics),
		bank.WithInterestWorkers(r.workers),
	)

	var res Result
	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		detail, err := r.step(ctx, svc, clk, st)
		if err != nil {
			res.Rejected++
			fmt.Fprintf(out, "%3d %-8s %-12s rejected: %v\n", i+1, st.Op, st.Account, err)
			continue
		}
		res.Accepted++
		fmt.Fprintf(out, "%3d %-8s %-12s ok %s\n", i+1, st.Op, st.Account, detail)
	}

	accts, err := svc.List(ctx)
	if err != nil {
		return res, err
	}
	res.Accounts = accts

	fmt.Fprintf(out, "\n%d accepted, %d rejected\n", res.Accepted, res.Rejected)
	for _, a := range accts {
		status := "active"
		if !a.Active {
			status = "closed"
		}
		fmt.Fprintf(out, "%-12s %-8s %-6s %12s\n", a.ID, a.Type, status, money.Format(a.Balance))
	}
	return res, nil
}

func (r *Runner) step(ctx context.Context, svc *bank.Service, clk *clock.Manual, st Step) (string, error) {
	switch st.Op {
	case OpOpen:
		typ, err := account.ParseType(st.Type)
		if err != nil {
			return "", err
		}
		initial, err := amountOrZero(st.Amount)
		if err != nil {
			return "", err
		}
		snap, err := svc.Open(ctx, bank.OpenInput{ID: st.Account, Type: typ, InitialBalance: initial})
		if err != nil {
			return "", err
		}
		return "balance=" + money.Format(snap.Balance), nil

	case OpDeposit, OpWithdraw:
		amount, err := parseAmount(st.Amount)
		if err != nil {
			return "", err
		}
		op := svc.Deposit
		if st.Op == OpWithdraw {
			op = svc.Withdraw
		}
		snap, err := op(ctx, st.Account, amount, st.Description)
		if err != nil {
			return "", err
		}
		return "balance=" + money.Format(snap.Balance), nil

	case OpTransfer:
		amount, err := parseAmount(st.Amount)
		if err != nil {
			return "", err
		}
		res, err := svc.Transfer(ctx, bank.TransferInput{FromID: st.Account, ToID: st.To, Amount: amount, Description: st.Description})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("balance=%s %s=%s", money.Format(res.From.Balance), st.To, money.Format(res.To.Balance)), nil

	case OpInterest:
		if st.Account == "" {
			run, err := svc.ApplyInterestAll(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("credited=%s accounts=%d", money.Format(run.Total), run.Credited), nil
		}
		credited, err := svc.ApplyInterest(ctx, st.Account)
		if err != nil {
			return "", err
		}
		return "credited=" + money.Format(credited), nil

	case OpClose:
		if _, err := svc.Close(ctx, st.Account); err != nil {
			return "", err
		}
		return "closed", nil

	case OpAdvance:
		now := clk.Advance(st.Duration)
		return "now=" + now.Format("2006-01-02T15:04:05Z07:00"), nil
	}
	return "", fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, st.Op)
}

func amountOrZero(s string) (decimal.Decimal, error) {
	if s == "" {
		return money.Zero, nil
	}
	return parseAmount(s)
}

// parseAmount keeps every digit so the account decides whether the amount is
// acceptable.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}
