// Package metrics exposes ledger activity as prometheus collectors.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"github.com/shopspring/decimal"
)

// Recorder counts ledger operations. A nil *Recorder records nothing.
type Recorder struct {
	operations *prometheus.CounterVec
	rejections *prometheus.CounterVec
	interest   prometheus.Counter
	balances   *prometheus.GaugeVec
	open       prometheus.Gauge
}

// New registers the ledger collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "corebank_operations_total",
			Help: "Accepted ledger operations by kind",
		}, []string{"kind"}),
		rejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "corebank_rejections_total",
			Help: "Rejected ledger operations by kind and reason",
		}, []string{"kind", "reason"}),
		interest: f.NewCounter(prometheus.CounterOpts{
			Name: "corebank_interest_credited_total",
			Help: "Total interest credited across all accounts",
		}),
		balances: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "corebank_account_balance",
			Help: "Current balance per account",
		}, []string{"account_id"}),
		open: f.NewGauge(prometheus.GaugeOpts{
			Name: "corebank_open_accounts",
			Help: "Accounts currently active",
		}),
	}
}

// Accepted counts a successful operation.
func (r *Recorder) Accepted(kind string) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(kind).Inc()
}

// Rejected counts a refused operation.
func (r *Recorder) Rejected(kind, reason string) {
	if r == nil {
		return
	}
	r.rejections.WithLabelValues(kind, reason).Inc()
}

// InterestCredited adds amount to the interest counter.
func (r *Recorder) InterestCredited(amount decimal.Decimal) {
	if r == nil {
		return
	}
	r.interest.Add(amount.InexactFloat64())
}

// Balance publishes the latest balance of an account.
func (r *Recorder) Balance(accountID string, balance decimal.Decimal) {
	if r == nil {
		return
	}
	r.balances.WithLabelValues(accountID).Set(balance.InexactFloat64())
}

// Opened increments the open account gauge.
func (r *Recorder) Opened() {
	if r == nil {
		return
	}
	r.open.Inc()
}

// Closed decrements the open account gauge.
func (r *Recorder) Closed() {
	if r == nil {
		return
	}
	r.open.Dec()
}

// WriteText gathers g and writes it in the prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
