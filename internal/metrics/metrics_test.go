package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.Accepted("deposit")
	r.Accepted("deposit")
	r.Rejected("withdrawal", "insufficient_funds")
	r.InterestCredited(decimal.RequireFromString("20.00"))
	r.InterestCredited(decimal.RequireFromString("5.50"))
	r.Balance("A", decimal.RequireFromString("1020.00"))
	r.Opened()
	r.Opened()
	r.Closed()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("deposit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rejections.WithLabelValues("withdrawal", "insufficient_funds")))
	assert.Equal(t, 25.5, testutil.ToFloat64(r.interest))
	assert.Equal(t, 1020.0, testutil.ToFloat64(r.balances.WithLabelValues("A")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.open))

	n, err := testutil.GatherAndCount(reg, "corebank_operations_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Accepted("deposit")
		r.Rejected("deposit", "invalid_amount")
		r.InterestCredited(decimal.NewFromInt(1))
		r.Balance("A", decimal.Zero)
		r.Opened()
		r.Closed()
	})
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)
	r.Accepted("transfer")
	r.Rejected("withdraw", "daily_limit")

	var buf bytes.Buffer
	assert.NoError(t, WriteText(&buf, reg))
	assert.Contains(t, buf.String(), "# TYPE corebank_operations_total counter")
	assert.Contains(t, buf.String(), `corebank_operations_total{kind="transfer"} 1`)
	assert.Contains(t, buf.String(), `corebank_rejections_total{kind="withdraw",reason="daily_limit"} 1`)
}
