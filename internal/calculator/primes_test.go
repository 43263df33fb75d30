package calculator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimesInRange(t *testing.T) {
	got, err := PrimesInRange(context.Background(), -10, 30, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, got)
}

func TestPrimesInRangeSpansChunks(t *testing.T) {
	got, err := PrimesInRange(context.Background(), 1, 3*chunkSize+17, 4)
	require.NoError(t, err)

	var want []int64
	for n := int64(1); n <= 3*chunkSize+17; n++ {
		if IsPrime(n) {
			want = append(want, n)
		}
	}
	assert.Equal(t, want, got)
}

func TestPrimesInRangeNoPrimes(t *testing.T) {
	got, err := PrimesInRange(context.Background(), 24, 28, 1)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = PrimesInRange(context.Background(), -5, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPrimesInRangeInvalid(t *testing.T) {
	_, err := PrimesInRange(context.Background(), 10, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = PrimesInRange(context.Background(), 1, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPrimesInRangeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PrimesInRange(ctx, 1, 10*chunkSize, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrimesInRangeHugeRangeStopsOnDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := PrimesInRange(ctx, 1, 9_000_000_000_000_000_000, 2)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
