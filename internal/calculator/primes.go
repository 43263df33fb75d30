package calculator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const chunkSize = 4096

// PrimesInRange returns every prime in [from, to] in ascending order. The
// range is split into chunks scanned by at most workers goroutines.
func PrimesInRange(ctx context.Context, from, to int64, workers int) ([]int64, error) {
	if from > to {
		return nil, fmt.Errorf("%w: empty range [%d, %d]", ErrInvalidArgument, from, to)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidArgument, workers)
	}
	if from < 2 {
		from = 2
	}
	if to < from {
		return []int64{}, nil
	}

	var results []*[]int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := from; ; lo += chunkSize {
		lo := lo
		if gctx.Err() != nil {
			break
		}
		hi := lo + chunkSize - 1
		if hi > to || hi < lo {
			hi = to
		}
		found := new([]int64)
		results = append(results, found)
		g.Go(func() error {
			return scanChunk(gctx, lo, hi, found)
		})
		if hi == to {
			break
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := []int64{}
	for _, r := range results {
		out = append(out, *r...)
	}
	return out, nil
}

func scanChunk(ctx context.Context, lo, hi int64, found *[]int64) error {
	for n := lo; n <= hi; n++ {
		if n&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if IsPrime(n) {
			*found = append(*found, n)
		}
		if n == hi {
			break
		}
	}
	return nil
}
