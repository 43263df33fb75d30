package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/congo-pay/corebank/internal/calculator"
)

func newPrimesCmd(opts *options) *cobra.Command {
	var (
		from, to int64
		workers  int
	)

	cmd := &cobra.Command{
		Use:     "primes",
		Short:   "List the primes in a closed range",
		Example: "  corebank primes --from 1 --to 100 --workers 8",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if workers <= 0 {
				workers = opts.cfg.Primes.Workers
			}
			primes, err := calculator.PrimesInRange(cmd.Context(), from, to, workers)
			if err != nil {
				return err
			}
			opts.logger.Debug("prime scan finished", "from", from, "to", to, "workers", workers, "found", len(primes))

			parts := make([]string, len(primes))
			for i, p := range primes {
				parts[i] = strconv.FormatInt(p, 10)
			}
			out := cmd.OutOrStdout()
			if len(parts) > 0 {
				fmt.Fprintln(out, strings.Join(parts, " "))
			}
			fmt.Fprintf(out, "%d primes in [%d, %d]\n", len(primes), from, to)
			return nil
		},
	}

	cmd.Flags().Int64Var(&from, "from", 1, "lower bound, inclusive")
	cmd.Flags().Int64Var(&to, "to", 100, "upper bound, inclusive")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent scanners (default from config)")
	return cmd
}
