package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/congo-pay/corebank/internal/calculator"
	"github.com/congo-pay/corebank/internal/money"
)

func newCompoundCmd(opts *options) *cobra.Command {
	var (
		principal, rate string
		years, freq     int
	)

	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Project compound interest",
		Example: "  corebank compound --principal 1000 --rate 0.05 --years 10\n" +
			"  corebank compound --principal 1000 --rate 0.05 --years 1 --frequency 365",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, r, err := parsePair(principal, rate)
			if err != nil {
				return err
			}
			if freq == 0 {
				freq = opts.cfg.Calculator.CompoundFrequency
			}
			result, err := calculator.CompoundInterest(p, r, years, freq)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), money.Format(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "starting amount")
	cmd.Flags().StringVar(&rate, "rate", "", "annual rate as a fraction, e.g. 0.05")
	cmd.Flags().IntVar(&years, "years", 1, "number of years")
	cmd.Flags().IntVar(&freq, "frequency", 0, "compounding periods per year (default from config)")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func newLoanCmd(_ *options) *cobra.Command {
	var (
		principal, rate string
		months          int
	)

	cmd := &cobra.Command{
		Use:     "loan",
		Short:   "Compute a fixed monthly loan payment",
		Example: "  corebank loan --principal 200000 --rate 0.004167 --months 360",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, r, err := parsePair(principal, rate)
			if err != nil {
				return err
			}
			payment, err := calculator.LoanPayment(p, r, months)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), money.Format(payment))
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "amount borrowed")
	cmd.Flags().StringVar(&rate, "rate", "0", "monthly rate as a fraction")
	cmd.Flags().IntVar(&months, "months", 0, "number of monthly payments")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("months")
	return cmd
}

func newPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prime <n>",
		Short: "Report whether n is prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", calculator.ErrInvalidArgument, args[0])
			}
			verdict := "is not prime"
			if calculator.IsPrime(n) {
				verdict = "is prime"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", n, verdict)
			return nil
		},
	}
}

func parsePair(principal, rate string) (decimal.Decimal, decimal.Decimal, error) {
	p, err := money.Parse(principal)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("%w: principal: %w", calculator.ErrInvalidArgument, err)
	}
	r, err := money.ParseRate(rate)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("%w: rate: %w", calculator.ErrInvalidArgument, err)
	}
	return p, r, nil
}
