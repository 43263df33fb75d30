// Package cli wires the corebank commands.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/congo-pay/corebank/internal/config"
	"github.com/congo-pay/corebank/internal/logging"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// options is shared by every subcommand. It is populated before any RunE.
type options struct {
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
}

// NewRoot creates and configures the root command.
func NewRoot(info BuildInfo) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "corebank",
		Short:         "Account ledger and financial calculator",
		Long:          "corebank replays account scenarios and computes interest, loan payments and primes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger = logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format).
				With("app", cfg.AppName, "env", cfg.AppEnv)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (yaml, toml or json)")

	root.AddCommand(
		newCompoundCmd(opts),
		newLoanCmd(opts),
		newPrimeCmd(),
		newPrimesCmd(opts),
		newSimulateCmd(opts),
		newVersionCmd(info),
	)
	return root
}
