package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/congo-pay/corebank/internal/metrics"
	"github.com/congo-pay/corebank/internal/notification"
	"github.com/congo-pay/corebank/internal/simulation"
)

func newSimulateCmd(opts *options) *cobra.Command {
	var (
		scenarioPath string
		notify       bool
		showMetrics  bool
	)

	cmd := &cobra.Command{
		Use:     "simulate",
		Short:   "Replay an account scenario file",
		Example: "  corebank simulate --scenario month.yaml --metrics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := simulation.Load(scenarioPath)
			if err != nil {
				return err
			}
			sc.Start = sc.Start.In(opts.cfg.Location())

			var (
				notifier notification.Notifier
				sent     *notification.Recorder
			)
			if notify {
				sent = &notification.Recorder{}
				notifier = notification.Fanout{notification.NewLoggerNotifier(opts.logger), sent}
			}

			reg := prometheus.NewRegistry()
			runner := simulation.NewRunner(opts.logger, notifier, metrics.New(reg), opts.cfg.Bank.InterestWorkers)
			res, err := runner.Run(cmd.Context(), sc, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			opts.logger.Info("scenario replayed", "path", scenarioPath, "accepted", res.Accepted, "rejected", res.Rejected)

			out := cmd.OutOrStdout()
			if sent != nil {
				fmt.Fprintf(out, "%d notifications sent\n", len(sent.Messages()))
			}
			if showMetrics {
				fmt.Fprintln(out)
				return metrics.WriteText(out, reg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "scenario file")
	cmd.Flags().BoolVar(&notify, "notify", false, "log a notification for every accepted operation")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print the replay's metrics in prometheus text format")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}
