// Command silagectl prints trench control summaries and harvest-vs-lab
// comparisons from a running records server.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"silage/config"
	"silage/pkg/client"
	"silage/pkg/logger"
	"silage/pkg/state"
)

type options struct {
	api      string
	season   int
	farmID   uint
	trenchID uint
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "silagectl",
		Short:         "Inspect silage trench records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.api, "api", "", "Records server base URL (default: $API_BASE_URL or http://localhost:8080)")
	root.PersistentFlags().IntVar(&opts.season, "season", time.Now().Year(), "Season (year)")
	root.PersistentFlags().UintVar(&opts.farmID, "farm", 0, "Farm id (default: first farm)")
	root.PersistentFlags().UintVar(&opts.trenchID, "trench", 0, "Trench id (default: first trench of the farm)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log requests to stderr")

	root.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Per-event averages with out-of-norm marks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			return renderSummary(cmd.OutOrStdout(), s)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "harvests",
		Short: "Weighted harvest composition against the lab reference",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			return renderHarvests(cmd.OutOrStdout(), s)
		},
	})
	return root
}

func (o *options) load(ctx context.Context) (*state.State, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	level := "error"
	if o.verbose {
		level = "debug"
	}
	zl, err := logger.New(level, "console", "silagectl")
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	api := o.api
	if api == "" {
		api = config.APIBaseURL()
	}
	src := state.FromClient(client.New(api, client.WithLogger(zl)))
	s, err := state.Load(ctx, src, o.season)
	if err != nil {
		return nil, err
	}
	if o.farmID != 0 {
		s.SelectFarm(o.farmID)
	}
	if o.trenchID != 0 {
		s.SelectTrench(o.trenchID)
	}
	zl.Debug("state loaded",
		zap.Int("season", o.season),
		zap.Int("trench_control", len(s.TrenchControl)),
		zap.Int("visible", len(s.VisibleTrenchControl())))
	return s, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
