package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/acadkit/cohort/app"
	"github.com/acadkit/cohort/config"
	"github.com/acadkit/cohort/infra/logger"
	"github.com/acadkit/cohort/infra/metrics"
)

var (
	partitionInput  string
	partitionGroups int
	partitionOutput string
)

var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Run both strategies over a roster and export the results",
	RunE:  runPartition,
}

func init() {
	partitionCmd.Flags().StringVarP(&partitionInput, "input", "i", "", "roster file (csv or xlsx)")
	partitionCmd.Flags().IntVarP(&partitionGroups, "groups", "n", 0, "number of groups (overrides config)")
	partitionCmd.Flags().StringVarP(&partitionOutput, "output", "o", "", "output directory (overrides config)")
	rootCmd.AddCommand(partitionCmd)
}

func runPartition(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if partitionGroups > 0 {
		cfg.Engine.Groups = partitionGroups
	}
	if partitionOutput != "" {
		cfg.Export.Dir = partitionOutput
	}
	input := cfg.Input
	if partitionInput != "" {
		input = partitionInput
	}
	if input == "" {
		return fmt.Errorf("no roster file: set --input or the input config key")
	}

	if cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, cfg.Metrics.PrometheusAddr); err != nil {
				logger.New("metrics").Errorf("prom server: %v", err)
			}
		}()
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	rep, err := svc.Run(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "partitioned %d records into %d groups (%s)\n",
		len(rep.Roster), cfg.Engine.Groups, cfg.Export.Dir)
	return nil
}
