package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acadkit/cohort/config"
	"github.com/acadkit/cohort/core/alloc"
	"github.com/acadkit/cohort/core/model"
	"github.com/acadkit/cohort/core/stats"
	"github.com/acadkit/cohort/infra/ingest"
	"github.com/acadkit/cohort/pkg/export"
)

var (
	statsInput    string
	statsGroups   int
	statsStrategy string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the per-group category table for a roster",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "", "roster file (csv or xlsx)")
	statsCmd.Flags().IntVarP(&statsGroups, "groups", "n", 0, "number of groups (overrides config)")
	statsCmd.Flags().StringVarP(&statsStrategy, "strategy", "s", "balanced", "allocation strategy: balanced or clustered")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if statsGroups > 0 {
		cfg.Engine.Groups = statsGroups
	}
	input := cfg.Input
	if statsInput != "" {
		input = statsInput
	}
	if input == "" {
		return fmt.Errorf("no roster file: set --input or the input config key")
	}

	roster, err := readRoster(input)
	if err != nil {
		return err
	}

	var a alloc.Allocator
	switch statsStrategy {
	case "balanced":
		a = alloc.RoundRobin{Priority: cfg.Engine.Priority}
	case "clustered":
		a = alloc.BlockCluster{Priority: cfg.Engine.Priority}
	default:
		return fmt.Errorf("unknown strategy %q", statsStrategy)
	}

	p, err := a.Allocate(roster, cfg.Engine.Groups)
	if err != nil {
		return err
	}
	table := stats.Summarize(p)
	if err := export.WriteStatsCSV(cmd.OutOrStdout(), table); err != nil {
		return err
	}
	bal := table.Balance()
	fmt.Fprintf(cmd.ErrOrStderr(), "groups=%d mean=%.1f stddev=%.2f min=%d max=%d\n",
		bal.Groups, bal.Mean, bal.StdDev, bal.Min, bal.Max)
	return nil
}

func readRoster(input string) (model.Roster, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(input)) {
	case ".csv":
		return ingest.ReadCSV(f)
	case ".xlsx":
		return ingest.ReadXLSX(f)
	default:
		return nil, fmt.Errorf("unsupported roster format: %s", filepath.Ext(input))
	}
}
