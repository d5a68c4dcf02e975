package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dimasea19961/powerplant-coding-challenge/core/planlog"
	"github.com/dimasea19961/powerplant-coding-challenge/pkg/export"
)

var (
	exportFormat   string
	exportStart    string
	exportEnd      string
	exportFeasible string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the recorded plan history",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or json")
	exportCmd.Flags().StringVar(&exportStart, "start", "", "only records at or after this RFC3339 timestamp")
	exportCmd.Flags().StringVar(&exportEnd, "end", "", "only records at or before this RFC3339 timestamp")
	exportCmd.Flags().StringVar(&exportFeasible, "feasible", "", "filter on feasibility: true or false")
	rootCmd.AddCommand(exportCmd)
}

func exportQuery() (planlog.PlanQuery, error) {
	var q planlog.PlanQuery
	if exportStart != "" {
		t, err := time.Parse(time.RFC3339, exportStart)
		if err != nil {
			return q, fmt.Errorf("parse start: %w", err)
		}
		q.Start = t
	}
	if exportEnd != "" {
		t, err := time.Parse(time.RFC3339, exportEnd)
		if err != nil {
			return q, fmt.Errorf("parse end: %w", err)
		}
		q.End = t
	}
	switch exportFeasible {
	case "":
	case "true":
		v := true
		q.Feasible = &v
	case "false":
		v := false
		q.Feasible = &v
	default:
		return q, fmt.Errorf("invalid feasible filter %q", exportFeasible)
	}
	return q, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Store.Backend == "none" {
		return fmt.Errorf("plan history is disabled, set store.backend to sqlite or jsonl")
	}
	store, err := planlog.NewStore(cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = store.Close() }()

	q, err := exportQuery()
	if err != nil {
		return err
	}
	records, err := store.Query(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("query store: %w", err)
	}

	switch exportFormat {
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), records)
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), records)
	default:
		return fmt.Errorf("unknown format %q", exportFormat)
	}
}
