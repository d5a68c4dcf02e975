package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dimasea19961/powerplant-coding-challenge/api/plan"
	"github.com/dimasea19961/powerplant-coding-challenge/core/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve <payload.json>",
	Short: "Compute a production plan for a payload file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	var p plan.Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parse payload: %w", err)
	}
	s, err := p.Scenario()
	if err != nil {
		return err
	}

	result, err := solver.New(cfg.Solver).Solve(s)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
