package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dimasea19961/powerplant-coding-challenge/core/model"
)

const payload = `{
  "load": 180,
  "fuels": {"gas(euro/MWh)": 25, "kerosine(euro/MWh)": 75, "co2(euro/ton)": 0, "wind(%)": 50},
  "powerplants": [
    {"name": "wind", "type": "windturbine", "efficiency": 1, "pmin": 0, "pmax": 100},
    {"name": "gas", "type": "gasfired", "efficiency": 0.5, "pmin": 50, "pmax": 200}
  ]
}`

func TestSolveCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"solve", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var plan model.ProductionPlan
	if err := json.Unmarshal(out.Bytes(), &plan); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(plan) != 2 || plan[0].Power != 50 || plan[1].Power != 130 {
		t.Fatalf("unexpected plan: %v", plan)
	}
}

func TestSolveCommand_MissingFile(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"solve", "does-not-exist.json"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error")
	}
}
