package planlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dimasea19961/powerplant-coding-challenge/core/model"
)

func sampleRecord(ts time.Time, feasible bool) PlanRecord {
	return PlanRecord{
		RequestID: "req-1",
		Timestamp: ts,
		Load:      480,
		Feasible:  feasible,
		Cost:      11524.6,
		Plan: model.ProductionPlan{
			{Name: "windpark1", Power: 90},
			{Name: "gasfiredbig1", Power: 368.4},
		},
	}
}

func TestSQLiteStore_PersistQuery(t *testing.T) {
	store, err := NewSQLiteStore("file:planlog_test.db?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = store.Close() }()

	now := time.Now()
	if err := store.Append(context.Background(), sampleRecord(now, true)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(context.Background(), sampleRecord(now.Add(time.Minute), false)); err != nil {
		t.Fatalf("append: %v", err)
	}

	out, err := store.Query(context.Background(), PlanQuery{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}

	feasible := true
	out, err = store.Query(context.Background(), PlanQuery{Feasible: &feasible})
	if err != nil {
		t.Fatalf("query feasible: %v", err)
	}
	if len(out) != 1 || !out[0].Feasible {
		t.Fatalf("expected 1 feasible record, got %v", out)
	}
	if out[0].Plan[1].Power != 368.4 {
		t.Fatalf("plan not preserved: %v", out[0].Plan)
	}
}

func TestRotatingJSONLStore_AppendQuery(t *testing.T) {
	dir := t.TempDir()
	store, err := NewRotatingJSONLStore(filepath.Join(dir, "plans.log"), 1, 2, 1)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer func() { _ = store.Close() }()

	now := time.Now()
	for i := 0; i < 5; i++ {
		rec := sampleRecord(now.Add(time.Duration(i)*time.Second), i%2 == 0)
		if err := store.Append(context.Background(), rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	out, err := store.Query(context.Background(), PlanQuery{Start: now.Add(-time.Second)})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 records, got %d", len(out))
	}

	infeasible := false
	out, err = store.Query(context.Background(), PlanQuery{Feasible: &infeasible})
	if err != nil {
		t.Fatalf("query infeasible: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 infeasible records, got %d", len(out))
	}
}

func TestNewStore_Backends(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(Config{Backend: "none"})
	if err != nil || store != nil {
		t.Fatalf("none backend: %v %v", store, err)
	}

	store, err = NewStore(Config{Backend: "jsonl", Path: filepath.Join(dir, "p.log")})
	if err != nil || store == nil {
		t.Fatalf("jsonl backend: %v", err)
	}
	_ = store.Close()

	if _, err := NewStore(Config{Backend: "bogus"}); err == nil {
		t.Fatalf("expected unknown backend error")
	}
}

func TestConfigDefaultsAndValidate(t *testing.T) {
	var c Config
	c.SetDefaults()
	if c.Backend != "none" || c.Path == "" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	bad := Config{Backend: "csv"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}
