package planlog

import (
	"context"
	"fmt"
	"time"

	"github.com/dimasea19961/powerplant-coding-challenge/core/model"
)

// PlanRecord captures one solve request and its outcome.
type PlanRecord struct {
	RequestID string               `json:"request_id"`
	Timestamp time.Time            `json:"timestamp"`
	Load      float64              `json:"load"`
	Feasible  bool                 `json:"feasible"`
	Error     string               `json:"error,omitempty"`
	Cost      float64              `json:"cost"`
	Plan      model.ProductionPlan `json:"plan,omitempty"`
}

// PlanQuery defines filters for retrieving records.
type PlanQuery struct {
	Start    time.Time
	End      time.Time
	Feasible *bool
}

// matches reports whether the record passes the query filters.
func (q PlanQuery) matches(r PlanRecord) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	if q.Feasible != nil && r.Feasible != *q.Feasible {
		return false
	}
	return true
}

// PlanStore persists PlanRecords and supports querying.
type PlanStore interface {
	Append(ctx context.Context, rec PlanRecord) error
	Query(ctx context.Context, q PlanQuery) ([]PlanRecord, error)
	Close() error
}

// Config selects the plan history backend.
type Config struct {
	// Backend is "sqlite", "jsonl" or "none".
	Backend string `json:"backend"`
	// Path is the file location of the store.
	Path string `json:"path"`
	// MaxSizeMB triggers rotation of the JSONL backend when the file
	// exceeds this size in megabytes.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
	// MaxAgeDays removes rotated files older than this number of days.
	MaxAgeDays int `json:"max_age_days"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "none"
	}
	if c.Path == "" {
		c.Path = "plans.log"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	switch c.Backend {
	case "none", "jsonl", "sqlite":
	default:
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	if c.Backend != "none" && c.Path == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

// NewStore builds the configured store. The "none" backend returns nil.
func NewStore(c Config) (PlanStore, error) {
	switch c.Backend {
	case "none":
		return nil, nil
	case "sqlite":
		return NewSQLiteStore(c.Path)
	case "jsonl":
		return NewRotatingJSONLStore(c.Path, c.MaxSizeMB, c.MaxBackups, c.MaxAgeDays)
	default:
		return nil, fmt.Errorf("unknown backend %s", c.Backend)
	}
}
