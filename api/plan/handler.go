package plan

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	coremetrics "github.com/dimasea19961/powerplant-coding-challenge/core/metrics"
	"github.com/dimasea19961/powerplant-coding-challenge/core/model"
	"github.com/dimasea19961/powerplant-coding-challenge/core/planlog"
	"github.com/dimasea19961/powerplant-coding-challenge/core/solver"
	"github.com/dimasea19961/powerplant-coding-challenge/infra/logger"
)

// Publisher pushes computed plans to downstream consumers.
type Publisher interface {
	PublishPlan(requestID string, load float64, plan model.ProductionPlan) error
}

// PlanHandler serves POST /productionplan. Store, sink and publisher are
// optional collaborators.
type PlanHandler struct {
	solver solver.Solver
	store  planlog.PlanStore
	sink   coremetrics.MetricsSink
	pub    Publisher
	log    logger.Logger
}

// NewPlanHandler wires the solver with its collaborators. Nil store,
// sink, publisher or logger disable the respective side effect.
func NewPlanHandler(sv solver.Solver, store planlog.PlanStore, sink coremetrics.MetricsSink, pub Publisher, log logger.Logger) *PlanHandler {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &PlanHandler{solver: sv, store: store, sink: sink, pub: pub, log: log}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *PlanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var p Payload
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&p); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	id := uuid.NewString()
	s, err := p.Scenario()
	if err != nil {
		h.log.Warnf("request %s rejected: %v", id, err)
		h.record(r, id, p.Load, 0, coremetrics.OutcomeInvalid, 0, nil, err.Error(), 0)
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	result, err := h.solver.Solve(s)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, solver.ErrInvalidScenario):
		h.log.Warnf("request %s rejected: %v", id, err)
		h.record(r, id, s.Load, len(s.Units), coremetrics.OutcomeInvalid, 0, nil, err.Error(), elapsed)
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case errors.Is(err, solver.ErrInfeasible):
		h.log.Warnf("request %s infeasible: %v", id, err)
		h.record(r, id, s.Load, len(s.Units), coremetrics.OutcomeInfeasible, 0, nil, err.Error(), elapsed)
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	case err != nil:
		h.log.Errorf("request %s failed: %v", id, err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	cost := result.Cost(s)
	h.log.Infof("request %s solved: load=%g cost=%.2f duration=%s", id, s.Load, cost, elapsed)
	h.log.Debugw("plan computed", map[string]any{
		"request_id": id,
		"load":       s.Load,
		"units":      len(s.Units),
		"cost":       cost,
	})
	h.record(r, id, s.Load, len(s.Units), coremetrics.OutcomeOK, cost, result, "", elapsed)
	if h.pub != nil {
		if err := h.pub.PublishPlan(id, s.Load, result); err != nil {
			h.log.Errorf("request %s publish: %v", id, err)
		}
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *PlanHandler) record(r *http.Request, id string, load float64, units int, outcome string, cost float64, result model.ProductionPlan, errMsg string, d time.Duration) {
	now := time.Now()
	ev := coremetrics.SolveEvent{
		RequestID: id,
		Load:      load,
		Units:     units,
		Outcome:   outcome,
		Cost:      cost,
		Duration:  d,
		Timestamp: now,
	}
	if err := h.sink.RecordSolve(ev); err != nil {
		h.log.Errorf("request %s metrics: %v", id, err)
	}
	if h.store == nil {
		return
	}
	rec := planlog.PlanRecord{
		RequestID: id,
		Timestamp: now,
		Load:      load,
		Feasible:  outcome == coremetrics.OutcomeOK,
		Error:     errMsg,
		Cost:      cost,
		Plan:      result,
	}
	if err := h.store.Append(r.Context(), rec); err != nil {
		h.log.Errorf("request %s store: %v", id, err)
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
