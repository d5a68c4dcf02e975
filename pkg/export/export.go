package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/dimasea19961/powerplant-coding-challenge/core/planlog"
)

// WriteJSON writes the plan history to w in JSON format.
func WriteJSON(w io.Writer, records []planlog.PlanRecord) error {
	enc := json.NewEncoder(w)
	return enc.Encode(records)
}

// WriteCSV writes the plan history to w in CSV format, one row per
// unit assignment. Infeasible records produce a single row with an
// empty unit column.
func WriteCSV(w io.Writer, records []planlog.PlanRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"request_id", "timestamp", "load_mw", "feasible", "cost_euro", "unit", "power_mw"}); err != nil {
		return err
	}
	for _, r := range records {
		base := []string{
			r.RequestID,
			r.Timestamp.Format(time.RFC3339),
			strconv.FormatFloat(r.Load, 'f', -1, 64),
			strconv.FormatBool(r.Feasible),
			strconv.FormatFloat(r.Cost, 'f', -1, 64),
		}
		if len(r.Plan) == 0 {
			if err := cw.Write(append(base, "", "")); err != nil {
				return err
			}
			continue
		}
		for _, a := range r.Plan {
			rec := append(append([]string(nil), base...),
				a.Name,
				strconv.FormatFloat(a.Power, 'f', -1, 64),
			)
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
