package usecase

import (
	"context"
	"time"

	"github.com/Zalioth/SudokuHex/internal/ports"
)

// BatchResult is the outcome for one template of a batch run.
type BatchResult struct {
	Template string
	Solution string
	Solved   bool
	Stats    ports.Stats
	Err      error
}

// BatchReport aggregates a whole batch run.
type BatchReport struct {
	Results       []BatchResult
	AllSolved     bool
	TotalDuration time.Duration
	Backtracks    int
	HeuristicHits int
}

// Solved counts the successfully solved templates.
func (r *BatchReport) Solved() int {
	n := 0
	for _, res := range r.Results {
		if res.Solved {
			n++
		}
	}
	return n
}

// AvgDuration is the mean solve time over all templates.
func (r *BatchReport) AvgDuration() time.Duration {
	if len(r.Results) == 0 {
		return 0
	}
	return r.TotalDuration / time.Duration(len(r.Results))
}

// AvgBacktracks is the mean backtrack count over all templates.
func (r *BatchReport) AvgBacktracks() int {
	if len(r.Results) == 0 {
		return 0
	}
	return r.Backtracks / len(r.Results)
}

// AvgHeuristicHits is the mean pigeonhole-pruning count over all templates.
func (r *BatchReport) AvgHeuristicHits() int {
	if len(r.Results) == 0 {
		return 0
	}
	return r.HeuristicHits / len(r.Results)
}

// RunBatch solves one template per entry and aggregates the statistics.
// A template that fails (malformed, contradictory or unsolvable) is
// recorded in its result and does not stop the batch.
func (u *Service) RunBatch(ctx context.Context, templates []string) (*BatchReport, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	report := &BatchReport{AllSolved: true}
	for _, tpl := range templates {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		solution, st, err := u.SolveTemplate(ctx, tpl)
		res := BatchResult{Template: tpl, Stats: st}
		if err != nil {
			res.Err = err
			report.AllSolved = false
		} else {
			res.Solution = solution
			res.Solved = true
		}
		report.Results = append(report.Results, res)
		report.TotalDuration += st.Duration
		report.Backtracks += st.Backtracks
		report.HeuristicHits += st.HeuristicHits
	}
	return report, nil
}
