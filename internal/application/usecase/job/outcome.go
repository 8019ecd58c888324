// Package job contains the recurring batch jobs driven by the scheduler.
package job

import "github.com/google/uuid"

// ItemOutcome records the result of processing a single item in a batch run.
// Accumulating outcomes, instead of aborting on the first error, is what
// gives every job its per-item failure isolation.
type ItemOutcome struct {
	ID  uuid.UUID
	Err error
}

// RunResult is the aggregate outcome of one batch job run.
type RunResult struct {
	Job       string
	Processed int
	Succeeded int
	Skipped   int
	Outcomes  []ItemOutcome
}

// newRunResult creates an empty result for the named job.
func newRunResult(job string) *RunResult {
	return &RunResult{Job: job}
}

// record appends one item outcome and updates the counters.
func (r *RunResult) record(id uuid.UUID, err error) {
	r.Processed++
	if err == nil {
		r.Succeeded++
	}
	r.Outcomes = append(r.Outcomes, ItemOutcome{ID: id, Err: err})
}

// skip counts an item that was filtered out before any work was attempted.
func (r *RunResult) skip() {
	r.Skipped++
}

// Failed returns the number of items whose processing failed.
func (r *RunResult) Failed() int {
	return r.Processed - r.Succeeded
}
