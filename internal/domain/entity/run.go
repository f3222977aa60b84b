package entity

import "time"

// PassResult summarizes one notification pass for one tenant.
type PassResult struct {
	TenantID string
	Date     string
	Skipped  bool
	Matched  int
	Sent     int
	Failed   int
	// RoleFailures counts grant failures; the wish itself is still recorded.
	RoleFailures int
}

// Completed reports whether every matching subject was handled. Tenants with
// failed deliveries stay pending so the scheduler retries them.
func (r PassResult) Completed() bool {
	return r.Failed == 0
}

// RunOptions drives the manual one-shot trigger.
type RunOptions struct {
	// TenantID limits the run to one tenant; empty means all configured tenants.
	TenantID     string
	Date         time.Time
	IgnoreWished bool
	ResetLedger  bool
}

// TenantOutcome is the result of the one-shot run for one tenant.
type TenantOutcome struct {
	Result  PassResult
	Revoked int
	Err     error
}

// RunSummary is returned to the caller of a one-shot run.
type RunSummary struct {
	RunID    string
	Date     string
	Outcomes []TenantOutcome
}

func (s *RunSummary) Totals() (sent, failed, errored int) {
	for _, o := range s.Outcomes {
		sent += o.Result.Sent
		failed += o.Result.Failed
		if o.Err != nil {
			errored++
		}
	}
	return sent, failed, errored
}

// Succeeded is true when no tenant failed and no delivery failed.
func (s *RunSummary) Succeeded() bool {
	_, failed, errored := s.Totals()
	return failed == 0 && errored == 0
}
