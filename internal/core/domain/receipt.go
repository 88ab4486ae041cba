package domain

import "time"

// Receipt records a successfully provisioned step.
// Receipts are persisted by the receipt store and consumed by the status
// command; they are informational and never gate re-provisioning.
type Receipt struct {
	Tool            string    `json:"tool"`
	Version         string    `json:"version"`
	PlanFingerprint string    `json:"plan_fingerprint,omitzero"`
	Timestamp       time.Time `json:"timestamp,omitzero"`
}

// ToolStatus describes the observed state of one planned tool, as reported by
// the status command.
type ToolStatus struct {
	Tool           string
	PlannedVersion string
	ActiveVersion  string
	Installed      bool
	Receipt        *Receipt
}
