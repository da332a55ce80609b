// Package production exposes the read-only production plan.
package production

// RunStatus enumerates production run states.
type RunStatus string

const (
	RunStatusOnTrack RunStatus = "on-track"
	RunStatusDelayed RunStatus = "delayed"
)

// Run is one model's production batch for the current plan period.
type Run struct {
	Model      string    `json:"model"`
	Planned    int       `json:"planned"`
	Produced   int       `json:"produced"`
	TargetDate string    `json:"targetDate"`
	Status     RunStatus `json:"status"`
}
