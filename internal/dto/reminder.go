package dto

import "github.com/homevia/rent_ledger_app/internal/core/domain"

// SweepRequest defines the payload for a manually triggered reminder sweep.
type SweepRequest struct {
	DaysBefore     int  `json:"daysBefore" binding:"omitempty,min=0,max=60"`
	IncludeOverdue bool `json:"includeOverdue"`
}

// SweepResponse summarizes one reminder sweep.
type SweepResponse struct {
	Candidates int                     `json:"candidates"`
	SentCount  int                     `json:"sentCount"`
	Results    []domain.ReminderResult `json:"results"`
}

// ToSweepResponse builds the sweep summary from per-lease results.
func ToSweepResponse(results []domain.ReminderResult) SweepResponse {
	sent := 0
	for _, r := range results {
		if r.Sent {
			sent++
		}
	}
	return SweepResponse{
		Candidates: len(results),
		SentCount:  sent,
		Results:    results,
	}
}
