package dto

import (
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatsParams defines the query parameters for the statistics endpoint.
type StatsParams struct {
	HostID   string `form:"hostID"`
	TenantID string `form:"tenantID"`
	Period   string `form:"period" binding:"omitempty,oneof=weekly monthly yearly"`
}

// StatsResponse defines the data returned for ledger statistics.
type StatsResponse struct {
	TotalLeases          int             `json:"totalLeases"`
	ActiveLeases         int             `json:"activeLeases"`
	OverdueLeases        int             `json:"overdueLeases"`
	TotalPeriodicIncome  decimal.Decimal `json:"totalPeriodicIncome"`
	AvgLeaseAmount       decimal.Decimal `json:"avgLeaseAmount"`
	TotalPaymentsCount   int             `json:"totalPaymentsCount"`
	TotalAmountCollected decimal.Decimal `json:"totalAmountCollected"`
	AvgPaymentAmount     decimal.Decimal `json:"avgPaymentAmount"`
}

// ToStatsResponse converts domain LedgerStats to a StatsResponse DTO.
func ToStatsResponse(s *domain.LedgerStats) StatsResponse {
	return StatsResponse{
		TotalLeases:          s.TotalLeases,
		ActiveLeases:         s.ActiveLeases,
		OverdueLeases:        s.OverdueLeases,
		TotalPeriodicIncome:  s.TotalPeriodicIncome,
		AvgLeaseAmount:       s.AvgLeaseAmount,
		TotalPaymentsCount:   s.TotalPaymentsCount,
		TotalAmountCollected: s.TotalAmountCollected,
		AvgPaymentAmount:     s.AvgPaymentAmount,
	}
}
