package domain

import "github.com/shopspring/decimal"

// LedgerStats are roll-ups over leases and ledger transactions, scoped by
// host and/or tenant. Figures are read-committed at call time; nothing is
// cached or maintained incrementally.
type LedgerStats struct {
	TotalLeases   int `json:"totalLeases"`
	ActiveLeases  int `json:"activeLeases"`
	OverdueLeases int `json:"overdueLeases"`
	// TotalPeriodicIncome sums amounts of active leases whose frequency
	// equals the requested period; frequencies are not unit-converted.
	TotalPeriodicIncome  decimal.Decimal `json:"totalPeriodicIncome"`
	AvgLeaseAmount       decimal.Decimal `json:"avgLeaseAmount"`
	TotalPaymentsCount   int             `json:"totalPaymentsCount"`
	TotalAmountCollected decimal.Decimal `json:"totalAmountCollected"`
	AvgPaymentAmount     decimal.Decimal `json:"avgPaymentAmount"`
}

// StatsFilter scopes statistics. Zero values mean platform-wide.
type StatsFilter struct {
	HostID   string
	TenantID string
	// Period selects which lease frequency counts toward periodic income.
	Period PaymentFrequency
}
