package models

import "time"

// PaymentMethod enumerates accepted graduation fee channels.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodMobileMoney  PaymentMethod = "MOBILE_MONEY"
	MethodCard         PaymentMethod = "CARD"
)

// Payment is one recorded graduation fee transaction.
type Payment struct {
	ID         string        `json:"id"`
	StudentID  string        `json:"student_id"`
	Amount     float64       `json:"amount"`
	Method     PaymentMethod `json:"method"`
	Reference  string        `json:"reference"`
	RecordedBy string        `json:"recorded_by,omitempty"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// PaymentFilter narrows payment listings. Search matches student ID and
// reference.
type PaymentFilter struct {
	Search   string
	Method   PaymentMethod
	Page     int
	PageSize int
}

// FinanceSummary aggregates fee collection for the finance screen.
type FinanceSummary struct {
	TotalStudents  int     `json:"total_students"`
	PaidCount      int     `json:"paid_count"`
	PendingCount   int     `json:"pending_count"`
	WaivedCount    int     `json:"waived_count"`
	CollectionRate string  `json:"collection_rate"`
	TotalCollected float64 `json:"total_collected"`
}
