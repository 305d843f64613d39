package store

import (
	"sync"

	"github.com/gradpoint/gms-api/internal/models"
)

// PaymentLedger is an append-only record of fee transactions.
type PaymentLedger struct {
	mu       sync.RWMutex
	payments []models.Payment
}

// NewPaymentLedger constructs an empty ledger.
func NewPaymentLedger() *PaymentLedger {
	return &PaymentLedger{}
}

// Append records a payment.
func (l *PaymentLedger) Append(p models.Payment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.payments = append(l.payments, p)
}

// All returns every payment in recording order.
func (l *PaymentLedger) All() []models.Payment {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Payment, len(l.payments))
	copy(out, l.payments)
	return out
}

// Filter returns payments matching the predicate in recording order.
func (l *PaymentLedger) Filter(pred func(models.Payment) bool) []models.Payment {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []models.Payment
	for _, p := range l.payments {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// TotalAmount sums all recorded amounts.
func (l *PaymentLedger) TotalAmount() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total float64
	for _, p := range l.payments {
		total += p.Amount
	}
	return total
}
