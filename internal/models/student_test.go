package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearanceStatusDerivation(t *testing.T) {
	c := NewDepartmentalClearance()
	assert.Equal(t, ClearanceInProgress, c.Status())

	for _, dept := range Departments[:4] {
		c.Set(dept, DeptApproved)
	}
	assert.Equal(t, ClearanceInProgress, c.Status())
	assert.Equal(t, 80, c.Progress())

	c.Set(DeptAlumni, DeptApproved)
	assert.Equal(t, ClearanceCleared, c.Status())

	// One rejection dominates regardless of the other approvals.
	c.Set(DeptFinance, DeptRejected)
	assert.Equal(t, ClearanceRejected, c.Status())

	c.Set(DeptFinance, DeptApproved)
	assert.Equal(t, ClearanceCleared, c.Status())
}

func TestEligibleNeedsClearedAndPaid(t *testing.T) {
	st := Student{Clearance: NewDepartmentalClearance(), PaymentStatus: PaymentPaid}
	assert.False(t, st.Eligible())

	for _, dept := range Departments {
		st.Clearance.Set(dept, DeptApproved)
	}
	assert.True(t, st.Eligible())

	st.PaymentStatus = PaymentPending
	assert.False(t, st.Eligible())

	st.PaymentStatus = PaymentWaived
	assert.False(t, st.Eligible())
}
