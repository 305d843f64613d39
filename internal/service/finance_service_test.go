package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/store"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
)

func TestRecordPaymentFlipsStatusAndLedger(t *testing.T) {
	students := seededStudents(testStudent(1, nil))
	ledger := store.NewPaymentLedger()
	svc := NewFinanceService(students, ledger, newInlineTasks(), nil, nil)

	task, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		StudentID: "id-001",
		Amount:    350,
		Method:    "MOBILE_MONEY",
		Reference: "MM-2026-0001",
	}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, task.Status)

	updated, _ := students.Get("id-001")
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.True(t, updated.Documents.FeeReceipt)

	entries := ledger.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "MM-2026-0001", entries[0].Reference)
	assert.Equal(t, "admin-1", entries[0].RecordedBy)
}

func TestRecordPaymentValidation(t *testing.T) {
	svc := NewFinanceService(seededStudents(testStudent(1, nil)), store.NewPaymentLedger(), newInlineTasks(), nil, nil)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, RecordPaymentRequest{
		StudentID: "id-001", Amount: 100, Method: "BARTER", Reference: "X",
	}, "admin-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.RecordPayment(ctx, RecordPaymentRequest{
		StudentID: "missing", Amount: 100, Method: "CASH", Reference: "X",
	}, "admin-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnknownStudent.Code, appErrors.FromError(err).Code)
}

func TestWaiveSkipsLedger(t *testing.T) {
	students := seededStudents(testStudent(1, nil))
	ledger := store.NewPaymentLedger()
	svc := NewFinanceService(students, ledger, newInlineTasks(), nil, nil)

	updated, err := svc.Waive(context.Background(), "id-001")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentWaived, updated.PaymentStatus)
	assert.Empty(t, ledger.All())
}

func TestBulkRemindScopedToPendingVisible(t *testing.T) {
	paid := testStudent(2, func(st *models.Student) {
		st.Name = "John Paid"
		st.PaymentStatus = models.PaymentPaid
	})
	students := seededStudents(
		testStudent(1, func(st *models.Student) { st.Name = "John Banda" }),
		paid,
		testStudent(3, func(st *models.Student) { st.Name = "Mary Phiri" }),
	)
	svc := NewFinanceService(students, store.NewPaymentLedger(), newInlineTasks(), nil, nil)

	task, err := svc.BulkRemind(context.Background(), BulkRemindRequest{
		IDs:    []string{"id-001", "id-002", "id-003"},
		Search: "john",
	})
	require.NoError(t, err)

	result, ok := task.Result.(RemindResult)
	require.True(t, ok)
	// id-002 is already paid, id-003 is filtered out of view.
	assert.Equal(t, 1, result.Reminded)
	assert.ElementsMatch(t, []string{"id-002", "id-003"}, result.Skipped)
}

func TestBulkRemindEmptySelection(t *testing.T) {
	svc := NewFinanceService(seededStudents(), store.NewPaymentLedger(), newInlineTasks(), nil, nil)
	_, err := svc.BulkRemind(context.Background(), BulkRemindRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestFinanceSummaryRates(t *testing.T) {
	students := seededStudents(
		testStudent(1, func(st *models.Student) { st.PaymentStatus = models.PaymentPaid }),
		testStudent(2, nil),
		testStudent(3, func(st *models.Student) { st.PaymentStatus = models.PaymentWaived }),
	)
	ledger := store.NewPaymentLedger()
	ledger.Append(models.Payment{Amount: 350})
	svc := NewFinanceService(students, ledger, newInlineTasks(), nil, nil)

	summary := svc.Summary(context.Background())
	assert.Equal(t, 3, summary.TotalStudents)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, 1, summary.PendingCount)
	assert.Equal(t, 1, summary.WaivedCount)
	// One of two billable students paid.
	assert.Equal(t, "50%", summary.CollectionRate)
	assert.Equal(t, 350.0, summary.TotalCollected)
}

func TestFinanceSummaryEmptyStore(t *testing.T) {
	svc := NewFinanceService(seededStudents(), store.NewPaymentLedger(), newInlineTasks(), nil, nil)
	summary := svc.Summary(context.Background())
	assert.Equal(t, "0%", summary.CollectionRate)
}
