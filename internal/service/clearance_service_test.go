package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpoint/gms-api/internal/models"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
)

func TestClearanceAggregateDerivedFromFlags(t *testing.T) {
	students := seededStudents(testStudent(1, nil))
	svc := NewClearanceService(students, nil)
	ctx := context.Background()

	// Four approvals leave the student in progress.
	for _, dept := range models.Departments[:4] {
		updated, err := svc.Approve(ctx, "id-001", dept)
		require.NoError(t, err)
		assert.Equal(t, models.ClearanceInProgress, updated.ClearanceStatus())
	}

	// The fifth sign-off flips the aggregate to cleared.
	updated, err := svc.Approve(ctx, "id-001", models.DeptAlumni)
	require.NoError(t, err)
	assert.Equal(t, models.ClearanceCleared, updated.ClearanceStatus())

	progress, err := svc.Progress(ctx, "id-001")
	require.NoError(t, err)
	assert.Equal(t, 100, progress)
}

func TestClearanceRejectionIsSticky(t *testing.T) {
	students := seededStudents(testStudent(1, nil))
	svc := NewClearanceService(students, nil)
	ctx := context.Background()

	for _, dept := range models.Departments {
		_, err := svc.Approve(ctx, "id-001", dept)
		require.NoError(t, err)
	}

	updated, err := svc.Reject(ctx, "id-001", models.DeptFinance)
	require.NoError(t, err)
	assert.Equal(t, models.ClearanceRejected, updated.ClearanceStatus())

	// Approvals from other offices do not lift the rejection.
	updated, err = svc.Approve(ctx, "id-001", models.DeptAcademic)
	require.NoError(t, err)
	assert.Equal(t, models.ClearanceRejected, updated.ClearanceStatus())

	// Only the rejecting office approving again clears it.
	updated, err = svc.Approve(ctx, "id-001", models.DeptFinance)
	require.NoError(t, err)
	assert.Equal(t, models.ClearanceCleared, updated.ClearanceStatus())
}

func TestClearanceApproveIdempotent(t *testing.T) {
	students := seededStudents(testStudent(1, nil))
	svc := NewClearanceService(students, nil)
	ctx := context.Background()

	first, err := svc.Approve(ctx, "id-001", models.DeptRegistrar)
	require.NoError(t, err)
	second, err := svc.Approve(ctx, "id-001", models.DeptRegistrar)
	require.NoError(t, err)

	assert.Equal(t, first.Clearance, second.Clearance)
	assert.Equal(t, 1, second.Clearance.ApprovedCount())
}

func TestClearanceUnknownTargets(t *testing.T) {
	students := seededStudents(testStudent(1, nil))
	svc := NewClearanceService(students, nil)
	ctx := context.Background()

	_, err := svc.Approve(ctx, "id-001", models.Department("library"))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnknownDepartment.Code, appErr.Code)

	_, err = svc.Approve(ctx, "missing", models.DeptAcademic)
	require.Error(t, err)
	appErr = appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnknownStudent.Code, appErr.Code)
}

func TestClearanceOverviewSearch(t *testing.T) {
	students := seededStudents(
		testStudent(1, func(st *models.Student) { st.Name = "John Banda" }),
		testStudent(2, func(st *models.Student) { st.Name = "Mary Phiri" }),
		testStudent(3, func(st *models.Student) { st.Email = "johnson@university.ac" }),
	)
	svc := NewClearanceService(students, nil)

	rows, pagination, err := svc.Overview(context.Background(), models.StudentFilter{Search: "JOHN"})
	require.NoError(t, err)
	assert.Equal(t, 2, pagination.TotalCount)
	require.Len(t, rows, 2)
	assert.Equal(t, "id-001", rows[0].Student.ID)
	assert.Equal(t, "id-003", rows[1].Student.ID)
}

func TestBulkApproveScopedToVisibleSelection(t *testing.T) {
	students := seededStudents(
		testStudent(1, func(st *models.Student) { st.Name = "John Banda" }),
		testStudent(2, func(st *models.Student) { st.Name = "Mary Phiri" }),
		testStudent(3, func(st *models.Student) { st.Name = "John Tembo" }),
	)
	svc := NewClearanceService(students, nil)

	// id-002 is selected but filtered out of view; id-999 does not exist.
	result, err := svc.BulkApprove(context.Background(),
		[]string{"id-001", "id-002", "id-003", "id-999"},
		models.DeptAcademic,
		models.StudentFilter{Search: "john"},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Approved)
	assert.ElementsMatch(t, []string{"id-002", "id-999"}, result.Skipped)

	untouched, _ := students.Get("id-002")
	assert.Equal(t, models.DeptPending, untouched.Clearance.Get(models.DeptAcademic))
}

func TestBulkApproveUnknownDepartment(t *testing.T) {
	svc := NewClearanceService(seededStudents(testStudent(1, nil)), nil)
	_, err := svc.BulkApprove(context.Background(), []string{"id-001"}, "hostel", models.StudentFilter{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnknownDepartment.Code, appErrors.FromError(err).Code)
}
