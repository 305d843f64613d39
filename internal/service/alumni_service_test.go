package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/store"
)

func TestRolloverCopiesEligibleOnce(t *testing.T) {
	students := seededStudents(clearedStudent(1), clearedStudent(2), testStudent(3, nil))
	graduation := NewGraduationService(students, testClassification(), nil)
	alumni := store.NewAlumniStore()
	svc := NewAlumniService(alumni, graduation, newInlineTasks(), nil)
	ctx := context.Background()

	task, err := svc.Rollover(ctx)
	require.NoError(t, err)
	result, ok := task.Result.(RolloverResult)
	require.True(t, ok)
	assert.Equal(t, 2, result.Rolled)
	assert.Zero(t, result.Skipped)

	// A repeated rollover skips everyone already on the register.
	task, err = svc.Rollover(ctx)
	require.NoError(t, err)
	result = task.Result.(RolloverResult)
	assert.Zero(t, result.Rolled)
	assert.Equal(t, 2, result.Skipped)

	// A student turning eligible later rolls on the next run.
	students.Update("id-003", func(st *models.Student) {
		for _, dept := range models.Departments {
			st.Clearance.Set(dept, models.DeptApproved)
		}
		st.PaymentStatus = models.PaymentPaid
	})
	task, err = svc.Rollover(ctx)
	require.NoError(t, err)
	result = task.Result.(RolloverResult)
	assert.Equal(t, 1, result.Rolled)
	assert.Equal(t, 2, result.Skipped)
}

func TestAlumniListSearch(t *testing.T) {
	alumni := store.NewAlumniStore()
	alumni.Add(models.AlumniRecord{ID: "a1", StudentID: "id-001", Name: "John Banda", Email: "jb@university.ac", GraduationYear: 2025})
	alumni.Add(models.AlumniRecord{ID: "a2", StudentID: "id-002", Name: "Mary Phiri", Email: "mp@university.ac", GraduationYear: 2026})

	svc := NewAlumniService(alumni, nil, newInlineTasks(), nil)

	rows, _, err := svc.List(context.Background(), models.AlumniFilter{Search: "john"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a1", rows[0].ID)

	rows, _, err = svc.List(context.Background(), models.AlumniFilter{GraduationYear: 2026})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a2", rows[0].ID)
}
