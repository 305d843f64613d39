package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/store"
)

func TestDashboardSummaryAggregates(t *testing.T) {
	rejected := testStudent(3, func(st *models.Student) {
		st.Clearance.Set(models.DeptFinance, models.DeptRejected)
		st.Faculty = "Faculty of Business"
	})
	students := seededStudents(clearedStudent(1), testStudent(2, nil), rejected)

	documents := store.NewDocumentStore()
	documents.Add(models.DocumentRequest{ID: "d1", StudentID: "id-001", Kind: models.DocTranscript, Status: models.DocRequested})

	svc := NewDashboardService(students, documents, nil, nil, 0, nil)
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalStudents)
	assert.Equal(t, 1, summary.ClearanceCounts[string(models.ClearanceCleared)])
	assert.Equal(t, 1, summary.ClearanceCounts[string(models.ClearanceInProgress)])
	assert.Equal(t, 1, summary.ClearanceCounts[string(models.ClearanceRejected)])
	assert.Equal(t, 1, summary.EligibleCount)
	assert.Equal(t, "33%", summary.EligibleRate)
	assert.Equal(t, 1, summary.PendingDocuments)

	require.Len(t, summary.ByFaculty, 2)
	assert.Equal(t, "Faculty of Business", summary.ByFaculty[0].Faculty)
	assert.Equal(t, 2, summary.ByFaculty[1].Total)
	assert.Equal(t, 1, summary.ByFaculty[1].Eligible)
}

func TestDashboardSummaryEmptyStore(t *testing.T) {
	svc := NewDashboardService(seededStudents(), store.NewDocumentStore(), nil, nil, 0, nil)
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalStudents)
	assert.Equal(t, "0%", summary.EligibleRate)
}
