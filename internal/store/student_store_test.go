package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpoint/gms-api/internal/models"
)

func seedThree() *StudentStore {
	s := NewStudentStore()
	s.Seed([]models.Student{
		{ID: "1", StudentID: "GRD-2024-0001", Name: "Amina Yusuf", Clearance: models.NewDepartmentalClearance()},
		{ID: "2", StudentID: "GRD-2024-0002", Name: "Brian Okello", Clearance: models.NewDepartmentalClearance()},
		{ID: "3", StudentID: "GRD-2024-0003", Name: "Catherine Nambi", Clearance: models.NewDepartmentalClearance()},
	})
	return s
}

func TestStudentStorePreservesInsertionOrder(t *testing.T) {
	s := seedThree()

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)
	assert.Equal(t, "3", all[2].ID)
}

func TestStudentStoreUpdateUnknownID(t *testing.T) {
	s := seedThree()

	_, ok := s.Update("missing", func(st *models.Student) { st.Name = "X" })
	assert.False(t, ok)
}

func TestStudentStoreUpdateKeepsRegistrationCode(t *testing.T) {
	s := seedThree()

	updated, ok := s.Update("1", func(st *models.Student) {
		st.Name = "Renamed"
		st.StudentID = "TAMPERED"
	})
	require.True(t, ok)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "GRD-2024-0001", updated.StudentID)
}

func TestStudentStoreUpdateIsIdempotentOnValue(t *testing.T) {
	s := seedThree()

	mutate := func(st *models.Student) { st.Clearance.Academic = models.DeptApproved }
	first, ok := s.Update("2", mutate)
	require.True(t, ok)
	second, ok := s.Update("2", mutate)
	require.True(t, ok)
	assert.Equal(t, first.Clearance, second.Clearance)
}

func TestStudentStoreFilterDoesNotMutate(t *testing.T) {
	s := seedThree()

	matched := s.Filter(func(st models.Student) bool { return st.ID != "2" })
	require.Len(t, matched, 2)
	assert.Equal(t, "1", matched[0].ID)
	assert.Equal(t, "3", matched[1].ID)

	// Scribbling on the returned slice must not reach the store.
	matched[0].Name = "Scribble"
	got, _ := s.Get("1")
	assert.Equal(t, "Amina Yusuf", got.Name)
}

func TestStudentStoreGetByStudentID(t *testing.T) {
	s := seedThree()

	st, ok := s.GetByStudentID("GRD-2024-0002")
	require.True(t, ok)
	assert.Equal(t, "2", st.ID)

	_, ok = s.GetByStudentID("GRD-2024-9999")
	assert.False(t, ok)
}
