package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpoint/gms-api/internal/models"
)

func testClassification() models.Classification {
	return models.Classification{
		"BSc Computer Science":   {School: "School of Computing", Level: models.LevelBachelor},
		"Diploma in Networking":  {School: "School of Computing", Level: models.LevelDiploma},
		"BCom Accounting":        {School: "School of Business", Level: models.LevelBachelor},
		"Certificate in Banking": {School: "School of Business", Level: models.LevelCertificate},
	}
}

func TestEligibilityRequiresClearanceAndPayment(t *testing.T) {
	clearedUnpaid := clearedStudent(1)
	clearedUnpaid.PaymentStatus = models.PaymentPending
	paidUncleared := testStudent(2, func(st *models.Student) {
		st.PaymentStatus = models.PaymentPaid
	})

	students := seededStudents(clearedUnpaid, paidUncleared, clearedStudent(3))
	svc := NewGraduationService(students, testClassification(), nil)

	eligible := svc.EligibleStudents(context.Background())
	require.Len(t, eligible, 1)
	assert.Equal(t, "id-003", eligible[0].ID)

	// Settling the fee makes the cleared student appear without any other
	// change.
	students.Update("id-001", func(st *models.Student) {
		st.PaymentStatus = models.PaymentPaid
	})
	eligible = svc.EligibleStudents(context.Background())
	require.Len(t, eligible, 2)
	assert.Equal(t, "id-001", eligible[0].ID)
}

func TestEligibilityWaivedIsNotPaid(t *testing.T) {
	waived := clearedStudent(1)
	waived.PaymentStatus = models.PaymentWaived
	svc := NewGraduationService(seededStudents(waived), testClassification(), nil)

	assert.Empty(t, svc.EligibleStudents(context.Background()))
}

func TestHierarchyGroupsAndPrunes(t *testing.T) {
	students := []models.Student{
		clearedStudent(1), // BSc Computer Science
		clearedStudent(2), // BSc Computer Science
	}
	networking := clearedStudent(3)
	networking.Program = "Diploma in Networking"
	banking := clearedStudent(4)
	banking.Program = "Certificate in Banking"
	students = append(students, networking, banking)

	svc := NewGraduationService(seededStudents(students...), testClassification(), nil)
	_, hierarchy := svc.Snapshot(context.Background())

	assert.Equal(t, 4, hierarchy.Total)
	require.Len(t, hierarchy.Schools, 2)

	// Schools sort alphabetically; Business has no Bachelor or Diploma
	// students so only the Certificate level survives.
	business := hierarchy.Schools[0]
	assert.Equal(t, "School of Business", business.School)
	require.Len(t, business.Levels, 1)
	assert.Equal(t, models.LevelCertificate, business.Levels[0].Level)

	computing := hierarchy.Schools[1]
	assert.Equal(t, "School of Computing", computing.School)
	require.Len(t, computing.Levels, 2)
	assert.Equal(t, models.LevelBachelor, computing.Levels[0].Level)
	assert.Equal(t, models.LevelDiploma, computing.Levels[1].Level)

	// Students inside a leaf keep store order.
	bsc := computing.Levels[0].Programs[0]
	require.Len(t, bsc.Students, 2)
	assert.Equal(t, "id-001", bsc.Students[0].ID)
	assert.Equal(t, "id-002", bsc.Students[1].ID)
}

func TestHierarchyUnmappedProgramFallsBack(t *testing.T) {
	odd := clearedStudent(1)
	odd.Program = "BEd Mathematics"
	svc := NewGraduationService(seededStudents(odd), testClassification(), nil)

	hierarchy := svc.BuildHierarchy([]models.Student{odd})
	require.Len(t, hierarchy.Schools, 1)
	assert.Equal(t, models.UnassignedSchool, hierarchy.Schools[0].School)
}

func TestHierarchyEmptyInput(t *testing.T) {
	svc := NewGraduationService(seededStudents(), testClassification(), nil)
	hierarchy := svc.BuildHierarchy(nil)
	assert.Zero(t, hierarchy.Total)
	assert.Empty(t, hierarchy.Schools)
}
