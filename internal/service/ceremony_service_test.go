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

func newCeremonyFixture(students ...models.Student) (*CeremonyService, *store.CeremonyStore) {
	attendees := store.NewCeremonyStore()
	graduation := NewGraduationService(seededStudents(students...), testClassification(), nil)
	return NewCeremonyService(attendees, graduation, nil), attendees
}

func TestSyncEligibleIsIncremental(t *testing.T) {
	svc, attendees := newCeremonyFixture(clearedStudent(1), clearedStudent(2), testStudent(3, nil))
	ctx := context.Background()

	assert.Equal(t, 2, svc.SyncEligible(ctx))
	assert.Len(t, attendees.All(), 2)

	// Re-syncing adds nothing new.
	assert.Equal(t, 0, svc.SyncEligible(ctx))
	assert.Len(t, attendees.All(), 2)
}

func TestConfirmAssignsSeatOnce(t *testing.T) {
	svc, _ := newCeremonyFixture(clearedStudent(1), clearedStudent(2))
	ctx := context.Background()
	svc.SyncEligible(ctx)

	first, err := svc.Confirm(ctx, "id-001")
	require.NoError(t, err)
	assert.True(t, first.Confirmed)
	assert.Equal(t, "R1-S01", first.Seat)

	second, err := svc.Confirm(ctx, "id-002")
	require.NoError(t, err)
	assert.Equal(t, "R1-S02", second.Seat)

	// Confirming again keeps the original seat.
	again, err := svc.Confirm(ctx, "id-001")
	require.NoError(t, err)
	assert.Equal(t, "R1-S01", again.Seat)
}

func TestGownRequiresConfirmation(t *testing.T) {
	svc, _ := newCeremonyFixture(clearedStudent(1))
	ctx := context.Background()
	svc.SyncEligible(ctx)

	_, err := svc.CollectGown(ctx, "id-001")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Confirm(ctx, "id-001")
	require.NoError(t, err)

	updated, err := svc.CollectGown(ctx, "id-001")
	require.NoError(t, err)
	assert.True(t, updated.GownCollected)
}

func TestCeremonySummaryRates(t *testing.T) {
	svc, _ := newCeremonyFixture(clearedStudent(1), clearedStudent(2), clearedStudent(3))
	ctx := context.Background()
	svc.SyncEligible(ctx)

	summary := svc.Summary(ctx)
	assert.Equal(t, 3, summary.TotalAttendees)
	assert.Equal(t, "0%", summary.GownCollectionRate)

	_, err := svc.Confirm(ctx, "id-001")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, "id-002")
	require.NoError(t, err)
	_, err = svc.CollectGown(ctx, "id-001")
	require.NoError(t, err)

	summary = svc.Summary(ctx)
	assert.Equal(t, 2, summary.ConfirmedCount)
	assert.Equal(t, 1, summary.GownCollectedCount)
	assert.Equal(t, "50%", summary.GownCollectionRate)
}
