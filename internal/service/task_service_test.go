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

func TestTaskInFlightGuard(t *testing.T) {
	dispatcher := &holdingDispatcher{}
	svc := NewTaskService(store.NewTaskStore(), dispatcher, 0, nil)
	ctx := context.Background()

	first, err := svc.Submit(ctx, "bulk_approve", "clearance:bulk", func(context.Context) interface{} { return 1 })
	require.NoError(t, err)
	assert.Equal(t, models.TaskQueued, first.Status)
	assert.True(t, svc.Busy("clearance:bulk"))

	// An identical action is refused while the first is in flight.
	_, err = svc.Submit(ctx, "bulk_approve", "clearance:bulk", func(context.Context) interface{} { return 2 })
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrActionInFlight.Code, appErrors.FromError(err).Code)

	// A different target is unaffected.
	_, err = svc.Submit(ctx, "send_reminders", "finance:remind", func(context.Context) interface{} { return 3 })
	require.NoError(t, err)

	for _, job := range dispatcher.drain() {
		require.NoError(t, svc.Execute(ctx, job))
	}
	assert.False(t, svc.Busy("clearance:bulk"))

	// Completion frees the slot for the next identical action.
	_, err = svc.Submit(ctx, "bulk_approve", "clearance:bulk", func(context.Context) interface{} { return 4 })
	require.NoError(t, err)
}

func TestTaskAlwaysCompletesInline(t *testing.T) {
	svc := newInlineTasks()

	task, err := svc.Submit(context.Background(), "record_payment", "finance:record:id-001", func(context.Context) interface{} {
		return "done"
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, task.Status)
	assert.Equal(t, "done", task.Result)
	require.NotNil(t, task.FinishedAt)
	assert.False(t, svc.Busy("finance:record:id-001"))
}

func TestTaskGetUnknown(t *testing.T) {
	svc := newInlineTasks()
	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
