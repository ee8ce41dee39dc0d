//go:build unit

package usecase_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"timer-gateway/internal/domain/timer"
	"timer-gateway/internal/pkg/config"
	"timer-gateway/internal/usecase"
	usecasemock "timer-gateway/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCleanup(t *testing.T, queueSize int) (*usecase.BackgroundCleanup, *usecasemock.MockTimerReconciler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reconciler := usecasemock.NewMockTimerReconciler(ctrl)
	cfg := config.CleanupConfig{Workers: 1, QueueSize: queueSize, Timeout: time.Second}
	return usecase.NewBackgroundCleanup(reconciler, cfg, slog.New(slog.DiscardHandler)), reconciler
}

func TestBackgroundCleanup(t *testing.T) {
	expired := threeTimers()

	t.Run("dispatch returns before the job runs and the job runs detached", func(t *testing.T) {
		cleanup, reconciler := newCleanup(t, 4)
		release := make(chan struct{})
		done := make(chan struct{})

		reconciler.EXPECT().Reconcile(gomock.Any(), "tok", "R1", expired).
			DoAndReturn(func(ctx context.Context, _, _ string, _ []timer.Record) bool {
				<-release
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				close(done)
				return true
			}).Times(1)

		cleanup.Start()
		cleanup.Dispatch("tok", "R1", expired)

		// Dispatch did not wait for the blocked reconcile
		close(release)
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("cleanup job never ran")
		}
		require.NoError(t, cleanup.Stop(context.Background()))
	})

	t.Run("failed cleanup is swallowed", func(t *testing.T) {
		cleanup, reconciler := newCleanup(t, 4)
		reconciler.EXPECT().Reconcile(gomock.Any(), "tok", "R1", expired).Return(false).Times(1)

		cleanup.Start()
		cleanup.Dispatch("tok", "R1", expired)
		require.NoError(t, cleanup.Stop(context.Background()))
	})

	t.Run("empty batches are not queued", func(t *testing.T) {
		cleanup, _ := newCleanup(t, 4)
		cleanup.Start()
		cleanup.Dispatch("tok", "R1", nil)
		cleanup.Dispatch("tok", "R1", []timer.Record{})
		require.NoError(t, cleanup.Stop(context.Background()))
	})

	t.Run("full queue drops the job", func(t *testing.T) {
		cleanup, reconciler := newCleanup(t, 1)
		reconciler.EXPECT().Reconcile(gomock.Any(), "tok", "R1", gomock.Any()).Return(true).Times(1)

		// not started yet: the first job fills the queue, the second is dropped
		cleanup.Dispatch("tok", "R1", expired)
		cleanup.Dispatch("tok", "R1", expired)

		cleanup.Start()
		require.NoError(t, cleanup.Stop(context.Background()))
	})

	t.Run("dispatch after stop is dropped", func(t *testing.T) {
		cleanup, _ := newCleanup(t, 4)
		cleanup.Start()
		require.NoError(t, cleanup.Stop(context.Background()))
		require.NoError(t, cleanup.Stop(context.Background()))

		cleanup.Dispatch("tok", "R1", expired)
	})

	t.Run("stop gives up when the context ends first", func(t *testing.T) {
		cleanup, reconciler := newCleanup(t, 4)
		started := make(chan struct{})
		release := make(chan struct{})
		reconciler.EXPECT().Reconcile(gomock.Any(), "tok", "R1", expired).
			DoAndReturn(func(context.Context, string, string, []timer.Record) bool {
				close(started)
				<-release
				return true
			}).Times(1)

		cleanup.Start()
		cleanup.Dispatch("tok", "R1", expired)
		<-started

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, cleanup.Stop(ctx), context.DeadlineExceeded)
		close(release)
	})
}
