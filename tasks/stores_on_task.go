package tasks

import (
	"TnenntAdmin/config/logger"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const storesOnTimeout = 2 * time.Minute

// StoreActivator is the part of StoreService the job needs.
type StoreActivator interface {
	ActivateUnpaused(ctx context.Context) (int, error)
}

// StoresOnTask reopens every store that is not paused on a cron schedule.
type StoresOnTask struct {
	Stores StoreActivator
	Cron   *cron.Cron

	schedule string
	entry    cron.EntryID
}

// NewStoresOnTask takes a standard five field cron spec or a descriptor
// such as "@daily".
func NewStoresOnTask(stores StoreActivator, schedule string) *StoresOnTask {
	return &StoresOnTask{
		Stores:   stores,
		Cron:     cron.New(),
		schedule: schedule,
	}
}

// Start registers the job and starts the scheduler.
func (t *StoresOnTask) Start() error {
	if t.schedule == "" {
		return errors.New("empty stores-on schedule")
	}
	id, err := t.Cron.AddFunc(t.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), storesOnTimeout)
		defer cancel()
		t.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule stores-on %q: %w", t.schedule, err)
	}
	t.entry = id

	t.Cron.Start()
	logger.L().Info("stores-on task scheduled", zap.String("schedule", t.schedule))
	return nil
}

// Run activates the stores once. Failures are logged; the next tick retries.
func (t *StoresOnTask) Run(ctx context.Context) int {
	count, err := t.Stores.ActivateUnpaused(ctx)
	if err != nil {
		logger.L().Error("stores-on task failed", zap.Error(err))
		return 0
	}
	logger.L().Info("stores-on task finished", zap.Int("activated", count))
	return count
}

// Next reports when the job fires next. Zero before Start.
func (t *StoresOnTask) Next() time.Time {
	if t.entry == 0 {
		return time.Time{}
	}
	return t.Cron.Entry(t.entry).Next
}

// Stop waits for a running job to finish or ctx to expire.
func (t *StoresOnTask) Stop(ctx context.Context) {
	done := t.Cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		logger.L().Warn("stores-on task still running at shutdown")
	}
}
