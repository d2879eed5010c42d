package quote

import (
	"context"
	"time"

	"metalwatch/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Watchdog periodically checks how old the spot slot is. A last-value
// service that silently stops receiving quotes is worse than one that is
// down, so staleness gets logged loudly.
type Watchdog struct {
	store    adapters.QuoteStore
	clock    adapters.Clock
	interval time.Duration
	maxAge   time.Duration
	// -----
	sched gocron.Scheduler
}

func NewWatchdog(quoteStore adapters.QuoteStore, clock adapters.Clock, interval, maxAge time.Duration) *Watchdog {
	return &Watchdog{store: quoteStore, clock: clock, interval: interval, maxAge: maxAge}
}

func (w *Watchdog) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	w.sched = scheduler

	job := func() {
		execID := uuid.NewString()
		CheckSpotFreshness(execID, w.store, w.clock, w.maxAge)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := w.Shutdown(); sdErr != nil {
			logrus.Errorf("Watchdog shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (w *Watchdog) Shutdown() error {
	if w.sched == nil {
		return nil
	}
	err := w.sched.Shutdown()
	w.sched = nil
	return err
}

// CheckSpotFreshness reports whether the spot slot is missing or older
// than maxAge, logging a warning when it is.
func CheckSpotFreshness(execID string, quoteStore adapters.QuoteStore, clock adapters.Clock, maxAge time.Duration) bool {
	rec, ok := quoteStore.Spot()
	if !ok {
		logrus.Warnf("No spot price received yet; execID: %s", execID)
		return true
	}

	age := clock.Now().Sub(rec.LastUpdated)
	if age > maxAge {
		logrus.WithFields(logrus.Fields{
			"execID": execID,
			"age":    age.String(),
			"source": rec.Source,
		}).Warn("Spot price is stale")
		return true
	}
	return false
}
