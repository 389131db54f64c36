package forex

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultFetchHour = 18

// Scheduler runs IngestLatest once a day at a fixed wall-clock time.
type Scheduler struct {
	service *Service
	hour    uint
	minute  uint
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		logrus.Infof("Daily rate ingestion %s started", execID)
		if ingestErr := s.service.IngestLatest(jobCtx); ingestErr != nil {
			// No retry: a failed run simply waits for the next trigger.
			logrus.Errorf("Daily rate ingestion %s failed: %v", execID, ingestErr)
			return
		}
		logrus.Infof("Daily rate ingestion %s finished", execID)
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(s.hour, s.minute, 0))),
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
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

// NewScheduler creates a daily scheduler firing at the given "HH:MM" local
// time. An unparseable value falls back to 18:00.
func NewScheduler(service *Service, fetchAt string) *Scheduler {
	parsed, err := time.Parse("15:04", fetchAt)
	if err != nil {
		logrus.Warnf("Invalid fetch time %q, defaulting to %02d:00", fetchAt, defaultFetchHour)
		return &Scheduler{service: service, hour: defaultFetchHour}
	}
	return &Scheduler{service: service, hour: uint(parsed.Hour()), minute: uint(parsed.Minute())}
}
