package scheduler

import (
	"context"
	"time"

	"duty-assignment-backend/internal/logger"
	"duty-assignment-backend/internal/service"
)

// Scheduler periodically triggers scheduled assignment runs. Each tick hands
// the engine the previous tick time, so a rule fires once when its schedule
// time passes and not again for the rest of the day.
type Scheduler struct {
	assignments *service.AssignmentService
	interval    time.Duration
	log         *logger.Logger
	stop        chan struct{}
	done        chan struct{}
}

// New creates a scheduler ticking at the given interval
func New(assignments *service.AssignmentService, intervalMinutes int) *Scheduler {
	if intervalMinutes < 1 {
		intervalMinutes = 5
	}
	return &Scheduler{
		assignments: assignments,
		interval:    time.Duration(intervalMinutes) * time.Minute,
		log:         logger.WithComponent("scheduler"),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start launches the tick loop in its own goroutine
func (s *Scheduler) Start() {
	go s.loop()
	s.log.WithField("interval", s.interval.String()).Info("scheduler started")
}

// Stop terminates the loop and waits for an in-flight run to finish
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.tick(last, now)
			last = now
		}
	}
}

func (s *Scheduler) tick(since, now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	summary, err := s.assignments.RunScheduled(ctx, since, now)
	if err != nil {
		// Typically "no duty roster": nothing to do until someone fills the
		// schedule, so keep it quiet.
		s.log.WithError(err).Debug("scheduled run skipped")
		return
	}
	if summary.UpdatedEntities > 0 || len(summary.Errors) > 0 {
		s.log.WithFields(map[string]interface{}{
			"date":    summary.Date,
			"updated": summary.UpdatedEntities,
			"errors":  len(summary.Errors),
		}).Info("scheduled run completed")
	}
}
