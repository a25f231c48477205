package services

import (
	"context"
	"log"
	"time"

	"rental-backend/internal/metrics"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/schedule"
	"rental-backend/internal/timeutil"
)

// StatusRefresher periodically rolls payment statuses forward: scheduled
// payments become pending once their due date arrives, pending payments
// become overdue once it has passed. It fires once shortly after boot and
// then every interval; there is no cancellation beyond Stop at shutdown.
type StatusRefresher struct {
	PaymentRepo *repositories.PaymentRepository
	Interval    time.Duration
	InitialWait time.Duration

	stop chan struct{}
	done chan struct{}
}

func NewStatusRefresher(paymentRepo *repositories.PaymentRepository) *StatusRefresher {
	return &StatusRefresher{
		PaymentRepo: paymentRepo,
		Interval:    24 * time.Hour,
		InitialWait: 5 * time.Second,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

func (s *StatusRefresher) Start() {
	go s.run()
}

func (s *StatusRefresher) Stop() {
	close(s.stop)
	<-s.done
}

func (s *StatusRefresher) run() {
	defer close(s.done)

	select {
	case <-time.After(s.InitialWait):
		s.RunOnce(context.Background())
	case <-s.stop:
		return
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stop:
			return
		}
	}
}

// RunOnce sweeps every live payment across all tenants and applies the
// next rollover step. A payment that is both due and past due converges
// over two sweeps (scheduled -> pending, then pending -> overdue).
func (s *StatusRefresher) RunOnce(ctx context.Context) {
	metrics.StatusRefreshRuns.Inc()
	today := timeutil.Today()

	payments, err := s.PaymentRepo.ListAllByStatus(ctx,
		[]string{models.PaymentStatusScheduled, models.PaymentStatusPending})
	if err != nil {
		log.Printf("[StatusRefresh] sweep listing failed: %v", err)
		return
	}

	updated := 0
	for _, p := range payments {
		next := schedule.NextStatus(p.Status, p.DueDate, today)
		if next == p.Status {
			continue
		}
		if err := s.PaymentRepo.SetStatus(ctx, p.ID, next); err != nil {
			log.Printf("[StatusRefresh] payment %s not updated: %v", p.ID, err)
			continue
		}
		metrics.StatusTransitions.WithLabelValues(p.Status, next).Inc()
		updated++
	}

	if updated > 0 {
		log.Printf("[StatusRefresh] rolled %d payment(s) forward", updated)
	}
}
