package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
	"github.com/polkiloo/shopmart/internal/domain/model"
)

// SettlementFacade exposes the subset of application functionality required by the worker.
type SettlementFacade interface {
	PendingEarnings(ctx context.Context, limit int) ([]model.EarningsJob, error)
	SettleEarnings(ctx context.Context, orderID int64) error
}

// EarningsSettler drains pending loyalty settlement jobs concurrently. Jobs
// appear when the synchronous post-checkout settlement attempt fails; the
// settler retries them until the claim-by-delete settlement succeeds.
type EarningsSettler struct {
	facade       SettlementFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.EarningsJob
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewEarningsSettler constructs the settlement worker pool.
func NewEarningsSettler(facade SettlementFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *EarningsSettler {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &EarningsSettler{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.EarningsJob, batchSize*workers),
	}
}

// Start launches background processing.
func (s *EarningsSettler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *EarningsSettler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *EarningsSettler) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetchAndDispatch(ctx)
		}
	}
}

func (s *EarningsSettler) fetchAndDispatch(ctx context.Context) {
	pending, err := s.facade.PendingEarnings(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("fetch pending earnings failed", slog.String("error", err.Error()))
		return
	}
	for _, job := range pending {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- job:
		}
	}
}

func (s *EarningsSettler) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-s.jobs:
			if !ok {
				return
			}
			s.handleJob(ctx, job)
		}
	}
}

func (s *EarningsSettler) handleJob(ctx context.Context, job model.EarningsJob) {
	err := s.facade.SettleEarnings(ctx, job.OrderID)
	if err == nil {
		return
	}
	if domainErrors.IsTransient(err) {
		// The job row survives; the next poll picks it up again.
		s.logger.Warn("earnings settlement deferred",
			slog.Int64("order_id", job.OrderID),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.Error("earnings settlement failed",
		slog.Int64("order_id", job.OrderID),
		slog.String("error", err.Error()),
	)
}
