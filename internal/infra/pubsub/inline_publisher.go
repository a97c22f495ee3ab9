package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"
	"nutriledger/internal/usecase"

	"github.com/google/uuid"
)

const inlineAnalysisTimeout = 2 * time.Minute

// inlinePublisher runs the analysis in a goroutine of the API process.
type inlinePublisher struct {
	analysis usecase.AnalysisUsecase
	logger   *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewInlinePublisher creates a publisher that analyzes registers in-process.
func NewInlinePublisher(analysis usecase.AnalysisUsecase, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{
		analysis: analysis,
		logger:   logger,
	}
}

// PublishAnalysisRequested starts the analysis and returns immediately.
func (p *inlinePublisher) PublishAnalysisRequested(ctx context.Context, event *service.AnalysisEvent) error {
	registerID, err := uuid.Parse(event.RegisterID)
	if err != nil {
		return errors.Wrapf(err, "invalid register id %q", event.RegisterID)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("publisher is closed")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)
	jobCtx := context.WithoutCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		runCtx, cancel := context.WithTimeout(jobCtx, inlineAnalysisTimeout)
		defer cancel()

		register, err := p.analysis.ProcessAnalysis(runCtx, registerID)
		if err != nil {
			logger.Error("[InlinePubSub] Analysis failed",
				slog.String("register_id", event.RegisterID),
				slog.Any("error", err),
			)

			return
		}

		logger.Info("[InlinePubSub] Analysis finished",
			slog.String("register_id", event.RegisterID),
			slog.String("status", string(register.Status)),
		)
	}()

	return nil
}

// Close stops accepting jobs and waits for running analyses.
func (p *inlinePublisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()

	return nil
}
