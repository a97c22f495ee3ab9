package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nutriledger/config"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/constants"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"
	"nutriledger/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomeTimeout = "timeout"

	defaultAnalyzerTimeout = 60 * time.Second
)

type analysisService struct {
	txManager    repository.TransactionManager
	registerRepo repository.RegisterRepository
	imageStore   service.ImageStore
	analyzer     service.ImageAnalyzer
	metrics      service.LedgerMetrics
	threshold    float64
	timeout      time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// AnalysisServiceParams holds dependencies for AnalysisService, injected by Fx.
type AnalysisServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	RegisterRepo repository.RegisterRepository
	ImageStore   service.ImageStore
	Analyzer     service.ImageAnalyzer
	Metrics      service.LedgerMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAnalysisService is the constructor for analysisService.
func NewAnalysisService(params AnalysisServiceParams) usecase.AnalysisUsecase {
	threshold := constants.DefaultReviewConfidenceThreshold
	if params.Config.Ledger != nil && params.Config.Ledger.ReviewConfidenceThreshold > 0 {
		threshold = params.Config.Ledger.ReviewConfidenceThreshold
	}
	timeout := defaultAnalyzerTimeout
	if params.Config.Gemini != nil && params.Config.Gemini.Timeout > 0 {
		timeout = params.Config.Gemini.Timeout
	}

	return &analysisService{
		txManager:    params.TxManager,
		registerRepo: params.RegisterRepo,
		imageStore:   params.ImageStore,
		analyzer:     params.Analyzer,
		metrics:      params.Metrics,
		threshold:    threshold,
		timeout:      timeout,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *analysisService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *analysisService) ProcessAnalysis(ctx context.Context, registerID uuid.UUID) (*entity.Register, error) {
	started := srv.now()

	// Read from the primary: the job usually arrives right after the insert.
	register, err := srv.registerRepo.FindByIDForUpdate(ctx, registerID)
	if err != nil {
		if errors.Is(err, repository.ErrRegisterNotFound) {
			return nil, domainerrors.ErrRegisterNotFound
		}

		return nil, errors.Wrap(err, "failed to find register")
	}

	if register.Status != entity.RegisterStatusAnalyzing {
		srv.log(ctx).Info("Register already analyzed, skipping",
			slog.String("registerID", registerID.String()),
			slog.String("status", string(register.Status)))

		return register, nil
	}

	image, mimeType, err := srv.imageStore.Get(ctx, register.ImageRef)
	if err != nil {
		if !errors.Is(err, service.ErrImageNotFound) {
			return nil, errors.Wrap(err, "failed to load image")
		}

		return srv.finish(ctx, register, started, nil, errors.Wrap(err, register.ImageRef))
	}

	result, analyzeErr := srv.analyze(ctx, service.AnalysisRequest{
		Image:       image,
		MIMEType:    mimeType,
		Description: register.Description,
	})
	if analyzeErr != nil && ctx.Err() != nil {
		// Shutting down or the caller gave up: leave the register in analyzing for redelivery.
		return nil, errors.Wrap(ctx.Err(), "analysis interrupted")
	}

	return srv.finish(ctx, register, started, result, analyzeErr)
}

func (srv *analysisService) analyze(ctx context.Context, req service.AnalysisRequest) (*service.AnalysisResult, error) {
	actx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	start := time.Now()
	result, err := srv.analyzer.Analyze(actx, req)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		srv.metrics.AnalyzerCall(outcomeSuccess, elapsed)
	case errors.Is(err, context.DeadlineExceeded):
		srv.metrics.AnalyzerCall(outcomeTimeout, elapsed)
		err = errors.Wrapf(err, "analyzer timed out after %s", srv.timeout)
	default:
		srv.metrics.AnalyzerCall(outcomeError, elapsed)
	}

	return result, err
}

// finish classifies the analyzer outcome and stores the transition out of analyzing.
func (srv *analysisService) finish(
	ctx context.Context,
	register *entity.Register,
	started time.Time,
	result *service.AnalysisResult,
	analyzeErr error,
) (*entity.Register, error) {
	var updated *entity.Register
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewRegisterRepository()

		current, err := repo.FindByIDForUpdate(ctx, register.ID)
		if err != nil {
			return errors.Wrap(err, "failed to lock register")
		}
		if current.Status != entity.RegisterStatusAnalyzing {
			updated = current

			return nil
		}

		if err := classifyAnalysis(current, result, analyzeErr, srv.threshold, srv.now()); err != nil {
			return err
		}
		if err := repo.SaveTransition(ctx, current, entity.RegisterStatusAnalyzing); err != nil {
			return errors.Wrap(err, "failed to save analysis result")
		}
		updated = current

		return nil
	})
	if err != nil {
		return nil, translateDomainError(err)
	}

	srv.metrics.AnalysisFinished(string(updated.Status), srv.now().Sub(started))

	attrs := []any{
		slog.String("registerID", updated.ID.String()),
		slog.String("status", string(updated.Status)),
		slog.Int("items", len(updated.FoodItems)+len(updated.ReviewItems)),
	}
	if updated.Status == entity.RegisterStatusFailed {
		srv.log(ctx).Warn("Register analysis failed", append(attrs, slog.String("reason", updated.FailureReason))...)
	} else {
		srv.log(ctx).Info("Register analysis finished", attrs...)
	}

	return updated, nil
}

// classifyAnalysis moves an analyzing register to failed, reviewing or completed.
// Errors and empty results fail; missing or low mean confidence goes to review.
func classifyAnalysis(r *entity.Register, result *service.AnalysisResult, analyzeErr error, threshold float64, now time.Time) error {
	if analyzeErr != nil {
		return r.Fail(analyzeErr.Error(), now)
	}
	if result == nil || len(result.Items) == 0 {
		return r.Fail(entity.ErrEmptyAnalysis.Error(), now)
	}

	totals := entity.ComputeTotals(result.Items)
	missing := 0
	for _, item := range result.Items {
		if item.Confidence == nil {
			missing++
		}
	}

	switch {
	case missing > 0:
		return r.MarkForReview(result.Items, result.Description,
			fmt.Sprintf("%d of %d items have no confidence score", missing, len(result.Items)), now)
	case *totals.AIConfidence < threshold:
		return r.MarkForReview(result.Items, result.Description,
			fmt.Sprintf("mean confidence %.2f below %.2f", *totals.AIConfidence, threshold), now)
	default:
		return r.Complete(result.Items, result.Description, now)
	}
}
