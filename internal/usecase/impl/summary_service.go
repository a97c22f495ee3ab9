// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"nutriledger/config"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/ledger"
	"nutriledger/internal/domain/period"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"
	"nutriledger/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type summaryService struct {
	registerRepo repository.RegisterRepository
	goalRepo     repository.GoalRepository
	exporter     service.SummaryExporter
	location     *time.Location
	now          func() time.Time
	logger       *slog.Logger
}

// SummaryServiceParams holds dependencies for SummaryService, injected by Fx.
type SummaryServiceParams struct {
	fx.In

	RegisterRepo repository.RegisterRepository
	GoalRepo     repository.GoalRepository
	Exporter     service.SummaryExporter
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSummaryService is the constructor for the query facade.
func NewSummaryService(params SummaryServiceParams) (usecase.SummaryUsecase, error) {
	loc, err := params.Config.Location()
	if err != nil {
		return nil, err
	}

	return &summaryService{
		registerRepo: params.RegisterRepo,
		goalRepo:     params.GoalRepo,
		exporter:     params.Exporter,
		location:     loc,
		now:          time.Now,
		logger:       params.Logger,
	}, nil
}

func (srv *summaryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *summaryService) DailySummary(ctx context.Context, userID uuid.UUID, date *civil.Date) (*entity.PeriodSummary, error) {
	day := period.Today(srv.now(), srv.location)
	if date != nil {
		if !date.IsValid() {
			return nil, translateDomainError(errors.Wrapf(period.ErrInvalidRange, "invalid date %s", date))
		}
		day = *date
	}

	return srv.aggregate(ctx, userID, period.Single(day), ledger.GranularityDay)
}

func (srv *summaryService) PeriodSummary(ctx context.Context, userID uuid.UUID, desc period.Descriptor) (*entity.PeriodSummary, error) {
	rng, err := period.Resolve(desc, period.Today(srv.now(), srv.location))
	if err != nil {
		return nil, translateDomainError(err)
	}

	return srv.aggregate(ctx, userID, rng, ledger.GranularityPeriod)
}

func (srv *summaryService) ExportPeriod(ctx context.Context, userID uuid.UUID, desc period.Descriptor) (*usecase.ExportOutput, error) {
	summary, err := srv.PeriodSummary(ctx, userID, desc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := srv.exporter.Export(&buf, summary); err != nil {
		return nil, errors.Wrap(err, "failed to export summary")
	}

	return &usecase.ExportOutput{
		FileName:    fmt.Sprintf("nutrition_%s_%s%s", summary.Start, summary.End, srv.exporter.FileExtension()),
		ContentType: srv.exporter.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

// aggregate reads one snapshot of the user's completed registers and hands it to the ledger.
func (srv *summaryService) aggregate(ctx context.Context, userID uuid.UUID, rng period.DateRange, granularity ledger.Granularity) (*entity.PeriodSummary, error) {
	from, to := rng.Bounds(srv.location)
	registers, err := srv.registerRepo.List(ctx, repository.RegisterQuery{
		OwnerID:  userID,
		From:     from,
		To:       to,
		Statuses: []entity.RegisterStatus{entity.RegisterStatusCompleted},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registers")
	}

	var goal *entity.Goal
	if granularity == ledger.GranularityDay {
		goal, err = srv.goalRepo.FindByUser(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrGoalNotFound) {
			return nil, errors.Wrap(err, "failed to find goal")
		}
	}

	summary := ledger.Aggregate(ledger.Input{
		UserID:      userID,
		Range:       rng,
		Granularity: granularity,
		Registers:   registers,
		Goal:        goal,
		Location:    srv.location,
	})

	srv.log(ctx).Debug("Summary computed",
		slog.String("userID", userID.String()),
		slog.String("start", rng.Start.String()),
		slog.String("end", rng.End.String()),
		slog.Int("count", summary.Count))

	return summary, nil
}
