package usecase

import (
	"context"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/period"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// ExportOutput is a rendered summary document.
type ExportOutput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// SummaryUsecase is the read-only query facade over the ledger.
type SummaryUsecase interface {
	// DailySummary aggregates a single day with goal progress. A nil date means today.
	DailySummary(ctx context.Context, userID uuid.UUID, date *civil.Date) (*entity.PeriodSummary, error)

	// PeriodSummary resolves the descriptor and aggregates it with the average-per-day view.
	PeriodSummary(ctx context.Context, userID uuid.UUID, desc period.Descriptor) (*entity.PeriodSummary, error)

	// ExportPeriod renders PeriodSummary as a downloadable document.
	ExportPeriod(ctx context.Context, userID uuid.UUID, desc period.Descriptor) (*ExportOutput, error)
}
