package usecase

import (
	"context"

	"nutriledger/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalysisUsecase drives the analyzing transition of a register.
type AnalysisUsecase interface {
	// ProcessAnalysis runs the image analyzer for a register still in analyzing and records the outcome.
	// Registers that already left analyzing are returned unchanged.
	ProcessAnalysis(ctx context.Context, registerID uuid.UUID) (*entity.Register, error)
}
