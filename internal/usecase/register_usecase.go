package usecase

import (
	"context"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/period"

	"github.com/google/uuid"
)

// CreateRegisterInput carries a new meal photo.
type CreateRegisterInput struct {
	OwnerID     uuid.UUID
	Image       []byte
	ContentType string // detected from the bytes when empty
	Description string
}

// RegisterUsecase manages the lifecycle of a user's registers.
type RegisterUsecase interface {
	// CreateRegister stores the image, persists the register in analyzing and schedules its analysis.
	CreateRegister(ctx context.Context, input *CreateRegisterInput) (*entity.Register, error)

	// GetRegister returns one of the user's registers.
	GetRegister(ctx context.Context, ownerID, registerID uuid.UUID) (*entity.Register, error)

	// ListRegisters returns the user's registers of any status created inside the period, newest first.
	ListRegisters(ctx context.Context, ownerID uuid.UUID, desc period.Descriptor) ([]*entity.Register, error)

	// DeleteRegister removes the register and, best effort, its image.
	DeleteRegister(ctx context.Context, ownerID, registerID uuid.UUID) error

	// ConfirmRegister promotes a reviewing register to completed. Nil items confirms the analyzer's candidates.
	ConfirmRegister(ctx context.Context, ownerID, registerID uuid.UUID, items []entity.FoodItem) (*entity.Register, error)

	// RejectRegister moves a reviewing register to failed.
	RejectRegister(ctx context.Context, ownerID, registerID uuid.UUID, reason string) (*entity.Register, error)
}
