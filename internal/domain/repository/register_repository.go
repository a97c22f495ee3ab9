// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrRegisterNotFound is returned when a register does not exist.
	ErrRegisterNotFound = errors.New("register not found")
	// ErrStaleTransition is returned when a register's stored status no longer matches the expected one.
	ErrStaleTransition = errors.New("register status changed concurrently")
)

// RegisterQuery selects a user's registers created in the half-open interval [From, To).
type RegisterQuery struct {
	OwnerID  uuid.UUID
	From     time.Time
	To       time.Time
	Statuses []entity.RegisterStatus // empty means any status
	Limit    int                     // zero means no limit
}

// RegisterRepository persists registers.
type RegisterRepository interface {
	// Create persists a new register.
	Create(ctx context.Context, register *entity.Register) error

	// FindByID retrieves a register by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Register, error)

	// FindByIDForUpdate retrieves a register from the primary with a row lock. Use inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Register, error)

	// List returns the registers matching q, newest first.
	List(ctx context.Context, q RegisterQuery) ([]*entity.Register, error)

	// SaveTransition stores the register's new status, items and totals only if the
	// stored status still equals from. It returns ErrStaleTransition otherwise.
	SaveTransition(ctx context.Context, register *entity.Register, from entity.RegisterStatus) error

	// Delete removes a register permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
