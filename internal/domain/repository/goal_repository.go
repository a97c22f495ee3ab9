package repository

import (
	"context"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/errors"

	"github.com/google/uuid"
)

// ErrGoalNotFound is returned when a user has never stored a goal.
var ErrGoalNotFound = errors.New("goal not found")

// GoalRepository persists per-user daily goals. Writes overwrite the whole row.
type GoalRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Goal, error)
	Upsert(ctx context.Context, goal *entity.Goal) error
}
