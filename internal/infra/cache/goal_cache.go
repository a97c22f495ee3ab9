// Package cache keeps recently read goals in process memory.
package cache

import (
	"context"

	"nutriledger/config"
	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/fx"
)

// GoalCacheParams defines the dependencies of the goal cache decorator.
type GoalCacheParams struct {
	fx.In

	Repo    repository.GoalRepository
	Config  *config.Config
	Metrics service.LedgerMetrics
}

// cachedGoalRepository serves FindByUser from an expirable LRU. Absent goals are cached too.
type cachedGoalRepository struct {
	next    repository.GoalRepository
	cache   *expirable.LRU[uuid.UUID, *entity.Goal]
	metrics service.LedgerMetrics
}

// NewCachedGoalRepository decorates the goal repository with a read cache.
func NewCachedGoalRepository(params GoalCacheParams) repository.GoalRepository {
	return &cachedGoalRepository{
		next:    params.Repo,
		cache:   expirable.NewLRU[uuid.UUID, *entity.Goal](params.Config.GoalCache.Size, nil, params.Config.GoalCache.TTL),
		metrics: params.Metrics,
	}
}

// FindByUser returns a copy so callers cannot mutate the cached entry.
func (r *cachedGoalRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Goal, error) {
	if goal, ok := r.cache.Get(userID); ok {
		r.metrics.GoalCacheLookup(true)
		if goal == nil {
			return nil, repository.ErrGoalNotFound
		}

		return cloneGoal(goal), nil
	}
	r.metrics.GoalCacheLookup(false)

	goal, err := r.next.FindByUser(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrGoalNotFound):
		r.cache.Add(userID, nil)

		return nil, err
	case err != nil:
		return nil, err
	}

	r.cache.Add(userID, cloneGoal(goal))

	return goal, nil
}

// Upsert writes through and drops the cached entry.
func (r *cachedGoalRepository) Upsert(ctx context.Context, goal *entity.Goal) error {
	r.cache.Remove(goal.UserID)
	if err := r.next.Upsert(ctx, goal); err != nil {
		return err
	}
	r.cache.Remove(goal.UserID)

	return nil
}

func cloneGoal(g *entity.Goal) *entity.Goal {
	c := *g
	c.CaloriesGoal = cloneFloat(g.CaloriesGoal)
	c.ProteinGoal = cloneFloat(g.ProteinGoal)
	c.CarbsGoal = cloneFloat(g.CarbsGoal)
	c.FatGoal = cloneFloat(g.FatGoal)
	if g.WaterGoalML != nil {
		ml := *g.WaterGoalML
		c.WaterGoalML = &ml
	}

	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v

	return &c
}
