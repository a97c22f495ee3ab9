package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"nutriledger/config"
	"nutriledger/internal/domain/lifecycle"
	"nutriledger/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const dbStatsName = "ledger"

// Params defines the dependencies of the ledger database handle.
type Params struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	Registerer prometheus.Registerer `optional:"true"`
	Observer   QueryObserver         `optional:"true"`
}

// New opens the primary (and replica) connections, exports pool statistics and ties both to the fx app.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Register transitions open their own transactions through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config, params.Observer),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registerer != nil {
		if err := params.Registerer.Register(collectors.NewDBStatsCollector(sqlDB, dbStatsName)); err != nil {
			return nil, errors.Wrap(err, "failed to register database pool collector")
		}
	}

	watcher := newPoolWatcher(params.Logger, params.Config.Database)
	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go watcher.run(watchCtx, sqlDB.Stats)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWatcher logs connection waits between two samples of the pool statistics.
type poolWatcher struct {
	logger    *slog.Logger
	interval  time.Duration
	warnAfter time.Duration
	prev      sql.DBStats
}

func newPoolWatcher(logger *slog.Logger, cfg *config.DatabaseConfig) *poolWatcher {
	w := &poolWatcher{logger: logger}
	if cfg != nil {
		w.interval = cfg.PoolCheckInterval
		w.warnAfter = cfg.PoolWaitWarnThreshold
	}

	return w
}

func (w *poolWatcher) run(ctx context.Context, stats func() sql.DBStats) {
	if w.logger == nil || w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.prev = stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx, stats())
		}
	}
}

// check compares cur with the previous sample. It reports whether requests waited and whether the wait crossed warnAfter.
func (w *poolWatcher) check(ctx context.Context, cur sql.DBStats) (waited, slow bool) {
	waitCount := cur.WaitCount - w.prev.WaitCount
	waitDuration := cur.WaitDuration - w.prev.WaitDuration
	w.prev = cur

	if waitCount <= 0 {
		return false, false
	}

	slow = w.warnAfter > 0 && waitDuration >= w.warnAfter
	level := slog.LevelDebug
	if slow {
		level = slog.LevelWarn
	}

	if w.logger != nil {
		w.logger.LogAttrs(ctx, level, "Postgres pool wait",
			slog.Int64("waitCount", waitCount),
			slog.Duration("waitDuration", waitDuration),
			slog.Duration("avgWait", waitDuration/time.Duration(waitCount)),
			slog.Int("inUse", cur.InUse),
			slog.Int("maxOpen", cur.MaxOpenConnections),
		)
	}

	return true, slow
}
