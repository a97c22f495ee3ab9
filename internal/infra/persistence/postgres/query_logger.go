package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"nutriledger/config"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Table labels reported for ledger statements.
const (
	tableRegisters  = "registers"
	tableGoals      = "goals"
	tableMigrations = "schema_migrations"
	tableOther      = "other"
)

var knownTables = []string{tableRegisters, tableGoals, tableMigrations}

// QueryObserver receives one sample per executed statement.
type QueryObserver interface {
	ObserveQuery(table, operation string, elapsed time.Duration, failed bool)
}

// statement is the table and verb a SQL string touches.
type statement struct {
	table     string
	operation string
}

func classifyStatement(sql string) statement {
	trimmed := strings.TrimSpace(sql)
	verb, _, _ := strings.Cut(trimmed, " ")

	st := statement{table: tableOther, operation: strings.ToLower(verb)}
	switch st.operation {
	case "select", "insert", "update", "delete":
	default:
		st.operation = "other"
	}

	for _, table := range knownTables {
		if strings.Contains(trimmed, `"`+table+`"`) {
			st.table = table

			break
		}
	}

	return st
}

// queryLogger routes gorm output to the request logger and feeds the query observer.
type queryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	observer      QueryObserver
}

func newQueryLogger(base *slog.Logger, cfg *config.Config, observer QueryObserver) *queryLogger {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	slow := time.Duration(0)
	if cfg != nil && cfg.Database != nil {
		slow = cfg.Database.SlowQueryThreshold
	}

	return &queryLogger{
		logger:        base,
		level:         level,
		slowThreshold: slow,
		observer:      observer,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min {
		return
	}
	l.loggerFor(ctx).LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace runs after every statement. A missing row is a normal lookup outcome, not a failure.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := sqlAndRowsFn()
	st := classifyStatement(sql)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	if l.observer != nil {
		l.observer.ObserveQuery(st.table, st.operation, elapsed, failed)
	}

	if l.level == logger.Silent {
		return
	}

	attrs := []slog.Attr{
		slog.String("table", st.table),
		slog.String("operation", st.operation),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
	}
	log := l.loggerFor(ctx)

	switch {
	case failed && l.level >= logger.Error:
		attrs = append(attrs, slog.String("sql", sql), slog.String("error", err.Error()))
		log.LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs = append(attrs, slog.String("sql", sql), slog.Duration("slowThreshold", l.slowThreshold))
		log.LogAttrs(ctx, slog.LevelWarn, "Slow query", attrs...)
	case err == nil && st.table == tableRegisters && st.operation == "update" && rows == 0 && l.level >= logger.Warn:
		// Transitions are guarded by the expected status, so this is a lost race.
		log.LogAttrs(ctx, slog.LevelInfo, "Register update matched no rows", attrs...)
	case l.level >= logger.Info:
		attrs = append(attrs, slog.String("sql", sql))
		log.LogAttrs(ctx, slog.LevelDebug, "Query", attrs...)
	}
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	base := l.logger
	if base == nil {
		base = slog.Default()
	}
	if ctx == nil {
		return base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, base)
}
