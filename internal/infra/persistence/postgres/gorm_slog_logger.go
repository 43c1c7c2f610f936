package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger sends GORM output to slog. Statements run under a request context
// are logged through the request-scoped logger so they carry the request id.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:        baseLogger,
		level:         logger.Warn,
		slowThreshold: defaultGormSlowThreshold,
	}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Env.Log.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Env.Log.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, "GORM info", msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, "GORM warn", msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, "GORM error", msg, args...)
}

func (l *gormSlogLogger) log(ctx context.Context, threshold logger.LogLevel, level slog.Level, title, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, title, slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.from(ctx).LogAttrs(ctx, slog.LevelError, "GORM query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
		l.from(ctx).LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)
	case l.level >= logger.Info:
		l.from(ctx).LogAttrs(ctx, slog.LevelInfo, "GORM query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.LoggerFrom(ctx, l.logger)
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
