package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

var global *zap.SugaredLogger

func init() {
	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	global = l.Sugar()
}

// WithRequestID кладёт request id в контекст; from извлекает логгер
// с полем request_id, если оно есть.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func from(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if rid, ok := ctx.Value(ctxKey{}).(string); ok && rid != "" {
			return global.With("request_id", rid)
		}
	}
	return global
}

func Info(ctx context.Context, args ...interface{}) {
	from(ctx).Info(args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, args ...interface{}) {
	from(ctx).Error(args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, args ...interface{}) {
	from(ctx).Fatal(args...)
}

func Sync() {
	_ = global.Sync()
}
