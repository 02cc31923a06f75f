// Package logger holds the process-wide structured logger built on Zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init configures the global logger once for the given environment: JSON
// output in production, console output everywhere else. Later calls are
// no-ops.
func Init(env string) {
	once.Do(func() {
		build := zap.NewDevelopment
		if env == "production" {
			build = zap.NewProduction
		}

		base, err := build()
		if err != nil {
			// Never fail startup over logging.
			base = zap.NewNop()
		}
		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development logger
// if Init was never called.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes buffered entries. Call before process exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
