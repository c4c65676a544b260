// package logger provides the shared structured logger for the engine.
// Components log through the package-level Log so applications can swap or
// silence engine output in one place.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the engine-wide logger. It defaults to a no-op logger so library use
// without Init stays silent; Init replaces it with a console logger.
var Log = zap.NewNop()

// Init configures Log with a console encoder writing to stderr.
// Reference: https://pkg.go.dev/go.uber.org/zap
//
// Parameters:
//   - debug: when true, enables debug-level output and caller annotations
//
// Returns:
//   - error: error if the logger could not be built
func Init(debug bool) error {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config.DisableCaller = true
		config.DisableStacktrace = true
	}

	built, err := config.Build()
	if err != nil {
		return err
	}
	Log = built
	return nil
}

// Sync flushes any buffered log entries. Applications should defer this after Init.
//
// Returns:
//   - error: error from the underlying sink flush
func Sync() error {
	return Log.Sync()
}
