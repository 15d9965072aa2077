// Package logging builds the structured logger the engine and CLI use to
// report factorization events. It never participates in solve
// correctness - it only observes.
package logging

import (
	"os"

	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a leveled, structured logger. When enabled is true it logs at
// debug level and above using a logfmt encoding; otherwise it only emits
// at error level and above. This mirrors the single
// "BASIS_FACTORIZATION_LOGGING" toggle of the source configuration.
func New(enabled bool) *zap.SugaredLogger {
	level := zapcore.ErrorLevel
	if enabled {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zaplogfmt.NewEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(os.Stderr)),
		level,
	)

	return zap.New(core, zap.AddCaller()).Sugar().Named("basisfact")
}

// Nop returns a logger that discards everything, for tests and for
// engines constructed without an explicit logger.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
