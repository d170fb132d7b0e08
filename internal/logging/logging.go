// internal/logging/logging.go
package logging

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the diagnostic logger: console encoding on w (normally
// stderr), warn level unless debug is requested. Every line carries a
// run_id so interleaved runs can be told apart. The computation's own
// stdout lines never go through here.
func New(debug bool, w io.Writer) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Sugar().With("run_id", uuid.NewString())
}
