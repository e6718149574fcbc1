// Package logging provides the debug logger.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at debug level when debug is set,
// and a no-op logger otherwise.
func New(w io.Writer, debug bool) *zap.SugaredLogger {
	if !debug {
		return zap.NewNop().Sugar()
	}

	config := zap.NewDevelopmentEncoderConfig()
	config.TimeKey = ""
	config.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)

	return zap.New(core).Sugar()
}
