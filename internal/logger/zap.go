package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

const serviceName = "smart-thermostat"

// parseLevel accepts any zap level name, case-insensitively. Unknown or empty
// names fall back to debug so a typo in config never silences the process.
func parseLevel(name string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || name == "" {
		return zapcore.DebugLevel
	}
	return lvl
}

func encoderFor(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	if format == FormatJSON {
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func build(w io.Writer, level, format string) *Logger {
	core := zapcore.NewCore(encoderFor(format), zapcore.Lock(zapcore.AddSync(w)), parseLevel(level))
	return &Logger{SugaredLogger: zap.New(core).Sugar().With("service", serviceName)}
}

func newStdoutLogger(level, format string) *Logger {
	return build(os.Stdout, level, format)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}
