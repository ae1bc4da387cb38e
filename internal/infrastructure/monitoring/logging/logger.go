// Package logging defines the structured logging contract for the escalation
// engine.  Components depend on the Logger interface and receive an instance
// through their constructors; go.uber.org/zap stays an implementation detail
// of this package only.
package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ─────────────────────────────────────────────────────────────────────────────
// Field
// ─────────────────────────────────────────────────────────────────────────────

// Field is one typed key-value pair on a log entry.  A concrete struct keeps
// call sites explicit and lets the zap backend pick typed encoders without
// reflection for the common cases.
type Field struct {
	Key   string
	Value interface{}
}

// Typed constructors.  Prefer these over Any so entries stay queryable in the
// aggregation pipeline.
func String(key, val string) Field { return Field{Key: key, Value: val} }

func Int(key string, val int) Field { return Field{Key: key, Value: val} }

func Int64(key string, val int64) Field { return Field{Key: key, Value: val} }

func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }

func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }

func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }

// Err puts an error under the canonical "error" key.  A nil error renders as
// the literal "<nil>" so the field is still present in the entry.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Any is the escape hatch for values without a typed constructor; the backend
// falls back to reflection-based encoding.
func Any(key string, val interface{}) Field { return Field{Key: key, Value: val} }

// ─────────────────────────────────────────────────────────────────────────────
// Logger
// ─────────────────────────────────────────────────────────────────────────────

// Logger is what every engine component logs through.  Debug is for
// per-finding trace output, Info for run milestones, Warn for absorbed
// failures (missing recipients, channel outages), Error for per-item
// failures the run survives.  Fatal exits the process and belongs only in
// startup paths.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	// With returns a child carrying the given fields on every entry.
	With(fields ...Field) Logger

	// Named returns a child whose name extends the parent's with a dot,
	// e.g. "engine" → "engine.dispatch".
	Named(name string) Logger
}

// LogConfig selects level, encoding and sinks for NewLogger.  Zero values get
// production defaults: info level, JSON encoding, stdout/stderr.
type LogConfig struct {
	// Level: "debug", "info", "warn" or "error" (case-insensitive).
	Level string `yaml:"level" json:"level"`

	// Format: "json" for aggregation pipelines, "console" for local work.
	Format string `yaml:"format" json:"format"`

	// OutputPaths and ErrorOutputPaths follow zap's sink syntax; "stdout"
	// and "stderr" are special values.
	OutputPaths      []string `yaml:"output_paths" json:"output_paths"`
	ErrorOutputPaths []string `yaml:"error_output_paths" json:"error_output_paths"`
}

// ─────────────────────────────────────────────────────────────────────────────
// zap backend
// ─────────────────────────────────────────────────────────────────────────────

type zapLogger struct {
	z *zap.Logger
}

// toZapFields maps our Field slice onto zap's typed fields, touching
// reflection only for values outside the fast-path types.
func toZapFields(fields []Field) []zap.Field {
	zs := make([]zap.Field, len(fields))
	for i, f := range fields {
		switch v := f.Value.(type) {
		case string:
			zs[i] = zap.String(f.Key, v)
		case bool:
			zs[i] = zap.Bool(f.Key, v)
		case int:
			zs[i] = zap.Int(f.Key, v)
		case int64:
			zs[i] = zap.Int64(f.Key, v)
		case float64:
			zs[i] = zap.Float64(f.Key, v)
		case time.Duration:
			zs[i] = zap.Duration(f.Key, v)
		case error:
			zs[i] = zap.NamedError(f.Key, v)
		default:
			zs[i] = zap.Any(f.Key, v)
		}
	}
	return zs
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZapFields(fields)...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, toZapFields(fields)...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, toZapFields(fields)...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, toZapFields(fields)...) }
func (l *zapLogger) Fatal(msg string, fields ...Field) { l.z.Fatal(msg, toZapFields(fields)...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{z: l.z.With(toZapFields(fields)...)}
}

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{z: l.z.Named(name)}
}

// parseLevel is forgiving: anything unrecognised runs at info so a config
// typo never silences or floods a deployment.
func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger builds the zap-backed Logger for cfg.  It fails only when zap
// cannot open an output sink.
func NewLogger(cfg LogConfig) (Logger, error) {
	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}
	errOutputs := cfg.ErrorOutputPaths
	if len(errOutputs) == 0 {
		errOutputs = []string{"stderr"}
	}

	console := cfg.Format == "console"
	encCfg := zap.NewProductionEncoderConfig()
	encoding := "json"
	if console {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:      console,
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      outputs,
		ErrorOutputPaths: errOutputs,
	}.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logging: build zap logger: %w", err)
	}
	return &zapLogger{z: z}, nil
}

// NewLoggerFromCore wraps an existing zapcore.Core, mainly so tests can
// observe emitted entries.
func NewLoggerFromCore(core zapcore.Core) Logger {
	return &zapLogger{z: zap.New(core, zap.AddCallerSkip(1))}
}

// ─────────────────────────────────────────────────────────────────────────────
// nop + process default
// ─────────────────────────────────────────────────────────────────────────────

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) Fatal(string, ...Field) {}

func (n nopLogger) With(...Field) Logger { return n }
func (n nopLogger) Named(string) Logger  { return n }

// NewNopLogger returns a Logger that drops everything.  For tests where log
// output is noise.
func NewNopLogger() Logger { return nopLogger{} }

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = nopLogger{}
)

// SetDefault installs the process-wide fallback Logger.  Call once during
// startup, before goroutines that rely on Default.  A nil argument is
// ignored.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the process-wide Logger for the few places that cannot take
// an injected one.  Constructor injection is preferred everywhere else.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

//Personal.AI order the ending
