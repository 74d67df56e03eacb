// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap is a Logger backed by go.uber.org/zap.
type Zap struct {
	level Level
	z     *zap.SugaredLogger
}

// NewZap creates an instance of Zap logging at the given level, writing to
// every writer passed in. When no writer is given it defaults to os.Stderr.
func NewZap(level Level, writers ...io.Writer) *Zap {
	if len(writers) == 0 {
		writers = []io.Writer{os.Stderr}
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(cfg)

	syncers := make([]zapcore.WriteSyncer, len(writers))
	for i, w := range writers {
		syncers[i] = zapcore.AddSync(w)
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), toZapLevel(level))
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &Zap{level: level, z: logger.Sugar()}
}

func (l *Zap) Debug(v ...any)               { l.z.Debug(v...) }
func (l *Zap) Debugf(format string, v ...any) { l.z.Debugf(format, v...) }
func (l *Zap) Info(v ...any)                { l.z.Info(v...) }
func (l *Zap) Infof(format string, v ...any)  { l.z.Infof(format, v...) }
func (l *Zap) Warn(v ...any)                { l.z.Warn(v...) }
func (l *Zap) Warnf(format string, v ...any)  { l.z.Warnf(format, v...) }
func (l *Zap) Error(v ...any)               { l.z.Error(v...) }
func (l *Zap) Errorf(format string, v ...any) { l.z.Errorf(format, v...) }
func (l *Zap) Fatal(v ...any)               { l.z.Fatal(v...) }
func (l *Zap) Fatalf(format string, v ...any) { l.z.Fatalf(format, v...) }

// With returns a logger that tags every subsequent entry with the given
// key-value pairs.
func (l *Zap) With(keyValues ...any) Logger {
	if len(keyValues) == 0 {
		return l
	}
	return &Zap{level: l.level, z: l.z.With(keyValues...)}
}

// LogLevel returns the configured log level.
func (l *Zap) LogLevel() Level { return l.level }

// Flush flushes any buffered log entries. Applications should call this
// before exiting.
func (l *Zap) Flush() error { return l.z.Sync() }

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarningLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	case PanicLevel:
		return zapcore.PanicLevel
	default:
		return zapcore.InfoLevel
	}
}

type discardLogger struct{}

func (discardLogger) Debug(...any)                {}
func (discardLogger) Debugf(string, ...any)        {}
func (discardLogger) Info(...any)                  {}
func (discardLogger) Infof(string, ...any)         {}
func (discardLogger) Warn(...any)                  {}
func (discardLogger) Warnf(string, ...any)         {}
func (discardLogger) Error(...any)                 {}
func (discardLogger) Errorf(string, ...any)        {}
func (discardLogger) Fatal(...any)                 {}
func (discardLogger) Fatalf(string, ...any)        {}
func (discardLogger) With(...any) Logger           { return discardLogger{} }
func (discardLogger) LogLevel() Level              { return InvalidLevel }
