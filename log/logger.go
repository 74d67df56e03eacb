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

// Package log provides the structured logger the runtime uses for its
// lifecycle logging. It wraps zap behind an interface so that callers log
// the same way regardless of which concrete backend is configured.
package log

import "os"

// Level specifies the log level.
type Level int

const (
	// DebugLevel indicates Debug log level.
	DebugLevel Level = iota
	// InfoLevel indicates Info log level.
	InfoLevel
	// WarningLevel indicates Warning log level.
	WarningLevel
	// ErrorLevel indicates Error log level.
	ErrorLevel
	// FatalLevel indicates Fatal log level.
	FatalLevel
	// PanicLevel indicates Panic log level.
	PanicLevel
	// InvalidLevel is the level DiscardLogger reports from LogLevel.
	InvalidLevel
)

// Logger represents an active logging object that generates lines of output.
//
// Implementations MUST be safe for concurrent use: the runtime's scheduler
// loop, spawned tasks, and timer callbacks may all log concurrently.
type Logger interface {
	// Debug starts a new message with debug level.
	Debug(...any)
	// Debugf starts a new message with debug level.
	Debugf(string, ...any)
	// Info starts a new message with info level.
	Info(...any)
	// Infof starts a new message with info level.
	Infof(string, ...any)
	// Warn starts a new message with warn level.
	Warn(...any)
	// Warnf starts a new message with warn level.
	Warnf(string, ...any)
	// Error starts a new message with error level.
	Error(...any)
	// Errorf starts a new message with error level.
	Errorf(string, ...any)
	// Fatal starts a new message with fatal level and exits the process.
	Fatal(...any)
	// Fatalf starts a new message with fatal level and exits the process.
	Fatalf(string, ...any)
	// With returns a Logger that includes the given key-value pairs in all
	// subsequent log entries.
	With(keyValues ...any) Logger
	// LogLevel returns the log level currently in effect.
	LogLevel() Level
}

// DefaultLogger is the package-level logger used when a component is not
// given an explicit one.
var DefaultLogger Logger = NewZap(InfoLevel, os.Stdout)

// DiscardLogger discards every log entry. Useful in tests that want quiet
// output without branching on whether a logger was supplied. Its Fatal and
// Fatalf discard the entry too and do not exit the process.
var DiscardLogger Logger = discardLogger{}
