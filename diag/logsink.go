// Copyright (c) 2024 The morloc project contributors

package diag

import (
	logpkg "github.com/echa/log"
)

// logSink adapts an echa/log.Logger into a Sink, the same seam the
// teacher package exposes via its package-level UseLogger/DisableLog
// (micheline.UseLogger). Callers that already have a project-wide
// echa/log.Logger can route linking-pass diagnostics into it directly
// instead of wiring a bespoke Sink implementation.
type logSink struct {
	logger logpkg.Logger
}

// NewLogSink adapts logger into a Sink. Every diagnostic is emitted
// at Warn level with the Kind prefixed, since §7 classifies all of
// these as advisory rather than fatal.
func NewLogSink(logger logpkg.Logger) Sink {
	return logSink{logger: logger}
}

func (s logSink) Warnf(kind Kind, format string, args ...any) {
	s.logger.Warnf("%s: "+format, append([]any{kind}, args...)...)
}
