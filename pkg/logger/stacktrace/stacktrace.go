// Package stacktrace renders cockroachdb/errors stack traces as readable frames.
package stacktrace

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors/errbase"
)

// StackTrace mirrors [errbase.StackTrace].
type StackTrace errbase.StackTrace

// TraceFrame is a resolved program counter.
type TraceFrame struct {
	Function string
	File     string
	Line     int
}

func (f TraceFrame) String() string {
	return fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
}

// Capture captures the stack of the caller, skipping the given number of frames.
func Capture(skip int) StackTrace {
	var pcs [32]uintptr
	n := runtime.Callers(2+skip, pcs[:])
	frames := make(StackTrace, n)
	for i := range frames {
		frames[i] = errbase.StackFrame(pcs[i])
	}
	return frames
}

// TraceFrames resolves the frames, outermost call first. Consecutive runtime
// frames at the bottom of the stack are dropped.
func (s StackTrace) TraceFrames() []TraceFrame {
	frames := make([]TraceFrame, 0, len(s))
	skipping := true
	for i := len(s) - 1; i >= 0; i-- {
		pc := uintptr(s[i]) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			frames = append(frames, TraceFrame{Function: "unknown"})
			skipping = false
			continue
		}
		name := fn.Name()
		if skipping && strings.HasPrefix(name, "runtime.") {
			continue
		}
		skipping = false
		file, line := fn.FileLine(pc)
		frames = append(frames, TraceFrame{Function: name, File: file, Line: line})
	}
	return frames
}

func (s StackTrace) TraceFramesStrings() []string {
	frames := s.TraceFrames()
	lines := make([]string, len(frames))
	for i, f := range frames {
		lines[i] = f.String()
	}
	return lines
}
