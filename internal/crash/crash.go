// Package crash captures panics from the simulation as reports that can be
// logged and written to disk once the terminal has been restored.
package crash

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Report describes one recovered panic.
type Report struct {
	Time  time.Time
	Value any
	Stack []byte
	Tick  uint64 // Simulation tick the panic happened on, if known
}

// Capture builds a report for a recovered value. It must be called from
// the deferred function that recovered, so the stack still shows the panic.
func Capture(r any) *Report {
	return &Report{
		Time:  time.Now(),
		Value: r,
		Stack: debug.Stack(),
	}
}

// Recover runs fn and returns a report if it panicked, nil otherwise.
func Recover(fn func()) (rep *Report) {
	defer func() {
		if r := recover(); r != nil {
			rep = Capture(r)
		}
	}()
	fn()
	return nil
}

// Error implements error so a report can travel up as an ordinary error.
func (r *Report) Error() string {
	return fmt.Sprintf("crash: simulation panic: %v", r.Value)
}

// FileName returns CRASH_<unix seconds>.txt for the report time.
func (r *Report) FileName() string {
	return fmt.Sprintf("CRASH_%d.txt", r.Time.Unix())
}

// String formats the full report.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "time: %s\n", r.Time.Format(time.RFC3339))
	fmt.Fprintf(&b, "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if r.Tick > 0 {
		fmt.Fprintf(&b, "tick: %d\n", r.Tick)
	}
	fmt.Fprintf(&b, "panic: %v\n\n", r.Value)
	b.Write(r.Stack)
	return b.String()
}

// Write saves the report into dir and returns the file path.
func (r *Report) Write(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crash: cannot create directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, r.FileName())
	if err := os.WriteFile(path, []byte(r.String()), 0o644); err != nil {
		return "", fmt.Errorf("crash: cannot write report: %w", err)
	}
	return path, nil
}

// Log writes the report to logger at error level, stack included.
func (r *Report) Log(logger *log.Logger) {
	if logger == nil {
		return
	}
	logger.Error("simulation crashed", "panic", r.Value, "tick", r.Tick, "stack", string(r.Stack))
}

// Handle logs the report and, unless disabled, writes it to dir.
// It returns the written path, or "" when nothing was written.
func Handle(r *Report, logger *log.Logger, dir string, write bool) string {
	r.Log(logger)
	if !write {
		return ""
	}
	path, err := r.Write(dir)
	if err != nil {
		if logger != nil {
			logger.Error("cannot save crash report", "err", err)
		}
		return ""
	}
	if logger != nil {
		logger.Info("crash report saved", "path", path)
	}
	return path
}
