// Package service wires the core analyzer and internal/disasm packages
// into the operations a CLI or MCP handler actually calls: batch
// structuring of every function in a binary (or every binary in a
// directory), progress reporting, and file discovery. Grounded on
// github.com/ludo-technologies/pyscn's service package.
package service

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davidepi/bincc/domain"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressManager implements domain.ProgressManager using
// schollz/progressbar/v3, grounded on
// service/progress_manager.go's ProgressManagerImpl. In a non-interactive
// environment (CI, piped output) it degrades to plain line-based logging
// so the bar's carriage-return redraws don't pollute captured logs.
type ProgressManager struct {
	mu          sync.Mutex
	writer      io.Writer
	bar         *progressbar.ProgressBar
	total       int
	done        int
	interactive bool
}

// NewProgressManager returns a manager writing to stderr (stdout is
// reserved for the Graphviz/JSON envelope, spec.md 6).
func NewProgressManager() *ProgressManager {
	return &ProgressManager{
		writer:      os.Stderr,
		interactive: isInteractiveEnvironment(),
	}
}

// Initialize prepares the bar for a batch of total functions/binaries.
func (pm *ProgressManager) Initialize(total int) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.total = total
	pm.done = 0
	if pm.interactive {
		pm.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(pm.writer),
			progressbar.OptionSetDescription("structuring"),
			progressbar.OptionShowCount(),
		)
	}
}

// StartTask is a no-op marker hook kept for interface symmetry with the
// teacher's per-task lifecycle; the bar only advances on completion.
func (pm *ProgressManager) StartTask(name string) {}

// CompleteTask advances the bar (or logs a line, non-interactively) for
// one finished function.
func (pm *ProgressManager) CompleteTask(name string, success bool) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.done++
	if pm.interactive && pm.bar != nil {
		_ = pm.bar.Add(1)
		return
	}
	status := "ok"
	if !success {
		status = "irreducible"
	}
	fmt.Fprintf(pm.writer, "[%d/%d] %s: %s\n", pm.done, pm.total, name, status)
}

// Finish closes out the bar.
func (pm *ProgressManager) Finish() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if pm.bar != nil {
		_ = pm.bar.Finish()
	}
}

// isInteractiveEnvironment reports whether stderr is an interactive
// terminal and CI is not set, grounded on
// service/progress_manager.go's isInteractiveEnvironment, using
// golang.org/x/term's IsTerminal instead of a raw os.ModeCharDevice check.
func isInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

var _ domain.ProgressManager = (*ProgressManager)(nil)
