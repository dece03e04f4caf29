package diagnostics

import (
	"fmt"
	"io"
	"sync"
)

// Bag collects diagnostics produced while processing one expression.
// Safe for concurrent Add calls.
type Bag struct {
	mu          sync.Mutex
	diagnostics []*Diagnostic
	errorCount  int
	warnCount   int
}

// NewBag creates an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends a diagnostic to the bag.
func (b *Bag) Add(diag *Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diagnostics = append(b.diagnostics, diag)
	switch diag.Severity {
	case Error:
		b.errorCount++
	case Warning:
		b.warnCount++
	}
}

// HasErrors returns true if there are any error diagnostics.
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount > 0
}

// ErrorCount returns the number of errors.
func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount
}

// WarningCount returns the number of warnings.
func (b *Bag) WarningCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.warnCount
}

// Diagnostics returns the collected diagnostics in insertion order.
func (b *Bag) Diagnostics() []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Diagnostic, len(b.diagnostics))
	copy(out, b.diagnostics)
	return out
}

// EmitAll renders every diagnostic against the expression it was reported
// for, followed by a summary line when anything was found.
func (b *Bag) EmitAll(e *Emitter, expression string) {
	b.mu.Lock()
	diagnostics := make([]*Diagnostic, len(b.diagnostics))
	copy(diagnostics, b.diagnostics)
	errorCount := b.errorCount
	warnCount := b.warnCount
	b.mu.Unlock()

	for _, diag := range diagnostics {
		e.Emit(expression, diag)
	}

	if errorCount > 0 || warnCount > 0 {
		printSummary(e.out, errorCount, warnCount)
	}
}

// Clear removes all diagnostics.
func (b *Bag) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.diagnostics = nil
	b.errorCount = 0
	b.warnCount = 0
}

func printSummary(w io.Writer, errorCount, warnCount int) {
	if errorCount > 0 {
		fmt.Fprintf(w, "tokenization failed with %d error(s)", errorCount)
		if warnCount > 0 {
			fmt.Fprintf(w, " and %d warning(s)", warnCount)
		}
		fmt.Fprintln(w)
	} else if warnCount > 0 {
		fmt.Fprintf(w, "tokenized with %d warning(s)\n", warnCount)
	}
}
