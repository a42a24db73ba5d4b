package report

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"propcheck/pkg/models"
)

// marksPerLine wraps the progress marks so long runs stay readable
const marksPerLine = 64

// ConsoleReporter renders the engine's progress signals as a stream of
// marks: '.' for a pass, 'x' for a discard, '!' for a failure. On a
// terminal the marks stream live; otherwise they are suppressed unless
// verbose mode asks for them, so piped output stays clean.
type ConsoleReporter struct {
	w       io.Writer
	verbose bool
	marks   bool
	count   int
}

// NewConsoleReporter creates a reporter writing to w
func NewConsoleReporter(w io.Writer, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{
		w:       w,
		verbose: verbose,
		marks:   verbose || isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Trial renders one progress mark per trial, in trial order
func (r *ConsoleReporter) Trial(kind models.OutcomeKind) {
	if !r.marks {
		return
	}
	switch kind {
	case models.Passed:
		fmt.Fprint(r.w, ".")
	case models.Discarded:
		fmt.Fprint(r.w, "x")
	default:
		fmt.Fprint(r.w, "!")
	}
	r.count++
	if r.count%marksPerLine == 0 {
		fmt.Fprintln(r.w)
	}
}

// Falsified reports the original counterexample before shrinking starts
func (r *ConsoleReporter) Falsified(values models.Bindings, panicValue interface{}) {
	r.breakLine()
	if panicValue != nil {
		fmt.Fprintf(r.w, "Predicate panicked: %v\n", panicValue)
	}
	fmt.Fprintf(r.w, "Failed with: %s\n", values)
}

// ShrinkStep reports each accepted shrink in verbose mode
func (r *ConsoleReporter) ShrinkStep(values models.Bindings) {
	if r.verbose {
		fmt.Fprintf(r.w, "  shrink -> %s\n", values)
	}
}

// Shrunk reports the minimal counterexample once shrinking completes
func (r *ConsoleReporter) Shrunk(values models.Bindings, steps int) {
	fmt.Fprintf(r.w, "Shrunk (%d steps): %s\n", steps, values)
}

// Finish terminates a partial line of marks
func (r *ConsoleReporter) Finish() {
	r.breakLine()
}

func (r *ConsoleReporter) breakLine() {
	if r.marks && r.count%marksPerLine != 0 {
		fmt.Fprintln(r.w)
	}
	r.count = 0
}
