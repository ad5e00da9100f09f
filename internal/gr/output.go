package gr

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/fatih/color"
)

// Formatter serializes all stdout/stderr emission behind one process-wide
// lock, so that no two file blocks (or a file block and a stderr line) ever
// interleave on the terminal.
type Formatter struct {
	mu  sync.Mutex
	tty bool

	anyOutput bool

	bold *color.Color
}

// NewFormatter returns a formatter that applies bold styling only when tty
// is true (stdout is a terminal).
func NewFormatter(tty bool) *Formatter {
	f := &Formatter{tty: tty}
	f.bold = color.New(color.Bold)
	f.bold.EnableColor()
	if !tty {
		f.bold.DisableColor()
	}
	return f
}

func (f *Formatter) boldf(format string, args ...interface{}) string {
	return f.bold.Sprintf(format, args...)
}

// EmitStderr writes one diagnostic line to stderr under the shared lock, so
// it cannot land in the middle of a file block.
func (f *Formatter) EmitStderr(format string, args ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// EmitFilesWithMatches prints just path, as used by -l.
func (f *Formatter) EmitFilesWithMatches(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.separateIfNeeded()
	fmt.Println(path)
}

// EmitCount prints the per-file match count, as used by -c.
func (f *Formatter) EmitCount(path string, count int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.separateIfNeeded()
	fmt.Printf("%s:%d\n", path, count)
}

func (f *Formatter) separateIfNeeded() {
	if f.anyOutput {
		fmt.Println()
	}
	f.anyOutput = true
}

// EmitFileBlock prints a full per-file report: the header, the matched and
// context records in line-number order with "--" separators between
// non-adjacent runs when showSeparators is set, and (when
// multilineNoLineMatch is set) the fixed
// notice for a multiline match that never pinpointed a line.
func (f *Formatter) EmitFileBlock(path string, records []matchRecord, multilineNoLineMatch, showSeparators bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.separateIfNeeded()

	if f.tty {
		fmt.Println(f.boldf("%s", path))
	} else {
		fmt.Println(path)
	}

	if multilineNoLineMatch {
		fmt.Println("(file matched, but no lines matched)")
		return
	}

	width := 0
	for _, r := range records {
		if w := len(strconv.Itoa(r.lineNumber)); w > width {
			width = w
		}
	}

	prevLine := -1
	for _, r := range records {
		if showSeparators && prevLine >= 0 && r.lineNumber-prevLine > 1 {
			fmt.Println("--")
		}
		prevLine = r.lineNumber

		sep := ":"
		if r.isContext {
			sep = "-"
		}
		numStr := fmt.Sprintf("%*d", width, r.lineNumber)
		text := string(r.text)
		if r.truncated {
			if f.tty {
				text += f.boldf("…")
			} else {
				text += "…"
			}
		}
		if f.tty && !r.isContext {
			fmt.Printf("%s%s%s\n", f.boldf("%s", numStr), sep, text)
		} else {
			fmt.Printf("%s%s%s\n", numStr, sep, text)
		}
	}
}
