package gr

import (
	"fmt"
	"os"
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/mrdomino/gr/internal/cli"
	"github.com/schollz/progressbar/v3"
)

// Version is the program's reported version, bumped from the original
// tool's 0.2.0 for the worker-pool rewrite and the mmap/hash additions.
const Version = "0.3.0"

// SyncedRegex compiles its pattern at most once, regardless of how many
// goroutines call Get concurrently. A compile failure is fatal: the first
// caller to observe it prints a diagnostic and exits the process, since
// there is no way to recover once the CLI has already accepted the
// pattern and workers are mid-flight.
type SyncedRegex struct {
	pattern string
	literal bool
	multi   bool
	once    sync.Once
	re      *regexp.Regexp
}

// NewSyncedRegex builds an uncompiled holder for pattern.
func NewSyncedRegex(pattern string, literal, multiline bool) *SyncedRegex {
	return &SyncedRegex{pattern: pattern, literal: literal, multi: multiline}
}

// Get returns the compiled regex, compiling it on the first call.
func (s *SyncedRegex) Get() *regexp.Regexp {
	s.once.Do(func() {
		pat := s.pattern
		if s.literal {
			pat = regexp.QuoteMeta(pat)
		}
		if s.multi {
			pat = "(?s)" + pat
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to compile regexp /%s/: %v\n", s.pattern, err)
			os.Exit(2)
		}
		s.re = re
	})
	return s.re
}

// GlobalState is the process-wide, immutable-after-init bundle shared by
// every job: parsed options, the lazily compiled regex, the job queue, the
// "matched at least one file" flag, the output formatter, and the optional
// trace logger and content-dedupe tracker.
type GlobalState struct {
	Opts     *cli.Options
	Regex    *SyncedRegex
	Queue    *WorkQueue
	Out      *Formatter
	Tracer   *Tracer
	Dedupe   *dedupeTracker
	Progress *progressbar.ProgressBar

	matchedAny atomic.Bool
}

// NewGlobalState constructs the shared state for one run.
func NewGlobalState(opts *cli.Options) *GlobalState {
	gs := &GlobalState{
		Opts:  opts,
		Regex: NewSyncedRegex(opts.Pattern, opts.Literal, opts.Multiline),
		Queue: NewWorkQueue(),
	}
	gs.Out = NewFormatter(opts.StdoutIsTTY)
	gs.Tracer = newTracer()
	if opts.DedupeIdentical {
		gs.Dedupe = newDedupeTracker()
	}
	gs.Progress = newProgressBar(opts.FilesWithMatches || opts.CountOnly)
	return gs
}

// SetMatched records that at least one file produced output.
func (gs *GlobalState) SetMatched() { gs.matchedAny.Store(true) }

// MatchedAny reports whether any file has matched so far.
func (gs *GlobalState) MatchedAny() bool { return gs.matchedAny.Load() }
