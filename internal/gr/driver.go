package gr

import (
	"runtime"

	"github.com/mrdomino/gr/internal/cli"
)

// warmRegexJob forces the compiled-once regex into existence early, so a
// compile error surfaces promptly rather than on whichever worker happens
// to touch the first matching file.
type warmRegexJob struct{}

func (warmRegexJob) Run(state *GlobalState) {
	state.Regex.Get()
}

// Run drives one end-to-end invocation: seed the queue with one
// AddPathsJob per user path (or "." if none) followed by the regex
// warm-up job, spawn hardware_concurrency workers, join them, and report
// the exit code implied by whether any file matched.
func Run(opts *cli.Options) int {
	state := NewGlobalState(opts)
	defer state.Tracer.Close()

	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		state.Queue.Push(&AddPathsJob{Path: p, Requested: true})
	}
	state.Queue.Push(warmRegexJob{})

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	done := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			runWorker(state)
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}
	if state.Progress != nil {
		state.Progress.Finish()
	}

	if state.MatchedAny() {
		return 0
	}
	return 1
}

// runWorker drains the queue, recovering any panic that escapes a job so it
// can be logged before the worker dies loudly by re-panicking. Expected
// failure modes (I/O, permission, enumeration errors) never reach here:
// jobs handle those themselves with ordinary error returns.
func runWorker(state *GlobalState) {
	defer func() {
		if r := recover(); r != nil {
			state.Tracer.Errorf("worker aborting on unexpected failure: %v", r)
			panic(r)
		}
	}()
	state.Queue.RunUntilDrained(state)
}
