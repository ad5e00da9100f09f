package gr

import (
	"bytes"
	"os"
)

// SearchJob reads one regular file, rejects it if it looks binary, matches
// the compiled regex against it, and emits a per-file report under the
// formatter's output lock.
type SearchJob struct {
	Path string
}

const binaryPrefixLen = 512

// Run implements Job.
func (j *SearchJob) Run(state *GlobalState) {
	if state.Progress != nil {
		defer state.Progress.Add(1)
	}

	f, err := os.Open(j.Path)
	if err != nil {
		state.Out.EmitStderr("Error on %s: %v", prettyDisplay(j.Path), err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		state.Out.EmitStderr("Error on %s: %v", prettyDisplay(j.Path), err)
		return
	}

	data, closer, err := readWholeFile(f, info.Size())
	if err != nil {
		state.Out.EmitStderr("Error on %s: %v", prettyDisplay(j.Path), err)
		return
	}
	defer closer()

	prefixLen := binaryPrefixLen
	if prefixLen > len(data) {
		prefixLen = len(data)
	}
	if isBinary(data[:prefixLen]) {
		state.Tracer.Debugf("skipping binary file %s", j.Path)
		return
	}

	if state.Dedupe != nil && state.Dedupe.seenBefore(data) {
		state.Tracer.Debugf("skipping already-searched content %s", j.Path)
		return
	}

	re := state.Regex.Get()
	opts := state.Opts
	path := prettyDisplay(j.Path)

	if opts.Multiline {
		if !re.Match(data) {
			return
		}
	}

	if opts.FilesWithMatches {
		if j.anyMatch(state, data) {
			state.SetMatched()
			state.Out.EmitFilesWithMatches(path)
		}
		return
	}

	records, matchedAnyLine := j.collect(state, data)

	if opts.CountOnly {
		count := 0
		for _, r := range records {
			if !r.isContext {
				count++
			}
		}
		if count > 0 {
			state.SetMatched()
			state.Out.EmitCount(path, count)
		}
		return
	}

	if len(records) == 0 && !opts.Multiline {
		return
	}
	showSeparators := opts.BeforeContext > 0 || opts.AfterContext > 0
	if opts.Multiline && !matchedAnyLine {
		state.SetMatched()
		state.Out.EmitFileBlock(path, nil, true, showSeparators)
		return
	}
	state.SetMatched()
	state.Out.EmitFileBlock(path, records, false, showSeparators)
}

// anyMatch reports whether data contains at least one matching line (or, in
// multiline mode, has already been confirmed to match as a whole).
func (j *SearchJob) anyMatch(state *GlobalState, data []byte) bool {
	if state.Opts.Multiline {
		return true
	}
	re := state.Regex.Get()
	for _, line := range splitLines(data) {
		span, _ := truncateSpan(line, state.Opts.LongLines)
		if re.Match(span) {
			return true
		}
	}
	return false
}

// collect walks data line by line, building the match/context record list
// per the before/after context window, and reports whether any individual
// line matched (relevant only for the multiline "no lines matched" case).
func (j *SearchJob) collect(state *GlobalState, data []byte) ([]matchRecord, bool) {
	re := state.Regex.Get()
	opts := state.Opts

	before := NewBoundedRing[matchRecord](opts.BeforeContext)
	afterBudget := opts.AfterContext
	// Starts exhausted: after-context only opens up once a match has been
	// seen, so lines before the first match fall through to the before-
	// context ring instead.
	afterRemaining := afterBudget

	var records []matchRecord
	matchedAnyLine := false

	lineNo := 0
	for _, line := range splitLines(data) {
		lineNo++
		span, truncated := truncateSpan(line, opts.LongLines)

		if re.Match(span) {
			matchedAnyLine = true
			for _, c := range before.Items() {
				records = append(records, c)
			}
			before.Clear()
			records = append(records, matchRecord{
				lineNumber: lineNo,
				text:       span,
				truncated:  truncated,
				isContext:  false,
			})
			afterRemaining = 0
			continue
		}

		if afterRemaining < afterBudget {
			records = append(records, matchRecord{
				lineNumber: lineNo,
				text:       span,
				truncated:  truncated,
				isContext:  true,
			})
			afterRemaining++
		} else if opts.BeforeContext > 0 {
			before.Push(matchRecord{
				lineNumber: lineNo,
				text:       span,
				truncated:  truncated,
				isContext:  true,
			})
		}
	}

	return records, matchedAnyLine
}

// splitLines splits data on '\n' without requiring a trailing terminator on
// the final line, and without including the delimiter in any line.
func splitLines(data []byte) [][]byte {
	var lines [][]byte
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, data)
			break
		}
		lines = append(lines, data[:i])
		data = data[i+1:]
	}
	return lines
}
