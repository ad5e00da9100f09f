package cli

import (
	"fmt"
	"io"
)

// Usage writes the usage block to w. Callers choose the exit code: -h/--help
// and argument errors both print this, but exit 2 either way.
func Usage(w io.Writer, progName string) {
	fmt.Fprintf(w, "usage: %s [options] <pattern> [path ...]\n", progName)
	fmt.Fprint(w, `
Recursively search for pattern in path.

Options:
  -A --after-context <num> Show num lines of context after each match
  -B --before-context <num>
                           Show num lines of context before each match
  -C --context <num>       Show num lines before and after each match
  -c --count               Show count of matches only
  -l --files-with-matches  Only print filenames that contain matches
                           (don't print the matching lines)
     --long-lines          Print long lines (default truncates to ~2k)
     --multiline           Match the whole file, not line by line
     --dedupe-identical    Skip files whose contents were already searched
  -Q --literal             Match pattern as literal, not regexp
  -h --help                Print this usage message and exit.
     --version             Print the program version.
`)
}
