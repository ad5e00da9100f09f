package gr

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// newProgressBar returns an indeterminate stderr progress indicator for the
// walk, or nil when it would only add noise: -l/-c already produce a terse
// report, and a non-terminal stderr (e.g. redirected to a file or piped)
// should get a clean stream with no bar artifacts.
func newProgressBar(terseReport bool) *progressbar.ProgressBar {
	if terseReport || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}
	return progressbar.Default(-1, "Searching")
}
