package gr

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// AddPathsJob stats a path and either enqueues a SearchJob (regular file)
// or enumerates a directory into further AddPathsJobs. requested marks a
// path named directly on the command line, which is exempt from the
// dotfile rule.
type AddPathsJob struct {
	Path      string
	Requested bool
	Cached    fs.FileInfo // optional: avoids a redundant Lstat when set
}

func isDotfile(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}

// Run implements Job.
func (j *AddPathsJob) Run(state *GlobalState) {
	if !j.Requested && isDotfile(j.Path) {
		return
	}

	info := j.Cached
	if info == nil {
		fi, err := os.Lstat(j.Path)
		if err != nil {
			if os.IsNotExist(err) {
				state.Out.EmitStderr("Skipping %s: nonexistent", prettyDisplay(j.Path))
			} else {
				state.Out.EmitStderr("Skipping %s: error: %v", prettyDisplay(j.Path), err)
			}
			state.Tracer.Debugf("stat failed for %s: %v", j.Path, err)
			return
		}
		info = fi
	}

	switch {
	case info.Mode().IsRegular():
		j.enqueueSearch(state)
	case info.IsDir():
		j.enumerate(state)
	default:
		// Symlink, device, socket, etc: silently skipped. Symlinks are
		// never followed, matching directories included.
		state.Tracer.Debugf("skipping non-regular, non-directory entry %s", j.Path)
	}
}

func (j *AddPathsJob) enqueueSearch(state *GlobalState) {
	f, err := os.Open(j.Path)
	if err != nil {
		if os.IsPermission(err) {
			state.Out.EmitStderr("Skipping %s: Permission denied", prettyDisplay(j.Path))
		} else {
			state.Out.EmitStderr("Skipping %s: error: %v", prettyDisplay(j.Path), err)
		}
		return
	}
	f.Close()
	state.Queue.Push(&SearchJob{Path: j.Path})
}

func (j *AddPathsJob) enumerate(state *GlobalState) {
	entries, err := os.ReadDir(j.Path)
	if err != nil {
		if os.IsPermission(err) {
			state.Out.EmitStderr("Skipping %s: Permission denied", prettyDisplay(j.Path))
		} else {
			state.Out.EmitStderr("Skipping %s: error: %v", prettyDisplay(j.Path), err)
		}
		return
	}
	for _, e := range entries {
		child := filepath.Join(j.Path, e.Name())
		var cached fs.FileInfo
		if fi, err := e.Info(); err == nil {
			cached = fi
		}
		state.Queue.Push(&AddPathsJob{Path: child, Requested: false, Cached: cached})
	}
}

func prettyDisplay(p string) string {
	return prettyPath(p)
}
