package gr

import (
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// mmapThreshold is the file size above which readWholeFile prefers mmap
// over a buffered read.
const mmapThreshold = 1 << 20 // 1 MiB

// readWholeFile returns the entire contents of f (already opened for
// reading) as a byte slice, along with a closer to release any mmap backing
// it. Small files and any filesystem where mmap fails (pipes, some network
// mounts) fall back to an ordinary buffered read.
func readWholeFile(f *os.File, size int64) (data []byte, closer func() error, err error) {
	if size >= mmapThreshold {
		m, mErr := mmap.Map(f, mmap.RDONLY, 0)
		if mErr == nil {
			return []byte(m), func() error { return m.Unmap() }, nil
		}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, nil, err
	}
	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	return buf, func() error { return nil }, nil
}
