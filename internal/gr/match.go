package gr

// matchRecord is one line of a per-file report: either an actual match or
// a context line gathered from the before/after window. text borrows
// directly from the file's read buffer, so no record may escape the
// SearchJob that produced it.
type matchRecord struct {
	lineNumber int
	text       []byte
	truncated  bool
	isContext  bool
}
