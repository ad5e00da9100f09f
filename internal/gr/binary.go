package gr

import "bytes"

var pdfMagic = []byte("%PDF-")
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// isBinary classifies prefix (the first min(512, filesize) bytes of a file)
// as binary if it contains a NUL byte or begins with a PDF magic number. A
// UTF-8 byte-order mark is explicitly exempted even though it shares no
// further structure with text.
func isBinary(prefix []byte) bool {
	if bytes.HasPrefix(prefix, utf8BOM) {
		return false
	}
	if bytes.HasPrefix(prefix, pdfMagic) {
		return true
	}
	return bytes.IndexByte(prefix, 0) >= 0
}

const maxLineBytes = 2048

// truncateSpan returns the prefix of line to keep given longLines mode and
// the ≈2KiB cap, along with whether the result was actually shortened. When
// a cut falls inside a multi-byte UTF-8 codepoint, the scan backs up to the
// codepoint boundary rather than splitting it.
func truncateSpan(line []byte, longLines bool) (kept []byte, truncated bool) {
	if longLines || len(line) <= maxLineBytes {
		return line, false
	}
	cut := maxLineBytes
	span := line[:cut]

	// Walk backward from the last byte over up to 4 continuation bytes,
	// stopping at the first byte that is not one. A valid UTF-8 codepoint
	// has at most 3 continuation bytes, so the 4th check only fires on
	// malformed input, where it bounds the scan instead of running
	// unboundedly backward.
	d := 1
	i := cut - d
	for d <= 4 && span[i]&0xC0 == 0x80 {
		d++
		i = cut - d
	}
	lead := span[i]
	var want int
	switch {
	case lead&0x80 == 0x00:
		want = 1
	case lead&0xE0 == 0xC0:
		want = 2
	case lead&0xF0 == 0xE0:
		want = 3
	case lead&0xF8 == 0xF0:
		want = 4
	default:
		want = -1
	}
	if want == d {
		return span, true
	}
	// Mid-codepoint cut: drop the partial trailing bytes starting at lead.
	return span[:i], true
}

// prettyPath strips a leading "./" the way the original tool's pretty_path
// does for paths built by joining onto ".", without calling filepath.Rel
// (which would also resolve symlinks).
func prettyPath(p string) string {
	if p == "." {
		return p
	}
	for len(p) >= 2 && p[0] == '.' && p[1] == '/' {
		p = p[2:]
	}
	return p
}
