package gr

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// traceLogEnv names the environment variable that, when set to a writable
// file path, enables the diagnostic trace log. Unset, Tracer is a no-op.
const traceLogEnv = "GR_DEBUG_LOG"

// Tracer is an async, channel-buffered diagnostic log used by the walker
// and search jobs to record skip/error decisions that would otherwise be
// invisible without cluttering stderr. It is disabled by default; set
// GR_DEBUG_LOG to a file path to enable it.
type Tracer struct {
	disabled bool
	buffer   chan string
	file     *os.File
	writer   *bufio.Writer
	done     chan struct{}
}

func newTracer() *Tracer {
	path := os.Getenv(traceLogEnv)
	if path == "" {
		return &Tracer{disabled: true}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gr: could not open %s: %v\n", traceLogEnv, err)
		return &Tracer{disabled: true}
	}
	t := &Tracer{
		buffer: make(chan string, 1000),
		file:   f,
		writer: bufio.NewWriterSize(f, 32*1024),
		done:   make(chan struct{}),
	}
	go t.run()
	fmt.Fprintf(t.writer, "\n=== trace started at %s ===\n", time.Now().Format(time.RFC3339))
	t.writer.Flush()
	return t
}

func (t *Tracer) run() {
	defer close(t.done)
	for msg := range t.buffer {
		t.writer.WriteString(msg)
		if len(t.buffer) == 0 {
			t.writer.Flush()
		}
	}
}

func (t *Tracer) log(level, format string, args ...interface{}) {
	if t.disabled {
		return
	}
	msg := fmt.Sprintf("[%s] "+format+"\n", append([]interface{}{level}, args...)...)
	select {
	case t.buffer <- msg:
	default:
	}
}

// Debugf records a debug-level trace line.
func (t *Tracer) Debugf(format string, args ...interface{}) { t.log("DEBUG", format, args...) }

// Errorf records an error-level trace line.
func (t *Tracer) Errorf(format string, args ...interface{}) { t.log("ERROR", format, args...) }

// Close flushes and closes the underlying file, if the tracer is enabled.
func (t *Tracer) Close() {
	if t.disabled {
		return
	}
	close(t.buffer)
	<-t.done
	t.writer.Flush()
	t.file.Close()
}
