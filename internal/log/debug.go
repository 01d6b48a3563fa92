// Package log provides an opt-in debug log used to trace git invocations.
// Messages are buffered until a destination file is chosen so early startup
// output is not lost.
package log

import (
	"log"
	"os"
	"sync"
)

type debugWriter struct {
	mu      sync.Mutex
	file    *os.File
	pending []byte
	discard bool
}

var (
	writer    = &debugWriter{}
	stdLogger = log.New(writer, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer. Output goes to the file once one is set and is
// buffered before that.
func (w *debugWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.discard {
		return len(p), nil
	}
	if w.file != nil {
		n, err := w.file.Write(p)
		_ = w.file.Sync()
		return n, err
	}

	w.pending = append(w.pending, p...)
	return len(p), nil
}

// SetFile directs debug output to path, flushing anything buffered so far.
// An empty path discards buffered and future output.
func SetFile(path string) error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.file != nil {
		_ = writer.file.Close()
		writer.file = nil
	}

	if path == "" {
		writer.discard = true
		writer.pending = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		writer.discard = true
		writer.pending = nil
		return err
	}

	writer.file = f
	writer.discard = false
	if len(writer.pending) > 0 {
		_, _ = f.Write(writer.pending)
		_ = f.Sync()
		writer.pending = nil
	}
	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Close closes the debug log file if open.
func Close() error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.file == nil {
		return nil
	}
	err := writer.file.Close()
	writer.file = nil
	return err
}
