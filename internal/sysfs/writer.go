// Package sysfs writes integer values to kernel attribute files.
//
// Files are opened read-write without O_CREAT, written once and closed in
// the same call. No descriptor is kept between calls.
package sysfs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
)

// IntWriter writes a decimal integer followed by a newline to a path.
type IntWriter interface {
	WriteInt(path string, value int) error
}

// FailureFunc is notified once for every failed write.
type FailureFunc func(path string, err error)

// Writer is the sysfs-backed IntWriter. Open failures are logged at most
// once per distinct path for the lifetime of the Writer.
type Writer struct {
	root      string
	logger    *slog.Logger
	onFailure FailureFunc

	mu     sync.Mutex
	warned map[string]struct{}
}

// Option configures a Writer.
type Option func(*Writer)

// WithRoot prefixes every path with root. Used to point the writer at a
// fake tree in tests; production code leaves it at "/".
func WithRoot(root string) Option {
	return func(w *Writer) {
		w.root = root
	}
}

// WithFailureFunc registers a callback invoked for every failed write.
func WithFailureFunc(fn FailureFunc) Option {
	return func(w *Writer) {
		w.onFailure = fn
	}
}

// NewWriter creates a Writer logging through logger.
func NewWriter(logger *slog.Logger, opts ...Option) *Writer {
	w := &Writer{
		root:   "/",
		logger: logger,
		warned: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteInt writes value as "%d\n" to path. The returned error wraps the
// underlying syscall.Errno when one is available.
func (w *Writer) WriteInt(path string, value int) error {
	full := w.resolve(path)

	f, err := os.OpenFile(full, os.O_RDWR, 0)
	if err != nil {
		return w.fail(path, "open", err)
	}

	_, writeErr := f.WriteString(strconv.Itoa(value) + "\n")
	closeErr := f.Close()
	if writeErr != nil {
		return w.fail(path, "write", writeErr)
	}
	if closeErr != nil {
		return w.fail(path, "close", closeErr)
	}
	return nil
}

func (w *Writer) resolve(path string) string {
	if w.root == "" || w.root == "/" {
		return path
	}
	return filepath.Join(w.root, path)
}

// firstFailure records path and reports whether it had not failed before.
func (w *Writer) firstFailure(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, seen := w.warned[path]; seen {
		return false
	}
	w.warned[path] = struct{}{}
	return true
}

// fail logs the first failure seen for path, notifies the FailureFunc and
// returns the error wrapped with op.
func (w *Writer) fail(path, op string, err error) error {
	if w.firstFailure(path) {
		w.logger.Error("Failed to "+op+" sysfs attribute", "path", path, "error", err)
	}
	wrapped := fmt.Errorf("%s %s: %w", op, path, errnoOf(err))
	if w.onFailure != nil {
		w.onFailure(path, wrapped)
	}
	return wrapped
}

// errnoOf returns the syscall.Errno buried in err, or err itself.
func errnoOf(err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return err
}
