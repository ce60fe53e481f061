package logger

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

const (
	defaultMaxBytes   = 50 * 1024 * 1024
	defaultMaxBackups = 5
)

// RotatingFile is an append-only audit sink rotated by size:
// audit.log -> audit.log.1 -> ... -> audit.log.<maxBackups>.
type RotatingFile struct {
	mu         sync.Mutex
	path       string
	file       *os.File
	buf        *bufio.Writer
	size       int64
	maxBytes   int64
	maxBackups int
}

func NewRotatingFile(path string) (*RotatingFile, error) {
	return NewRotatingFileWithLimits(path, defaultMaxBytes, defaultMaxBackups)
}

func NewRotatingFileWithLimits(path string, maxBytes int64, maxBackups int) (*RotatingFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, err
	}
	var size int64
	if st, err := f.Stat(); err == nil {
		size = st.Size()
	}
	return &RotatingFile{
		path:       path,
		file:       f,
		buf:        bufio.NewWriterSize(f, 64*1024),
		size:       size,
		maxBytes:   maxBytes,
		maxBackups: maxBackups,
	}, nil
}

// Write appends one complete line; every write is flushed.
func (w *RotatingFile) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.rotateIfNeeded(int64(len(p))); err != nil {
		return 0, err
	}
	n, err := w.buf.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.buf.Flush(); err != nil {
		return n, err
	}
	w.size += int64(n)
	return n, nil
}

func (w *RotatingFile) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf != nil {
		_ = w.buf.Flush()
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

func (w *RotatingFile) rotateIfNeeded(nextBytes int64) error {
	if w.maxBytes <= 0 || w.size == 0 {
		return nil
	}
	if w.size+nextBytes <= w.maxBytes {
		return nil
	}
	return w.rotate()
}

func (w *RotatingFile) rotate() error {
	_ = w.buf.Flush()
	_ = w.file.Close()

	if w.maxBackups > 0 {
		_ = os.Remove(w.backupName(w.maxBackups))
		for i := w.maxBackups - 1; i >= 1; i-- {
			if _, err := os.Stat(w.backupName(i)); err == nil {
				_ = os.Rename(w.backupName(i), w.backupName(i+1))
			}
		}
		_ = os.Rename(w.path, w.backupName(1))
	} else {
		_ = os.Remove(w.path)
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return err
	}
	w.file = f
	w.buf = bufio.NewWriterSize(f, 64*1024)
	w.size = 0
	return nil
}

func (w *RotatingFile) backupName(i int) string {
	return w.path + "." + strconv.Itoa(i)
}
