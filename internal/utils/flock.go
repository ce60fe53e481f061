package utils

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

func NewFileLock(path string, filesystemHandler FilesystemHandler) *FileLock {
	return &FileLock{
		path:              path,
		filesystemHandler: filesystemHandler,
	}
}

// FileLock serializes callers within the process (mutex) and across
// processes (flock on path).
type FileLock struct {
	path              string
	mu                sync.Mutex
	filesystemHandler FilesystemHandler
}

func (l *FileLock) WithLock(fn func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.filesystemHandler.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}

	lf, err := l.filesystemHandler.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	defer lf.Close()

	if err := l.filesystemHandler.Flock(int(lf.Fd()), unix.LOCK_EX); err != nil {
		return err
	}
	defer l.filesystemHandler.Flock(int(lf.Fd()), unix.LOCK_UN)

	return fn()
}
