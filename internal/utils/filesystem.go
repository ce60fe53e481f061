package utils

import (
	"os"

	"golang.org/x/sys/unix"
)

type FilesystemHandler interface {
	MkdirAll(path string, perm os.FileMode) error
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	Stat(name string) (os.FileInfo, error)
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Remove(name string) error
	Rename(oldpath string, newpath string) error
	IsNotExist(err error) bool
	IsExist(path string) bool
	Flock(fd int, how int) error
	Chmod(name string, mode os.FileMode) error
}

func NewFilesystemExecutor() *FilesystemExecutor {
	return &FilesystemExecutor{}
}

type FilesystemExecutor struct{}

func (e *FilesystemExecutor) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (e *FilesystemExecutor) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (e *FilesystemExecutor) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (e *FilesystemExecutor) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (e *FilesystemExecutor) Open(name string) (*os.File, error) {
	return os.Open(name)
}

func (e *FilesystemExecutor) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (e *FilesystemExecutor) Remove(name string) error {
	return os.Remove(name)
}

func (e *FilesystemExecutor) Rename(oldpath string, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (e *FilesystemExecutor) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (e *FilesystemExecutor) IsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (e *FilesystemExecutor) Flock(fd int, how int) error {
	return unix.Flock(fd, how)
}

func (e *FilesystemExecutor) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}
