package io

import (
	"io"
	"os"
)

//go:generate mockgen -package mocks -destination mocks/mock_fileio.go github.com/fossabot/Tsundoku/pkg/io FileIO

// FileIO is an interface for the file operations the rename engine performs
type FileIO interface {
	Stat(target string) (os.FileInfo, error)
	Open(name string) (*os.File, error)
	Create(name string) (io.WriteCloser, error)
	Rename(source, target string) error
	Remove(name string) error
	Copy(source, target string) (int64, error)
	MkdirAll(name string, perm os.FileMode) error
	IsSameFileSystem(source, target string) (bool, error)
	FileExists(path string) bool
}
