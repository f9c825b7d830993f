package shell

import (
	"errors"
	"io/fs"
	"syscall"
)

// ErrKind classifies heterogeneous OS failures into the small set of cases
// the builtins report. Classification happens once, at the boundary between
// the OS call and the handler; handlers switch on the kind to build their
// command-prefixed message.
type ErrKind int

const (
	KindGeneric ErrKind = iota
	KindNotFound
	KindNotADirectory
	KindIsADirectory
	KindPermission
	KindExists
)

func Classify(err error) ErrKind {
	switch {
	case err == nil:
		return KindGeneric
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrExist):
		return KindExists
	case errors.Is(err, syscall.ENOTDIR):
		return KindNotADirectory
	case errors.Is(err, syscall.EISDIR):
		return KindIsADirectory
	}
	return KindGeneric
}
