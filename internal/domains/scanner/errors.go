package scanner

import "errors"

var (
	ErrScanner           = errors.New("scanner")
	ErrCantOpenDirectory = errors.New("can't open source directory")
	ErrNotADirectory     = errors.New("source path is not a directory")
)
