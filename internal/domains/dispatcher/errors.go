package dispatcher

import "errors"

var (
	ErrDispatcher            = errors.New("dispatcher")
	ErrConnectDependencies   = errors.New("failed to connect dependencies")
	ErrEnumeration           = errors.New("failed to enumerate jobs")
	ErrCantOpenSource        = errors.New("can't open source file for reading")
	ErrCantCreateDestination = errors.New("can't open destination file for writing")
	ErrSessionInit           = errors.New("can't open encoder session")
	ErrReadSource            = errors.New("failed to read source file")
	ErrEncodeBlock           = errors.New("failed to encode sample block")
	ErrFlush                 = errors.New("failed to flush encoder")
	ErrWriteDestination      = errors.New("failed to write destination file")
)
