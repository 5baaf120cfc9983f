package encoder

import (
	"errors"
	"fmt"
)

var (
	ErrEncoder         = errors.New("encoder")
	ErrInit            = errors.New("can't initialize codec")
	ErrChannelMismatch = errors.New("channel buffers differ in length")
	ErrBufferTooSmall  = errors.New("output buffer too small")
	ErrAllocation      = errors.New("codec allocation failure")
	ErrNotInitialized  = errors.New("codec not initialized")
	ErrPsychoAcoustic  = errors.New("psychoacoustic analysis failure")
	ErrEncode          = errors.New("encoding failure")
)

// classifyEncodeStatus maps the codec's negative return codes to sentinel
// errors so callers can tell the failure modes apart.
func classifyEncodeStatus(status int) error {
	switch status {
	case -1:
		return ErrBufferTooSmall
	case -2:
		return ErrAllocation
	case -3:
		return ErrNotInitialized
	case -4:
		return ErrPsychoAcoustic
	default:
		return fmt.Errorf("%w (status %d)", ErrEncode, status)
	}
}
