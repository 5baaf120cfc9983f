package encoder

/*
#cgo LDFLAGS: -lmp3lame
#include <lame/lame.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"source.hodakov.me/hdkv/wavetunes/internal/domains"
)

// session wraps one libmp3lame encoder instance. It owns the output
// buffer that EncodeBlock and Flush hand out slices of.
type session struct {
	flags  *C.lame_global_flags
	output []byte
	closed bool
}

// NewSession allocates and configures a codec instance with the fixed
// stereo/44.1kHz/128kbps/joint-stereo/q5 parameters.
func (e *Encoder) NewSession() (domains.EncoderSession, error) {
	flags := C.lame_init()
	if flags == nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoder, ErrInit)
	}

	C.lame_set_num_channels(flags, C.int(numChannels))
	C.lame_set_in_samplerate(flags, C.int(inSampleRate))
	C.lame_set_brate(flags, C.int(bitrateKbps))
	C.lame_set_mode(flags, C.MPEG_mode(C.JOINT_STEREO))
	C.lame_set_quality(flags, C.int(encodeQuality))

	if C.lame_init_params(flags) < 0 {
		C.lame_close(flags)

		return nil, fmt.Errorf("%w: %w (codec rejected parameters)", ErrEncoder, ErrInit)
	}

	return &session{
		flags:  flags,
		output: make([]byte, domains.OutputBufferBytes),
	}, nil
}

// Version reports the linked LAME library version.
func (e *Encoder) Version() string {
	return C.GoString(C.get_lame_version())
}

func (s *session) EncodeBlock(left, right []int16) ([]byte, error) {
	frames := len(left)
	if len(right) != frames {
		return nil, fmt.Errorf(
			"%w: %w (left %d, right %d)",
			ErrEncoder, ErrChannelMismatch, frames, len(right),
		)
	}

	if frames == 0 {
		return nil, nil
	}

	status := C.lame_encode_buffer(
		s.flags,
		(*C.short)(unsafe.Pointer(&left[0])),
		(*C.short)(unsafe.Pointer(&right[0])),
		C.int(frames),
		(*C.uchar)(unsafe.Pointer(&s.output[0])),
		C.int(len(s.output)),
	)
	if status < 0 {
		return nil, fmt.Errorf("%w: %w", ErrEncoder, classifyEncodeStatus(int(status)))
	}

	return s.output[:status], nil
}

func (s *session) Flush() ([]byte, error) {
	status := C.lame_encode_flush(
		s.flags,
		(*C.uchar)(unsafe.Pointer(&s.output[0])),
		C.int(len(s.output)),
	)
	if status < 0 {
		return nil, fmt.Errorf("%w: %w", ErrEncoder, classifyEncodeStatus(int(status)))
	}

	return s.output[:status], nil
}

func (s *session) Close() {
	if s.closed {
		return
	}

	C.lame_close(s.flags)
	s.closed = true
}
