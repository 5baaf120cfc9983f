package domains

const EncoderName = "encoder"

// Buffer sizing shared between the encoder and the streaming workers.
// BlockFrames is the capacity of one interleaved read from the source,
// OutputBufferBytes the capacity of the buffer codec output lands in.
const (
	BlockFrames       = 8192
	OutputBufferBytes = 8192
)

// EncoderSession is one live codec instance. It is owned by exactly one
// worker for the duration of one job and is not safe for concurrent use.
type EncoderSession interface {
	// EncodeBlock feeds one de-interleaved block of samples. The returned
	// slice aliases a session-owned buffer and is only valid until the
	// next EncodeBlock or Flush call. A zero-length result is valid.
	EncodeBlock(left, right []int16) ([]byte, error)

	// Flush drains trailing codec state. Called exactly once, after the
	// source is exhausted. The returned slice has the same lifetime rules
	// as EncodeBlock's.
	Flush() ([]byte, error)

	// Close releases codec state. Safe to call more than once.
	Close()
}

type Encoder interface {
	NewSession() (EncoderSession, error)
	Version() string
}
