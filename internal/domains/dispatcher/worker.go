package dispatcher

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/wavetunes/internal/domains"
	"source.hodakov.me/hdkv/wavetunes/internal/domains/scanner/dto"
)

// frameBytes is the size of one interleaved stereo frame: two 16-bit
// little-endian samples, left first.
const frameBytes = 4

// runWorker is the body of one detached encoding goroutine. Whatever
// happens inside, the job's counter slot is released exactly once.
func (d *Dispatcher) runWorker(job *dto.Job) {
	defer d.counter.Decrement()

	logger := d.logger.WithFields(logrus.Fields{
		"worker":      uuid.NewString(),
		"source":      job.SourcePath,
		"destination": job.DestinationPath,
	})

	logger.Info("Encoding started")

	written, err := d.encode(logger, job)
	if err != nil {
		logger.WithError(err).Error("Encoding failed")

		return
	}

	logger.WithField("bytes", written).Info("Encoded successfully")
}

// encode streams the source through one codec session in fixed-size
// blocks and appends every piece of codec output to the destination.
// It returns the total number of encoded bytes written.
//
// The source is read as a raw interleaved 16-bit sample stream from byte
// zero; container headers are not parsed and end up encoded like any
// other samples. A destination left behind by a failed job is not cleaned
// up.
func (d *Dispatcher) encode(logger *logrus.Entry, job *dto.Job) (int64, error) {
	source, err := os.Open(job.SourcePath)
	if err != nil {
		return 0, fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrCantOpenSource, err)
	}
	defer source.Close()

	destination, err := os.Create(job.DestinationPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrCantCreateDestination, err)
	}
	defer destination.Close()

	session, err := d.encoder.NewSession()
	if err != nil {
		return 0, fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrSessionInit, err)
	}
	defer session.Close()

	var written int64

	// Channel buffers are allocated once at full block capacity and
	// re-sliced to the frame count actually read on every iteration.
	block := make([]byte, domains.BlockFrames*frameBytes)
	left := make([]int16, domains.BlockFrames)
	right := make([]int16, domains.BlockFrames)

	for {
		n, err := io.ReadFull(source, block)
		if err == io.EOF {
			break
		}

		if err != nil && err != io.ErrUnexpectedEOF {
			return written, fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrReadSource, err)
		}

		frames := n / frameBytes
		if leftover := n % frameBytes; leftover != 0 {
			// Truncated source. The trailing bytes form no complete
			// stereo frame, so they are dropped rather than padded.
			logger.WithField("bytes", leftover).Warn("Source ends mid-frame, dropping trailing bytes")
		}

		if frames == 0 {
			break
		}

		deinterleave(block[:frames*frameBytes], left, right)

		output, err := session.EncodeBlock(left[:frames], right[:frames])
		if err != nil {
			return written, fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrEncodeBlock, err)
		}

		if len(output) > 0 {
			if _, err := destination.Write(output); err != nil {
				return written, fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrWriteDestination, err)
			}

			written += int64(len(output))
		}
	}

	output, err := session.Flush()
	if err != nil {
		return written, fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrFlush, err)
	}

	if len(output) > 0 {
		if _, err := destination.Write(output); err != nil {
			return written, fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrWriteDestination, err)
		}

		written += int64(len(output))
	}

	return written, nil
}

// deinterleave splits interleaved stereo frames into channel buffers:
// even-indexed samples go left, odd-indexed go right. The block length
// must be a whole number of frames.
func deinterleave(block []byte, left, right []int16) {
	frames := len(block) / frameBytes

	for i := 0; i < frames; i++ {
		left[i] = int16(binary.LittleEndian.Uint16(block[i*frameBytes:]))
		right[i] = int16(binary.LittleEndian.Uint16(block[i*frameBytes+2:]))
	}
}
