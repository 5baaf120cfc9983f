package encoder

import (
	"source.hodakov.me/hdkv/wavetunes/internal/application"
	"source.hodakov.me/hdkv/wavetunes/internal/domains"
)

var (
	_ domains.Encoder = new(Encoder)
	_ domains.Domain  = new(Encoder)
)

// Fixed mp3 encoding parameters. These are the stock LAME defaults; the
// tool deliberately offers no bitrate or quality negotiation.
const (
	numChannels   = 2
	inSampleRate  = 44100
	bitrateKbps   = 128
	encodeQuality = 5 // 0 best, 9 worst
)

// Encoder hands out one codec session per transcoding job.
type Encoder struct {
	app *application.App
}

func New(app *application.App) *Encoder {
	return &Encoder{
		app: app,
	}
}

func (e *Encoder) ConnectDependencies() error {
	return nil
}

func (e *Encoder) Start() error {
	e.app.DomainLogger(domains.EncoderName).
		WithField("lame version", e.Version()).
		Info("Encoder ready")

	return nil
}
