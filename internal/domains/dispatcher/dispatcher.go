package dispatcher

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/wavetunes/internal/application"
	"source.hodakov.me/hdkv/wavetunes/internal/domains"
)

var (
	_ domains.Dispatcher = new(Dispatcher)
	_ domains.Domain     = new(Dispatcher)
)

// Dispatcher admits transcoding jobs up to the concurrency limit, launches
// one detached worker per job, and waits for all of them to drain. Workers
// report back only through the shared job counter and the log.
type Dispatcher struct {
	app    *application.App
	logger *logrus.Entry

	scanner domains.Scanner
	encoder domains.Encoder

	counter      *jobCounter
	limit        int64
	pollInterval time.Duration
}

func New(app *application.App) *Dispatcher {
	logger := app.DomainLogger(domains.DispatcherName)

	return &Dispatcher{
		app:     app,
		logger:  logger,
		counter: newJobCounter(logger),
	}
}

func (d *Dispatcher) ConnectDependencies() error {
	scanner, ok := d.app.RetrieveDomain(domains.ScannerName).(domains.Scanner)
	if !ok {
		return fmt.Errorf(
			"%w: %w (%s)", ErrDispatcher, ErrConnectDependencies,
			"scanner domain interface conversion failed",
		)
	}

	d.scanner = scanner

	encoder, ok := d.app.RetrieveDomain(domains.EncoderName).(domains.Encoder)
	if !ok {
		return fmt.Errorf(
			"%w: %w (%s)", ErrDispatcher, ErrConnectDependencies,
			"encoder domain interface conversion failed",
		)
	}

	d.encoder = encoder

	return nil
}

func (d *Dispatcher) Start() error {
	limit := d.app.Config().Transcoding.Parallel
	if limit <= 0 {
		limit = int64(runtime.NumCPU())
	}

	d.limit = limit
	d.pollInterval = time.Duration(d.app.Config().Transcoding.PollIntervalMs) * time.Millisecond

	d.logger.WithFields(logrus.Fields{
		"slots":         d.limit,
		"poll interval": d.pollInterval,
	}).Info("Encoding slots configured")

	return nil
}

// Run enumerates the jobs and pushes every one of them through a worker.
// Per-job failures are logged by the workers and never surface here; the
// only error Run returns is a failed enumeration. A cancelled context
// stops the admission of new jobs, but already-admitted workers always run
// to completion and are drained before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	jobs, err := d.scanner.Scan()
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrDispatcher, ErrEnumeration, err)
	}

	for _, job := range jobs {
		if !d.waitForSlot(ctx) {
			d.logger.Warn("Interrupted, not admitting further jobs")

			break
		}

		d.counter.Increment()

		go d.runWorker(job)
	}

	d.drain()

	d.logger.Info("All encoding jobs finished")

	return nil
}

// waitForSlot polls the job counter until the number of in-flight jobs
// drops below the limit. Returns false once the context is cancelled.
func (d *Dispatcher) waitForSlot(ctx context.Context) bool {
	for {
		if ctx.Err() != nil {
			return false
		}

		active := d.counter.Read()
		if active < d.limit {
			return true
		}

		d.logger.WithFields(logrus.Fields{
			"active": active,
			"slots":  d.limit,
		}).Info("All encoding slots busy, waiting...")

		select {
		case <-ctx.Done():
			return false
		case <-time.After(d.pollInterval):
		}
	}
}

// drain polls the job counter until every admitted worker has reached a
// terminal state. Deliberately not cancellable: workers own open file
// handles and codec state, so the dispatcher always waits them out.
func (d *Dispatcher) drain() {
	for {
		active := d.counter.Read()
		if active == 0 {
			return
		}

		d.logger.WithField("active", active).Info("Waiting for encoding jobs to finish...")

		time.Sleep(d.pollInterval)
	}
}
