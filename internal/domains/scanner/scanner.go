package scanner

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/wavetunes/internal/application"
	"source.hodakov.me/hdkv/wavetunes/internal/domains"
)

var (
	_ domains.Scanner = new(Scanner)
	_ domains.Domain  = new(Scanner)
)

// Scanner enumerates wave files in a single source directory and derives
// the mp3 destination path for each of them.
type Scanner struct {
	app    *application.App
	logger *logrus.Entry

	sourceDir string
}

func New(app *application.App, sourceDir string) *Scanner {
	return &Scanner{
		app:       app,
		logger:    app.DomainLogger(domains.ScannerName),
		sourceDir: sourceDir,
	}
}

func (s *Scanner) ConnectDependencies() error {
	return nil
}

func (s *Scanner) Start() error {
	info, err := os.Stat(s.sourceDir)
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrScanner, ErrCantOpenDirectory, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %w (%s)", ErrScanner, ErrNotADirectory, s.sourceDir)
	}

	s.logger.WithField("path", s.sourceDir).Info("Got source directory")

	return nil
}
