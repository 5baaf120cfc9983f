package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/wavetunes/internal/domains/scanner/dto"
)

const (
	sourceExtension = ".wav"
	targetExtension = ".mp3"
)

// Scan reads the source directory once and returns one Job per wave file,
// in name order. Everything that is not a regular file ending in ".wav"
// (case-sensitive) is skipped with a log line. The destination path is the
// source path with the final extension swapped for ".mp3".
func (s *Scanner) Scan() ([]*dto.Job, error) {
	entries, err := os.ReadDir(s.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (%w)", ErrScanner, ErrCantOpenDirectory, err)
	}

	jobs := make([]*dto.Job, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			s.logger.WithField("name", name).Debug("Entry is a directory, skipping...")

			continue
		}

		dot := strings.LastIndex(name, ".")
		if dot < 0 {
			s.logger.WithField("name", name).Warn("File has no extension, skipping...")

			continue
		}

		if name[dot:] != sourceExtension {
			s.logger.WithField("name", name).Info("Entry is not a wave file, skipping...")

			continue
		}

		sourcePath := filepath.Join(s.sourceDir, name)

		job := &dto.Job{
			SourcePath:      sourcePath,
			DestinationPath: sourcePath[:len(sourcePath)-len(sourceExtension)] + targetExtension,
		}

		s.logger.WithFields(logrus.Fields{
			"source":      job.SourcePath,
			"destination": job.DestinationPath,
		}).Debug("Enumerated transcoding job")

		jobs = append(jobs, job)
	}

	s.logger.WithField("jobs", len(jobs)).Info("Finished scanning source directory")

	return jobs, nil
}
