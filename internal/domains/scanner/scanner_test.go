package scanner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"source.hodakov.me/hdkv/wavetunes/internal/application"
)

func newTestScanner(t *testing.T, dir string) *Scanner {
	t.Helper()

	return New(application.New(context.Background()), dir)
}

func touch(t *testing.T, path string) {
	t.Helper()

	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func TestScanFiltersAndDerivesDestinations(t *testing.T) {
	dir := t.TempDir()

	touch(t, filepath.Join(dir, "a.wav"))
	touch(t, filepath.Join(dir, "b.wav"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "UPPER.WAV")) // extension match is case-sensitive
	touch(t, filepath.Join(dir, "noextension"))
	touch(t, filepath.Join(dir, "archive.tar.wav")) // only the final segment counts

	if err := os.Mkdir(filepath.Join(dir, "nested.wav"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	jobs, err := newTestScanner(t, dir).Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := map[string]string{
		filepath.Join(dir, "a.wav"):           filepath.Join(dir, "a.mp3"),
		filepath.Join(dir, "archive.tar.wav"): filepath.Join(dir, "archive.tar.mp3"),
		filepath.Join(dir, "b.wav"):           filepath.Join(dir, "b.mp3"),
	}

	if len(jobs) != len(want) {
		t.Fatalf("got %d jobs, want %d", len(jobs), len(want))
	}

	for _, job := range jobs {
		dest, ok := want[job.SourcePath]
		if !ok {
			t.Errorf("unexpected job for %s", job.SourcePath)

			continue
		}

		if job.DestinationPath != dest {
			t.Errorf("destination for %s = %s, want %s", job.SourcePath, job.DestinationPath, dest)
		}
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	jobs, err := newTestScanner(t, t.TempDir()).Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(jobs) != 0 {
		t.Fatalf("got %d jobs, want 0", len(jobs))
	}
}

func TestScanMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")

	_, err := newTestScanner(t, missing).Scan()
	if !errors.Is(err, ErrCantOpenDirectory) {
		t.Fatalf("Scan error = %v, want %v", err, ErrCantOpenDirectory)
	}
}

func TestStartValidatesDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := newTestScanner(t, dir).Start(); err != nil {
		t.Fatalf("Start on existing directory: %v", err)
	}

	if err := newTestScanner(t, filepath.Join(dir, "gone")).Start(); !errors.Is(err, ErrCantOpenDirectory) {
		t.Fatalf("Start on missing directory = %v, want %v", err, ErrCantOpenDirectory)
	}

	file := filepath.Join(dir, "plain.wav")
	touch(t, file)

	if err := newTestScanner(t, file).Start(); !errors.Is(err, ErrNotADirectory) {
		t.Fatalf("Start on file = %v, want %v", err, ErrNotADirectory)
	}
}
