package configuration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wavetunes.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("WAVETUNES_CONFIG", path)
}

func TestNewParsesFullConfig(t *testing.T) {
	writeConfig(t, `
wavetunes:
  log_level: debug
transcoding:
  parallel: 3
  poll_interval_ms: 50
`)

	config, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if config.WaveTunes.LogLevel != logrus.DebugLevel {
		t.Errorf("log level = %s, want debug", config.WaveTunes.LogLevel)
	}
	if config.Transcoding.Parallel != 3 {
		t.Errorf("parallel = %d, want 3", config.Transcoding.Parallel)
	}
	if config.Transcoding.PollIntervalMs != 50 {
		t.Errorf("poll interval = %d, want 50", config.Transcoding.PollIntervalMs)
	}
}

func TestNewMissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("WAVETUNES_CONFIG", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	config, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := Default()
	if config.WaveTunes.LogLevel != want.WaveTunes.LogLevel {
		t.Errorf("log level = %s, want %s", config.WaveTunes.LogLevel, want.WaveTunes.LogLevel)
	}
	if config.Transcoding.Parallel != want.Transcoding.Parallel {
		t.Errorf("parallel = %d, want %d", config.Transcoding.Parallel, want.Transcoding.Parallel)
	}
	if config.Transcoding.PollIntervalMs != want.Transcoding.PollIntervalMs {
		t.Errorf(
			"poll interval = %d, want %d",
			config.Transcoding.PollIntervalMs, want.Transcoding.PollIntervalMs,
		)
	}
}

func TestNewPartialConfigKeepsDefaults(t *testing.T) {
	writeConfig(t, `
transcoding:
  parallel: 2
`)

	config, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if config.Transcoding.Parallel != 2 {
		t.Errorf("parallel = %d, want 2", config.Transcoding.Parallel)
	}
	if config.Transcoding.PollIntervalMs != 1000 {
		t.Errorf("poll interval = %d, want default 1000", config.Transcoding.PollIntervalMs)
	}
	if config.WaveTunes.LogLevel != logrus.InfoLevel {
		t.Errorf("log level = %s, want default info", config.WaveTunes.LogLevel)
	}
}

func TestNewRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "negative parallel",
			yaml:    "transcoding:\n  parallel: -1\n",
			wantErr: ErrInvalidParallelism,
		},
		{
			name:    "zero poll interval",
			yaml:    "transcoding:\n  poll_interval_ms: 0\n",
			wantErr: ErrInvalidPollInterval,
		},
		{
			name:    "unparseable yaml",
			yaml:    "transcoding: [not a mapping",
			wantErr: ErrCantParseConfigFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.yaml)

			_, err := New()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
