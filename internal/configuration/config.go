package configuration

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
)

const defaultConfigPath = "/etc/wavetunes.yaml"

type Config struct {
	WaveTunes   WaveTunes   `yaml:"wavetunes"`
	Transcoding Transcoding `yaml:"transcoding"`
}

type WaveTunes struct {
	LogLevel logrus.Level `yaml:"log_level"`
}

type Transcoding struct {
	// Parallel caps the number of simultaneously running encode jobs.
	// Zero means one job per available processor core.
	Parallel int64 `yaml:"parallel"`
	// PollIntervalMs is the sleep between polls of the in-flight job
	// counter in the admission and drain loops.
	PollIntervalMs int64 `yaml:"poll_interval_ms"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		WaveTunes: WaveTunes{
			LogLevel: logrus.InfoLevel,
		},
		Transcoding: Transcoding{
			Parallel:       0,
			PollIntervalMs: 1000,
		},
	}
}

// New loads the configuration from /etc/wavetunes.yaml or from the path in
// WAVETUNES_CONFIG. A missing file is not an error: the tool has to work
// with nothing but a directory argument, so defaults apply.
func New() (*Config, error) {
	waveTunesCfgPath := defaultConfigPath
	if customPath, ok := os.LookupEnv("WAVETUNES_CONFIG"); ok {
		waveTunesCfgPath = customPath
	}

	rawConfig, err := os.ReadFile(waveTunesCfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, fmt.Errorf("%w: %w (%w)", ErrConfiguration, ErrCantReadConfigFile, err)
	}

	config := Default()
	err = yaml.Unmarshal(rawConfig, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (%w)", ErrConfiguration, ErrCantParseConfigFile, err)
	}

	if config.Transcoding.Parallel < 0 {
		return nil, fmt.Errorf(
			"%w: %w (parallel is %d)",
			ErrConfiguration, ErrInvalidParallelism, config.Transcoding.Parallel,
		)
	}

	if config.Transcoding.PollIntervalMs <= 0 {
		return nil, fmt.Errorf(
			"%w: %w (poll_interval_ms is %d)",
			ErrConfiguration, ErrInvalidPollInterval, config.Transcoding.PollIntervalMs,
		)
	}

	return config, nil
}
