package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/wavetunes/internal/configuration"
	"source.hodakov.me/hdkv/wavetunes/internal/domains"
)

// App wires configuration, logging and the domain registry together. It is
// built once in main and handed to every domain constructor.
type App struct {
	ctx    context.Context
	logger *logrus.Entry
	config *configuration.Config

	domains      map[string]domains.Domain
	domainsMutex sync.RWMutex
}

func New(ctx context.Context) *App {
	logger := logrus.StandardLogger()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &App{
		ctx:     ctx,
		logger:  logger.WithContext(ctx),
		domains: make(map[string]domains.Domain),
	}
}

func (a *App) Config() *configuration.Config {
	return a.config
}

func (a *App) Context() context.Context {
	return a.ctx
}

func (a *App) Logger() *logrus.Entry {
	return a.logger
}

// DomainLogger returns the application logger with the domain name
// attached, so every line a domain emits is attributable.
func (a *App) DomainLogger(name string) *logrus.Entry {
	return a.logger.WithField("domain", name)
}

func (a *App) InitConfig() error {
	config, err := configuration.New()
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrApplication, ErrConfigInitializationError, err)
	}

	a.config = config

	return nil
}

// SetConfig replaces the loaded configuration. Intended for tests that
// need to tune polling and parallelism without a config file on disk.
func (a *App) SetConfig(config *configuration.Config) {
	a.config = config
}

func (a *App) InitLogger() {
	a.logger.Logger.SetLevel(a.config.WaveTunes.LogLevel)

	a.logger.WithField("log level", a.config.WaveTunes.LogLevel).Debug("Set log level")
}

func (a *App) RegisterDomain(name string, implementation domains.Domain) {
	a.domainsMutex.Lock()
	defer a.domainsMutex.Unlock()

	a.domains[name] = implementation
}

func (a *App) RetrieveDomain(name string) any {
	a.domainsMutex.RLock()
	defer a.domainsMutex.RUnlock()

	return a.domains[name]
}

// domainNames returns registered domain names in stable order so that
// startup logging and failures are deterministic run to run.
func (a *App) domainNames() []string {
	names := make([]string, 0, len(a.domains))
	for name := range a.domains {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (a *App) ConnectDependencies() error {
	a.domainsMutex.RLock()
	defer a.domainsMutex.RUnlock()

	for _, name := range a.domainNames() {
		err := a.domains[name].ConnectDependencies()
		if err != nil {
			return fmt.Errorf("%w: %w (%s: %w)", ErrApplication, ErrConnectDependencies, name, err)
		}
	}

	return nil
}

func (a *App) StartDomains() error {
	a.domainsMutex.RLock()
	defer a.domainsMutex.RUnlock()

	for _, name := range a.domainNames() {
		err := a.domains[name].Start()
		if err != nil {
			return fmt.Errorf("%w: %w (%s: %w)", ErrApplication, ErrDomainInit, name, err)
		}
	}

	return nil
}
