package cmd

import (
	"fmt"
	"io"

	"github.com/bnema/coach-cli/internal/adapters/browser"
	"github.com/bnema/coach-cli/internal/adapters/httpapi"
	"github.com/bnema/coach-cli/internal/adapters/secrets"
	"github.com/bnema/coach-cli/internal/application"
	"github.com/bnema/coach-cli/internal/config"
	"github.com/bnema/coach-cli/internal/logging"
	"github.com/bnema/coach-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	state  *application.State
	logger *zap.Logger
	clock  ports.Clock
	config config.Config
}

func (a *app) wire(logOutput io.Writer, verbose bool) error {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.LogFormat, logOutput)
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	platform, err := secrets.ParsePlatform(cfg.Platform)
	if err != nil {
		return err
	}
	tokens, err := secrets.NewStore(platform, secrets.Paths{SecretsDir: cfg.SecretsDir, WebPath: cfg.WebPath})
	if err != nil {
		return fmt.Errorf("wire token store: %w", err)
	}

	client, err := httpapi.NewClient(cfg.BaseURL, tokens,
		httpapi.WithLogger(logger),
		httpapi.WithRequestTimeout(cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("wire api client: %w", err)
	}

	clock := ports.SystemClock{}
	logger.Debug("wired", zap.String("base_url", client.BaseURL()), zap.String("platform", string(platform)))

	a.state = application.NewState(client, tokens, browser.NewOpener(), clock, logger)
	a.logger = logger
	a.clock = clock
	a.config = cfg

	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
