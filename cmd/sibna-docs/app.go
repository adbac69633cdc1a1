package main

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/pages"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/router"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/config"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/observability"
)

// app holds state shared by the subcommands once the root command has loaded
// configuration.
type app struct {
	configFile string
	envFile    string

	// configOpts are appended after the flag-derived loader options.
	configOpts []config.Option
	newLogger  func(level string) (*zap.Logger, error)

	cfg    config.Config
	logger *zap.Logger
}

func newApp() *app {
	return &app{newLogger: observability.NewLogger}
}

func (a *app) load(envFileSet bool) error {
	var opts []config.Option
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	if envFileSet {
		opts = append(opts, config.WithEnvFile(a.envFile))
	}
	opts = append(opts, a.configOpts...)

	cfg, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := a.newLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("initialise logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.Named("sibna-docs")
	return nil
}

// registry returns the built-in pages merged with the configured content directory.
func (a *app) registry() (*pages.Registry, error) {
	reg := pages.Builtin()
	dir := strings.TrimSpace(a.cfg.Site.ContentDir)
	if dir == "" {
		return reg, nil
	}
	overrides, err := pages.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded content directory", zap.String("dir", dir), zap.Int("pages", len(overrides)))
	return reg.Merge(overrides...), nil
}

func (a *app) router() (*router.Router, error) {
	reg, err := a.registry()
	if err != nil {
		return nil, err
	}
	r := router.New(reg, a.cfg.Site.BasePath, router.WithDefaultPage(a.cfg.Site.DefaultPage))
	if _, ok := reg.Lookup(r.DefaultPageID()); !ok {
		a.logger.Warn("default page is not registered; first load shows the fallback page",
			zap.String("default_page", r.DefaultPageID()))
	}
	return r, nil
}
