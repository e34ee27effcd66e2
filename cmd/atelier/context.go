package main

import (
	"log/slog"
	"strings"
	"sync"

	"atelier/internal/config"
	"atelier/internal/logging"
	"atelier/internal/store"
)

type commandContext struct {
	configFlag  *string
	dataDirFlag *string
	dbFlag      *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, dataDirFlag, dbFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		dataDirFlag: dataDirFlag,
		dbFlag:      dbFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlagOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// applyFlagOverrides lets command-line flags win over the config file.
func (c *commandContext) applyFlagOverrides(cfg *config.Config) error {
	if c.dataDirFlag != nil && strings.TrimSpace(*c.dataDirFlag) != "" {
		expanded, err := config.ExpandPath(strings.TrimSpace(*c.dataDirFlag))
		if err != nil {
			return err
		}
		cfg.Paths.DataDir = expanded
	}
	if c.dbFlag != nil && strings.TrimSpace(*c.dbFlag) != "" {
		cfg.Paths.DBFile = strings.TrimSpace(*c.dbFlag)
	}
	return cfg.Validate()
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// withStore opens the store for the effective config and runs fn against it.
func (c *commandContext) withStore(fn func(*config.Config, *store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}
	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()
	return fn(cfg, st)
}
