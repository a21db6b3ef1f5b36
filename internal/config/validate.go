package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTranscriber(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.WorkDir == "" {
		return errors.New("paths.work_dir must be set")
	}
	if c.Cache.Enabled && c.Paths.CacheDir == "" {
		return errors.New("paths.cache_dir must be set when cache.enabled is true")
	}
	return nil
}

func (c *Config) validateTranscriber() error {
	if c.Transcriber.Command == "" {
		return errors.New("transcriber.command must be set")
	}
	if c.Transcriber.Model == "" {
		return errors.New("transcriber.model must be set")
	}
	if c.Transcriber.TimeoutSeconds <= 0 {
		return errors.New("transcriber.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	name := c.Output.DefaultName
	if name == "" {
		return errors.New("output.default_name must be set")
	}
	if !strings.HasSuffix(strings.ToLower(name), ".srt") {
		return fmt.Errorf("output.default_name %q must end in .srt", name)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}
