package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/termdock/internal/config"
	"github.com/renato0307/termdock/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version      kong.VersionFlag `help:"Show version information"`
	Debug        bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile    string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles  int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	OrderBackend string           `help:"Where manual orders are stored (sqlite or bolt)" enum:"sqlite,bolt" default:"sqlite"`

	Order    OrderCmd    `cmd:"order" help:"Inspect and change manual session order"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage sessions (list, add, del, pin, move)"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// loadedSettings never returns nil
func (c *CLI) loadedSettings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("TERMDOCK_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TERMDOCK_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.OrderBackend == config.OrderBackendSQLite {
			if _, hasEnv := os.LookupEnv("TERMDOCK_ORDER_BACKEND"); !hasEnv {
				if c.settings.OrderBackend != "" {
					c.OrderBackend = c.settings.OrderBackend
				}
			}
		}
	}
	if c.OrderBackend == config.OrderBackendSQLite {
		if env := os.Getenv("TERMDOCK_ORDER_BACKEND"); env == config.OrderBackendBolt {
			c.OrderBackend = env
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Exported after initialization so child processes append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TERMDOCK_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TERMDOCK_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("TERMDOCK_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container opens the database, whose GORM logger needs logging ready
	container, err := NewContainer(context.Background(), c.OrderBackend)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
