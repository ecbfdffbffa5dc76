// Package cli implements the docktile command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/docktile/docktile/pkg/buildinfo"
	"github.com/docktile/docktile/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "docktile"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "docktile",
		Short:        "Docktile manages dockable tiling layouts",
		Long:         `Docktile is a CLI tool for building, rendering and storing dockable tiling layouts: trees of splits, lineups and tab groups described in a small markup language or as JSON dumps.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			c.Config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/docktile/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.deriveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// newStore opens the layout store selected by the config.
// The returned store is wrapped with observability instrumentation.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	backend := c.Config.Store.Backend
	if backend == "" {
		backend = "file"
	}

	var (
		s   store.Store
		err error
	)
	switch backend {
	case "memory":
		s = store.NewMemoryStore()
	case "null":
		s = store.NewNullStore()
	case "file":
		dir := c.Config.Store.Dir
		if dir == "" {
			dir, err = dataDir()
			if err != nil {
				return nil, fmt.Errorf("resolve data directory: %w", err)
			}
		}
		s, err = store.NewFileStore(dir)
	case "redis":
		s, err = store.NewRedisStore(ctx, c.Config.Store.RedisAddr)
	case "mongo":
		s, err = store.NewMongoStore(ctx, c.Config.Store.MongoURI, c.Config.Store.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", backend, err)
	}

	c.Logger.Debug("store opened", "backend", backend)
	return store.Instrument(backend, s), nil
}

// =============================================================================
// Paths
// =============================================================================

// dataDir returns the layout directory using XDG standard
// (~/.local/share/docktile/layouts).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "layouts"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "layouts"), nil
}
