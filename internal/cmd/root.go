package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/musagunn/pomotimer/internal/config"
	"github.com/musagunn/pomotimer/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Backend     string           `help:"Storage backend to use" enum:",file,memory,sqlite" default:""`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	Language    string           `help:"Language for default task seeding (tr or en)" default:""`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Record   RecordCmd   `cmd:"record" help:"Record a completed pomodoro session"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage recorded sessions (list, clear)"`
	Stats    StatsCmd    `cmd:"stats" help:"Show weekly or monthly focus statistics"`
	Streak   StreakCmd   `cmd:"streak" help:"Show or reset the daily streak"`
	Tasks    TasksCmd    `cmd:"tasks" help:"Manage tasks (list, add, del, set)"`
	Notes    NotesCmd    `cmd:"notes" help:"Manage notes (list, add, set, del, clear)"`
	Reports  ReportsCmd  `cmd:"reports" help:"Browse statistics interactively"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		// Apply MaxLogFiles setting
		if c.MaxLogFiles == 100 {
			if _, hasEnv := os.LookupEnv("POMOTIMER_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("POMOTIMER_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes inherit debug settings
	// and use the SAME log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("POMOTIMER_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("POMOTIMER_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 100 {
		os.Setenv("POMOTIMER_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so the GORM logger bridge
	// never sees a nil logging.Logger
	container, err := NewContainer(c.resolveBackend())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	kctx.Bind(c.Container)

	return nil
}

// resolveBackend applies the flag > settings.json > default precedence
func (c *CLI) resolveBackend() string {
	if c.Backend != "" {
		return c.Backend
	}
	if c.settings != nil {
		return c.settings.ResolveBackend()
	}
	return config.DefaultBackend
}

// resolveLanguage applies the flag > settings.json > default precedence
func (c *CLI) resolveLanguage() string {
	if c.Language != "" {
		return c.Language
	}
	if c.settings != nil {
		return c.settings.ResolveLanguage()
	}
	return config.DefaultLanguage
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
