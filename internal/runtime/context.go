// Package runtime provides the application runtime context for Cronoz.
package runtime

import (
	"github.com/cronozapp/cronoz/internal/output"
	"github.com/cronozapp/cronoz/internal/storage"
	"github.com/cronozapp/cronoz/internal/tracker"
)

// Context holds the application runtime context shared by all commands.
type Context struct {
	DB        *storage.DB
	Store     storage.Store
	Tracker   *tracker.Tracker
	Formatter *output.Formatter

	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	if opts.DBPath == ":memory:" {
		opts.InMemory = true
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	store := storage.NewKVStore(db)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:        db,
		Store:     store,
		Tracker:   tracker.New(store),
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
