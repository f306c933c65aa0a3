package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/logqio/logq/internal/config"
	"github.com/logqio/logq/internal/engine"
	"github.com/logqio/logq/internal/fetch"
)

// CLI is the root command structure for logq
type CLI struct {
	// Global flags
	Format  string `short:"f" default:"${config_format}" enum:"text,ndjson" help:"Output format"`
	Quiet   bool   `short:"q" help:"Suppress non-result output (only emit entries)"`
	Verbose bool   `short:"v" help:"Show debug output (indexing progress, internal state)"`
	NoColor bool   `help:"Disable colored text output"`

	// Commands
	Query    QueryCmd    `cmd:"" help:"Search configured sources for matching log entries"`
	Sources  SourcesCmd  `cmd:"" help:"List configured log sources"`
	Validate ValidateCmd `cmd:"" help:"Check a local log file against the wire format"`
	Sample   SampleCmd   `cmd:"" help:"Generate a deterministic sample log file"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Clock   clock.Clock
}

// NewGlobals creates a new Globals instance from CLI flags and config
func NewGlobals(cli *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		NoColor: cli.NoColor,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Clock:   clock.New(),
	}

	// Config may force quiet/verbose when the flags weren't given
	if cfg != nil {
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = true
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = true
		}
	}

	return g
}

// Debug prints a debug message if verbose mode is enabled
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.Verbose {
		fmt.Fprintf(g.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Styled reports whether text output should be colorized.
func (g *Globals) Styled() bool {
	if g.NoColor {
		return false
	}
	f, ok := g.Stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Logger builds the engine debug logger: a development zap logger under
// --verbose, a nop logger otherwise.
func (g *Globals) Logger() *zap.Logger {
	if !g.Verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// Engine builds a query engine from the loaded configuration.
func (g *Globals) Engine() *engine.Engine {
	cfg := g.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return engine.New(cfg.Sources,
		engine.WithFetcher(fetch.NewStager(cfg.RemoteRoot, cfg.StagingDir)),
		engine.WithLogger(g.Logger()),
	)
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		io.WriteString(globals.Stdout, `{"type":"version","version":"`+Version+`","commit":"`+Commit+`"}`+"\n")
	} else {
		io.WriteString(globals.Stdout, "logq version "+Version+" ("+Commit+")\n")
	}
	return nil
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
