package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/logqio/logq/internal/cli"
	"github.com/logqio/logq/internal/config"
)

const quickStart = `logq - bounded queries over multi-source log files

START HERE (this is the command you want):
  logq query -s server1 -s db_server --start "2021-01-17 12:00:00" -m WARNING

Flags:
  -s    Source id to search, repeatable (run 'logq sources' to list)
  -m    Minimum severity: DEBUG, INFO, WARNING, ERROR, CRITICAL

Other useful commands:
  logq sources                          List configured sources
  logq validate <file>                  Check a log file's format
  logq sample <file>                    Generate demo data
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing; CLI flags override them
	vars := kong.Vars{
		"config_format":       cfg.Format,
		"config_entries":      strconv.Itoa(cfg.Defaults.Entries),
		"config_min_severity": cfg.Defaults.MinSeverity,
	}

	ctx := kong.Parse(&c,
		kong.Name("logq"),
		kong.Description("Query append-only log files from multiple sources by time and severity"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobals(&c, cfg)
	if err := ctx.Run(globals); err != nil {
		os.Exit(1)
	}
}
