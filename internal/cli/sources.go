package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// SourcesCmd lists configured log sources
type SourcesCmd struct{}

// sourceInfo is one configured source in NDJSON form
type sourceInfo struct {
	Type   string `json:"type"` // Always "source"
	Name   string `json:"name"`
	Remote string `json:"remote"`
	Staged bool   `json:"staged"`
}

// Run executes the sources command
func (c *SourcesCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil || len(cfg.Sources) == 0 {
		if globals.Format != "ndjson" {
			fmt.Fprintln(globals.Stdout, "No sources configured")
		}
		return nil
	}

	names := make([]string, 0, len(cfg.Sources))
	for name := range cfg.Sources {
		names = append(names, name)
	}
	sort.Strings(names)

	if globals.Format == "ndjson" {
		encoder := json.NewEncoder(globals.Stdout)
		for _, name := range names {
			info := sourceInfo{
				Type:   "source",
				Name:   name,
				Remote: cfg.Sources[name],
				Staged: staged(cfg.StagingDir, name),
			}
			if err := encoder.Encode(info); err != nil {
				return err
			}
		}
		return nil
	}

	table := tablewriter.NewWriter(globals.Stdout)
	table.Header("SOURCE", "REMOTE PATH", "STAGED")
	for _, name := range names {
		stagedMark := "-"
		if staged(cfg.StagingDir, name) {
			stagedMark = "yes"
		}
		if err := table.Append([]string{name, cfg.Sources[name], stagedMark}); err != nil {
			return err
		}
	}
	return table.Render()
}

// staged reports whether a source already has a staged local copy.
func staged(stagingDir, source string) bool {
	if stagingDir == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(stagingDir, source+".log"))
	return err == nil
}
