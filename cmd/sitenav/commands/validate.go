package commands

import (
	"fmt"
	"time"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	start := time.Now()
	defer func() { g.Recorder.ObserveCommandDuration("validate", time.Since(start)) }()

	if _, err := loadToolConfig(g, root); err != nil {
		return err
	}
	cfg, err := loadSite(g, root)
	if err != nil {
		return err
	}

	sidebar := cfg.Sidebar()
	sections, items := 0, 0
	for _, r := range sidebar.Routes() {
		sections += len(r.Sections)
		for _, s := range r.Sections {
			items += len(s.Items)
		}
	}
	_, _ = fmt.Fprintf(g.Out, "✓ %s is valid\n", cfg.Title())
	_, _ = fmt.Fprintf(g.Out, "  nav entries:    %d\n", len(cfg.Nav()))
	_, _ = fmt.Fprintf(g.Out, "  sidebars:       %d (%d sections, %d items)\n", sidebar.Len(), sections, items)
	_, _ = fmt.Fprintf(g.Out, "  targets:        %d\n", len(cfg.Targets()))
	_, _ = fmt.Fprintf(g.Out, "  social links:   %d\n", len(cfg.SocialLinks()))
	return nil
}
