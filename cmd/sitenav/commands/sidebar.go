package commands

import (
	"fmt"
	"strings"
)

// SidebarCmd implements the 'sidebar' command.
type SidebarCmd struct {
	Path string `arg:"" help:"Page path, e.g. /share/read-source-code"`
}

func (s *SidebarCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadSite(g, root)
	if err != nil {
		return err
	}
	prefix, sections, ok := cfg.ResolveSidebar(s.Path)
	if !ok {
		_, _ = fmt.Fprintf(g.Out, "%s renders without a sidebar\n", s.Path)
		return nil
	}
	_, _ = fmt.Fprintf(g.Out, "%s uses sidebar %s\n", s.Path, prefix)
	for _, sec := range sections {
		marker := ""
		if sec.Collapsed {
			marker = " (collapsed)"
		}
		_, _ = fmt.Fprintf(g.Out, "\n%s%s\n", sec.Heading, marker)
		for _, item := range sec.Items {
			current := " "
			if strings.TrimSuffix(item.Target, ".md") == strings.TrimSuffix(s.Path, ".md") {
				current = "*"
			}
			_, _ = fmt.Fprintf(g.Out, "  %s %s  %s\n", current, item.Label, item.Target)
		}
	}
	return nil
}
