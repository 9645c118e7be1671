package site

import "reflect"

// Config is a validated, immutable site configuration.
type Config struct {
	def Definition
}

// New validates def and returns a Config holding its own copy of the data.
func New(def Definition) (*Config, error) {
	cp := def.clone()
	if err := Validate(cp); err != nil {
		return nil, err
	}
	return &Config{def: cp}, nil
}

// Definition returns a deep copy of the underlying data.
func (c *Config) Definition() Definition { return c.def.clone() }

// Title returns the site title.
func (c *Config) Title() string { return c.def.Title }

// Description returns the site description.
func (c *Config) Description() string { return c.def.Description }

// LastUpdated reports whether pages show their last-updated time.
func (c *Config) LastUpdated() bool { return c.def.LastUpdated }

// Nav returns a copy of the navigation bar entries.
func (c *Config) Nav() []NavEntry { return cloneNav(c.def.Nav) }

// Sidebar returns the sidebar map. SidebarMap is a value type, so callers
// cannot change the config through it.
func (c *Config) Sidebar() SidebarMap { return c.def.Sidebar.clone() }

// Head returns a copy of the extra head tags.
func (c *Config) Head() []HeadTag { return cloneHead(c.def.Head) }

// SocialLinks returns a copy of the social links.
func (c *Config) SocialLinks() []SocialLink {
	return c.def.clone().SocialLinks
}

// ResolveSidebar returns the sidebar serving pagePath. ok is false when no
// prefix matches, including when the map is empty.
func (c *Config) ResolveSidebar(pagePath string) (prefix string, sections []SidebarSection, ok bool) {
	return c.def.Sidebar.Resolve(pagePath)
}

// Targets lists every nav and sidebar target in display order, nav first.
func (c *Config) Targets() []string {
	out := NavTargets(c.def.Nav)
	for _, r := range c.def.Sidebar.routes {
		for _, s := range r.Sections {
			for _, it := range s.Items {
				out = append(out, it.Target)
			}
		}
	}
	return out
}

// Equal reports whether both configs hold structurally identical data.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return reflect.DeepEqual(c.def, other.def)
}
