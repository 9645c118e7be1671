package linkcheck

// Kind names the class of a finding.
type Kind string

const (
	// KindDangling is a nav or sidebar target with no page behind it.
	KindDangling Kind = "dangling"
	// KindOrphan is a page under a sidebar prefix that nothing links to.
	KindOrphan Kind = "orphan"
	// KindContentLink is a broken internal link inside a page body.
	KindContentLink Kind = "content_link"
)

// Severity indicates whether a finding fails the check.
type Severity int

const (
	// SeverityWarning findings are reported but do not fail the check.
	SeverityWarning Severity = iota
	// SeverityError findings fail the check.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalText renders the severity in lower case for JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityError:
		return []byte("error"), nil
	default:
		return []byte("warning"), nil
	}
}

// Finding is a single problem found by Run.
type Finding struct {
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	// Source is the config field path (nav[1].link) or page file that holds
	// the reference.
	Source     string `json:"source"`
	Target     string `json:"target"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Options controls strictness and exclusions.
type Options struct {
	FailOnOrphans      bool
	FailOnContentLinks bool
	// IgnoreOrphans lists routes, or route prefixes ending in "/", that are
	// never reported as orphans.
	IgnoreOrphans []string
}

// Report is the outcome of a check.
type Report struct {
	PagesTotal   int       `json:"pages_total"`
	TargetsTotal int       `json:"targets_total"`
	Dangling     []Finding `json:"dangling"`
	Orphans      []Finding `json:"orphans"`
	ContentLinks []Finding `json:"content_links"`
}

// Findings returns every finding, dangling targets first.
func (r *Report) Findings() []Finding {
	out := make([]Finding, 0, len(r.Dangling)+len(r.Orphans)+len(r.ContentLinks))
	out = append(out, r.Dangling...)
	out = append(out, r.Orphans...)
	return append(out, r.ContentLinks...)
}

// ErrorCount returns the number of error-level findings.
func (r *Report) ErrorCount() int {
	n := 0
	for _, f := range r.Findings() {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-level findings.
func (r *Report) WarningCount() int {
	return len(r.Findings()) - r.ErrorCount()
}

// Clean reports whether the check found nothing at all.
func (r *Report) Clean() bool {
	return len(r.Dangling)+len(r.Orphans)+len(r.ContentLinks) == 0
}
