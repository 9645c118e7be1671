package site

// RemoveNavEntry returns nav without the top-level entry labelled label, the
// removed entry, and the index it occupied. nav itself is not modified.
func RemoveNavEntry(nav []NavEntry, label string) (rest []NavEntry, removed NavEntry, index int, ok bool) {
	for i, e := range nav {
		if e.Label != label {
			continue
		}
		rest = make([]NavEntry, 0, len(nav)-1)
		rest = append(rest, cloneNav(nav[:i])...)
		rest = append(rest, cloneNav(nav[i+1:])...)
		return rest, cloneNav([]NavEntry{e})[0], i, true
	}
	return cloneNav(nav), NavEntry{}, -1, false
}

// InsertNavEntry returns a copy of nav with entry placed at index. An index
// outside the list appends.
func InsertNavEntry(nav []NavEntry, index int, entry NavEntry) []NavEntry {
	if index < 0 || index > len(nav) {
		index = len(nav)
	}
	out := make([]NavEntry, 0, len(nav)+1)
	out = append(out, cloneNav(nav[:index])...)
	out = append(out, cloneNav([]NavEntry{entry})...)
	out = append(out, cloneNav(nav[index:])...)
	return out
}

// NavTargets lists every nav target, dropdown children included, in display order.
func NavTargets(nav []NavEntry) []string {
	var out []string
	for _, e := range nav {
		if e.Target != "" {
			out = append(out, e.Target)
		}
		out = append(out, NavTargets(e.Children)...)
	}
	return out
}
