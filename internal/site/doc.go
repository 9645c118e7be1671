// Package site defines the navigation configuration of the notes site: metadata,
// head tags, Markdown options, the top navigation bar, the prefix-keyed sidebar
// map, and social links.
//
// A Definition is plain data, convenient to write as a literal or to decode.
// New validates a Definition and wraps it in a Config, which is immutable:
// every accessor hands out copies. The external static-site generator consumes
// the exported form of a Config; this package never renders anything itself.
package site
