// Package resource holds the default-settings substrate consulted when an
// open profile does not set a key.
//
// The table is filled once during startup from X-resource style strings and
// is read-only afterwards, so it may be shared across concurrently open
// readers without synchronization.
package resource

import (
	"fmt"
	"strings"
)

// Table is a flat last-write-wins override table keyed identically to
// session settings. It implements domain.Fallback.
type Table struct {
	values map[string]string
}

// New returns an empty table.
func New() *Table {
	return &Table{values: make(map[string]string)}
}

// Provide parses one resource string of the form "prefix.key: value" or
// "prefix*key: value" and records the key. The prefix up to the last '.' or
// '*' before the colon is discarded, and whitespace after the colon is
// skipped. A later line for the same key overrides the earlier one.
func (t *Table) Provide(line string) error {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return fmt.Errorf("resource string %q: expected a colon", line)
	}
	key := line[:colon]
	if i := strings.LastIndexAny(key, ".*"); i >= 0 {
		key = key[i+1:]
	}
	t.values[key] = strings.TrimLeft(line[colon+1:], " \t")
	return nil
}

// Lookup returns the default recorded for key, if any.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Len returns the number of recorded defaults.
func (t *Table) Len() int { return len(t.values) }
