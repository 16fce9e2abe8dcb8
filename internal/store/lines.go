package store

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is an insertion-ordered set of key=value settings. Setting an
// existing key replaces its value without moving the key.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores value under key, overwriting any earlier value.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (r *Record) Len() int { return len(r.keys) }

// Each calls fn for every entry in insertion order.
func (r *Record) Each(fn func(key, value string)) {
	for _, k := range r.keys {
		fn(k, r.values[k])
	}
}

// ParseRecord reads newline-terminated key=value lines from rd. Lines may be
// arbitrarily long. A line with no '=' is skipped, not an error; otherwise
// the first '=' splits key from value and the value is cut at any trailing
// CR/LF. No content decoding happens here, only structural splitting. On a
// duplicate key the last occurrence wins.
func ParseRecord(rd io.Reader) (*Record, error) {
	br := bufio.NewReader(rd)
	rec := NewRecord()
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if k, v, ok := strings.Cut(line, "="); ok {
				if i := strings.IndexAny(v, "\r\n"); i >= 0 {
					v = v[:i]
				}
				rec.Set(k, v)
			}
		}
		if err == io.EOF {
			return rec, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// WriteTo emits one key=value line per entry, in insertion order.
func (r *Record) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, k := range r.keys {
		n, err := fmt.Fprintf(w, "%s=%s\n", k, r.values[k])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
