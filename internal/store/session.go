package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"

	"plinth/internal/domain"
)

// Sessions stores named connection profiles, one key=value file per profile,
// under <root>/sessions. Reads consult an optional fallback table for keys a
// profile does not set.
type Sessions struct {
	dir      Dir
	fallback domain.Fallback
}

// NewSessions returns a profile store rooted at dir. fallback may be nil,
// in which case absent keys simply have no value.
func NewSessions(dir Dir, fallback domain.Fallback) *Sessions {
	return &Sessions{dir: dir, fallback: fallback}
}

// SessionWriter streams settings into one profile file in call order.
// Writes are produced once, sequentially, from a known schema, so nothing is
// materialized: each Put call formats one line straight into the stream.
type SessionWriter struct {
	f  *os.File
	bw *bufio.Writer
}

// OpenWrite creates or truncates the file for the named profile, making the
// sessions directory first if this is the first profile ever saved.
func (s *Sessions) OpenWrite(name string) (*SessionWriter, error) {
	if err := ensureDir(s.dir.SessionsDir()); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(s.dir.SessionFile(name), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open session %q for writing: %w", name, err)
	}
	return &SessionWriter{f: f, bw: bufio.NewWriter(f)}, nil
}

// PutString appends one key=value line. Writing the same key twice leaves
// both lines in the file; the parser's last-wins rule resolves it on read.
func (w *SessionWriter) PutString(key, value string) error {
	_, err := fmt.Fprintf(w.bw, "%s=%s\n", key, value)
	return err
}

// PutInt appends key with a base-10 rendering of value.
func (w *SessionWriter) PutInt(key string, value int) error {
	return w.PutString(key, strconv.Itoa(value))
}

// PutFilename appends a path-valued setting. Paths are opaque strings at
// this layer; the caller's schema owns their structure.
func (w *SessionWriter) PutFilename(key, path string) error {
	return w.PutString(key, path)
}

// PutFontSpec appends a font-valued setting, stored as its opaque name.
func (w *SessionWriter) PutFontSpec(key, font string) error {
	return w.PutString(key, font)
}

// Close flushes buffered lines and releases the file. The file then reflects
// exactly the lines written, in write order.
func (w *SessionWriter) Close() error {
	ferr := w.bw.Flush()
	cerr := w.f.Close()
	if ferr != nil {
		return ferr
	}
	return cerr
}

// SessionReader is a materialized view of one profile. Lookups hit the
// in-memory record first and fall through to the fallback table. A reader
// for a profile that was never saved is still usable: every lookup falls
// through, exactly as if no session were open.
type SessionReader struct {
	record   *Record
	fallback domain.Fallback
}

// OpenRead opens and parses the named profile. A missing profile is a valid
// outcome, not an error: the returned reader reports Exists() == false and
// answers lookups from the fallback alone.
func (s *Sessions) OpenRead(name string) (*SessionReader, error) {
	f, err := os.Open(s.dir.SessionFile(name))
	if errors.Is(err, os.ErrNotExist) {
		return &SessionReader{fallback: s.fallback}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open session %q: %w", name, err)
	}
	defer f.Close()
	rec, err := ParseRecord(f)
	if err != nil {
		return nil, fmt.Errorf("read session %q: %w", name, err)
	}
	return &SessionReader{record: rec, fallback: s.fallback}, nil
}

// Exists reports whether a stored file backed this reader.
func (r *SessionReader) Exists() bool { return r.record != nil }

// GetString looks key up in the profile, then in the fallback table.
func (r *SessionReader) GetString(key string) (string, bool) {
	if r.record != nil {
		if v, ok := r.record.Get(key); ok {
			return v, true
		}
	}
	if r.fallback != nil {
		if v, ok := r.fallback.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// GetInt is GetString parsed as a base-10 integer. When neither source has
// the key it returns def; when a source has the key but the text is not a
// number, the permissive leading-digit parse applies and plain junk yields 0.
func (r *SessionReader) GetInt(key string, def int) int {
	v, ok := r.GetString(key)
	if !ok {
		return def
	}
	return atoi(v)
}

// GetFilename reads a path-valued setting as its opaque string.
func (r *SessionReader) GetFilename(key string) (string, bool) {
	return r.GetString(key)
}

// GetFontSpec reads a font-valued setting as its opaque name.
func (r *SessionReader) GetFontSpec(key string) (string, bool) {
	return r.GetString(key)
}

// Each calls fn for every key the profile itself sets, in file order.
// Fallback entries are not included.
func (r *SessionReader) Each(fn func(key, value string)) {
	if r.record != nil {
		r.record.Each(fn)
	}
}

// Close releases the in-memory record.
func (r *SessionReader) Close() { r.record = nil }

// Delete removes the stored profile. A profile that was never saved is not
// an error.
func (s *Sessions) Delete(name string) error {
	err := os.Remove(s.dir.SessionFile(name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session %q: %w", name, err)
	}
	return nil
}

// atoi parses a leading base-10 integer the way C atoi does: optional
// whitespace and sign, then digits, ignoring trailing junk. Text with no
// leading digits yields 0.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
