package store

import (
	"os"
	"path/filepath"
)

// SessionEnum is a lazy, non-restartable walk over stored profile names.
// Order is whatever the directory yields; callers must not assume it sorted.
type SessionEnum struct {
	dir string
	f   *os.File
}

// Enum starts an enumeration of stored profiles. When the sessions directory
// does not exist yet (fresh install) the cursor is inert and Next returns
// nothing.
func (s *Sessions) Enum() *SessionEnum {
	dir := s.dir.SessionsDir()
	f, err := os.Open(dir)
	if err != nil {
		return &SessionEnum{}
	}
	return &SessionEnum{dir: dir, f: f}
}

// Next advances to the next directory entry naming a regular file, decodes
// its filename and returns the profile name. Directories, special files and
// symlinks to anything but a regular file are skipped; the stat follows
// symlinks, so a link to a regular file is listed. ok is false once entries
// are exhausted.
func (e *SessionEnum) Next() (name string, ok bool) {
	if e.f == nil {
		return "", false
	}
	for {
		ents, err := e.f.ReadDir(1)
		if err != nil || len(ents) == 0 {
			return "", false
		}
		entry := ents[0].Name()
		fi, err := os.Stat(filepath.Join(e.dir, entry))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		return DecodeName(entry), true
	}
}

// Close releases the directory handle. The cursor may not be reused.
func (e *SessionEnum) Close() {
	if e.f != nil {
		e.f.Close()
		e.f = nil
	}
}
