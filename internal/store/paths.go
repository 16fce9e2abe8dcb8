package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	sessionsDirName = "sessions"
	hostKeysName    = "sshhostkeys"
	seedName        = "randomseed"
)

// Dir is the storage root for one user. Session files live under sessions/,
// the host key and random seed files sit at the top level.
type Dir string

// SessionsDir returns the directory holding the encoded profile files.
func (d Dir) SessionsDir() string {
	return filepath.Join(string(d), sessionsDirName)
}

// SessionFile returns the path of one profile, encoding the name into a
// safe path component.
func (d Dir) SessionFile(name string) string {
	return filepath.Join(d.SessionsDir(), EncodeName(name))
}

// HostKeysFile returns the path of the shared trust store file.
func (d Dir) HostKeysFile() string {
	return filepath.Join(string(d), hostKeysName)
}

// SeedFile returns the path of the random seed file.
func (d Dir) SeedFile() string {
	return filepath.Join(string(d), seedName)
}

// ensureDir creates path (and any missing parents) as a private directory.
// An already existing directory is success.
func ensureDir(path string) error {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}
