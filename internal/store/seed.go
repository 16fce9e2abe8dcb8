package store

import (
	"io"
	"os"
)

const seedChunk = 512

// Seed persists the random-number generator's carry-over entropy as a raw,
// structureless byte file. Every operation is best effort and reports no
// failure: stored entropy is a bonus, never worth destabilizing the caller.
type Seed struct {
	dir Dir
}

// NewSeed returns a seed store rooted at dir.
func NewSeed(dir Dir) *Seed {
	return &Seed{dir: dir}
}

// Read streams the stored seed to consumer in chunks of up to 512 bytes, in
// file order. A missing seed file simply contributes nothing.
func (s *Seed) Read(consumer func(chunk []byte)) {
	f, err := os.Open(s.dir.SeedFile())
	if err != nil {
		return
	}
	defer f.Close()
	buf := make([]byte, seedChunk)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			consumer(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// Write stores data as the new seed, creating the storage root on demand.
// The file is deliberately not truncated first: if the write dies half way,
// the old bytes are still there, which beats leaving zero entropy behind.
func (s *Seed) Write(data []byte) {
	path := s.dir.SeedFile()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		if ensureDir(string(s.dir)) != nil {
			return
		}
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return
		}
	}
	writeAll(f, data)
	f.Close()
}

// writeAll pushes b through w accepting short writes, stopping silently the
// first time a write makes no progress.
func writeAll(w io.Writer, b []byte) {
	for len(b) > 0 {
		n, _ := w.Write(b)
		if n <= 0 {
			return
		}
		b = b[n:]
	}
}
