package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"plinth/internal/domain"
)

// HostKeys is the append-only trust store of previously seen host keys, one
// entry per line in a single shared file:
//
//	keytype@port:hostname keydata
//
// e.g.
//
//	rsa@22:foovax.example.org 0x23,0x293487364395345345....2343
type HostKeys struct {
	dir Dir
}

// NewHostKeys returns a trust store rooted at dir.
func NewHostKeys(dir Dir) *HostKeys {
	return &HostKeys{dir: dir}
}

// Verify checks an offered key against the trust store. A missing file means
// no key was ever recorded (TrustAbsent). Otherwise lines are scanned front
// to back; the first line whose keytype, port and hostname match the query
// decides the answer, by byte-comparing its key payload. The scan stops
// there: a stale line for an identity masks any newer one appended after it.
func (h *HostKeys) Verify(hostname string, port int, keytype, keydata string) (domain.TrustResult, error) {
	f, err := os.Open(h.dir.HostKeysFile())
	if errors.Is(err, os.ErrNotExist) {
		return domain.TrustAbsent, nil
	}
	if err != nil {
		return domain.TrustAbsent, fmt.Errorf("open host key store: %w", err)
	}
	defer f.Close()

	prefix := identityPrefix(hostname, port, keytype)
	br := bufio.NewReader(f)
	for {
		line, rerr := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			if rest, ok := strings.CutPrefix(line, prefix); ok {
				if rest == keydata {
					return domain.TrustMatch, nil
				}
				return domain.TrustMismatch, nil
			}
		}
		if rerr == io.EOF {
			return domain.TrustAbsent, nil
		}
		if rerr != nil {
			return domain.TrustAbsent, fmt.Errorf("read host key store: %w", rerr)
		}
	}
}

// Add records a key for the identity by appending one line, creating the
// storage root on demand. Nothing is removed or rewritten: after a
// deliberate key replacement the old line still sits ahead of the new one,
// and Verify keeps answering from it until the file is cleaned up by hand.
func (h *HostKeys) Add(hostname string, port int, keytype, keydata string) error {
	path := h.dir.HostKeysFile()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		if derr := ensureDir(string(h.dir)); derr != nil {
			return derr
		}
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	}
	if err != nil {
		return fmt.Errorf("open host key store: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%s@%d:%s %s\n", keytype, port, hostname, keydata); err != nil {
		f.Close()
		return fmt.Errorf("append host key: %w", err)
	}
	return f.Close()
}

// Entries returns every parseable line of the trust store in file order,
// including stale duplicates. Lines that do not fit the entry format are
// skipped. A missing file yields no entries.
func (h *HostKeys) Entries() ([]domain.HostKeyEntry, error) {
	f, err := os.Open(h.dir.HostKeysFile())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open host key store: %w", err)
	}
	defer f.Close()

	var entries []domain.HostKeyEntry
	br := bufio.NewReader(f)
	for {
		line, rerr := br.ReadString('\n')
		if line != "" {
			if e, ok := parseHostKeyLine(strings.TrimSuffix(line, "\n")); ok {
				entries = append(entries, e)
			}
		}
		if rerr == io.EOF {
			return entries, nil
		}
		if rerr != nil {
			return entries, fmt.Errorf("read host key store: %w", rerr)
		}
	}
}

func identityPrefix(hostname string, port int, keytype string) string {
	return fmt.Sprintf("%s@%d:%s ", keytype, port, hostname)
}

func parseHostKeyLine(line string) (domain.HostKeyEntry, bool) {
	keytype, rest, ok := strings.Cut(line, "@")
	if !ok {
		return domain.HostKeyEntry{}, false
	}
	portText, rest, ok := strings.Cut(rest, ":")
	if !ok {
		return domain.HostKeyEntry{}, false
	}
	port, err := strconv.Atoi(portText)
	if err != nil {
		return domain.HostKeyEntry{}, false
	}
	hostname, keydata, ok := strings.Cut(rest, " ")
	if !ok {
		return domain.HostKeyEntry{}, false
	}
	return domain.HostKeyEntry{
		Keytype:  keytype,
		Port:     port,
		Hostname: hostname,
		KeyData:  keydata,
	}, true
}
