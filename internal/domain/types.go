package domain

import "fmt"

// TrustResult is the outcome of checking an offered host key against the
// trust store.
type TrustResult int

const (
	// TrustAbsent means no key is recorded for the host identity. The caller
	// decides whether to trust on first use.
	TrustAbsent TrustResult = iota
	// TrustMatch means the recorded key equals the offered one.
	TrustMatch
	// TrustMismatch means a key is recorded and it differs from the offered
	// one. This may indicate a man-in-the-middle.
	TrustMismatch
)

func (r TrustResult) String() string {
	switch r {
	case TrustAbsent:
		return "absent"
	case TrustMatch:
		return "match"
	case TrustMismatch:
		return "mismatch"
	}
	return fmt.Sprintf("TrustResult(%d)", int(r))
}

// HostKeyEntry is one recorded host key. Identity for lookup is
// (Keytype, Port, Hostname); KeyData is the payload compared for trust
// decisions and is opaque at this layer.
type HostKeyEntry struct {
	Keytype  string
	Port     int
	Hostname string
	KeyData  string
}
