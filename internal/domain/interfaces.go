package domain

// Fallback supplies the default-settings substrate consulted when an open
// profile does not set a key. Implementations are read-only after
// construction and safe to share across concurrent readers.
type Fallback interface {
	Lookup(key string) (value string, ok bool)
}

// SettingsWriter streams typed settings into one profile, one line per call,
// in call order. Repeated keys are not deduplicated here; the read side's
// last-wins rule resolves them.
type SettingsWriter interface {
	PutString(key, value string) error
	PutInt(key string, value int) error
	PutFilename(key, path string) error
	PutFontSpec(key, font string) error
	Close() error
}

// SettingsReader answers typed lookups against one opened profile, falling
// through to the Fallback table for keys the profile does not set. A reader
// for a profile that was never saved still answers every lookup from the
// fallback alone.
type SettingsReader interface {
	Exists() bool
	GetString(key string) (string, bool)
	GetInt(key string, def int) int
	GetFilename(key string) (string, bool)
	GetFontSpec(key string) (string, bool)
	Close()
}

// SettingsEnum walks stored profile names. Order is whatever the underlying
// directory yields; the sequence is lazy and not restartable.
type SettingsEnum interface {
	Next() (name string, ok bool)
	Close()
}

// HostKeyStore records previously seen host public keys and answers the
// tri-state trust query for an offered key.
type HostKeyStore interface {
	Verify(hostname string, port int, keytype, keydata string) (TrustResult, error)
	Add(hostname string, port int, keytype, keydata string) error
	Entries() ([]HostKeyEntry, error)
}

// SeedStore persists the entropy blob carried across process runs. Both
// operations are best effort and never report failure: entropy on disk is a
// bonus, not something worth failing the client over.
type SeedStore interface {
	Read(consumer func(chunk []byte))
	Write(data []byte)
}
