package app

import (
	"fmt"

	"plinth/internal/resource"
	"plinth/internal/store"
)

// Wire bundles the stores behind the CLI.
type Wire struct {
	Sessions *store.Sessions
	HostKeys *store.HostKeys
	Seed     *store.Seed
	Defaults *resource.Table
}

// NewWire constructs the dependency graph from cfg. The defaults table is
// filled from cfg.Resources before any store can read, and stays read-only
// from then on.
func NewWire(cfg Config) (*Wire, error) {
	defaults := resource.New()
	for _, line := range cfg.Resources {
		if err := defaults.Provide(line); err != nil {
			return nil, fmt.Errorf("config resources: %w", err)
		}
	}

	dir := store.Dir(cfg.Dir)
	return &Wire{
		Sessions: store.NewSessions(dir, defaults),
		HostKeys: store.NewHostKeys(dir),
		Seed:     store.NewSeed(dir),
		Defaults: defaults,
	}, nil
}
