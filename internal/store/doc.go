// Package store provides file-based persistence for the client's durable
// state, rooted at a single storage directory.
//
// It contains concrete implementations of the domain storage interfaces:
//
//   - Named connection profiles as key=value text files (Sessions)
//   - The trust store of previously seen host keys (HostKeys)
//   - The entropy seed carried across process runs (Seed)
//
// Profile names round-trip through a reversible filename-safe encoding
// (EncodeName/DecodeName), so any name the user picks becomes a legal path
// component. All I/O is synchronous and unlocked: the store assumes a single
// process per storage root.
package store
