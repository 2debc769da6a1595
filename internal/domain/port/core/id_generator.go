package core

// IDGenerator produces identifiers for new records. Kept behind a port so
// tests can use deterministic IDs.
type IDGenerator interface {
	// NewID returns a globally unique record identifier
	NewID() string
	// NewMembershipID returns a human-readable membership number,
	// e.g. "SA-SILVER-X4K2P9"
	NewMembershipID() string
}
