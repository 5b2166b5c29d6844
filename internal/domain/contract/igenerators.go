package contract

// IUUIDGenerator generates opaque unique identifiers for new records.
type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator produces URL-safe random tokens, used for
// collision-resistant upload filenames.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}

// ISecretVerifier compares a caller-supplied admin secret against the
// configured one. Implementations must not leak timing information.
type ISecretVerifier interface {
	Verify(supplied string) bool
}
