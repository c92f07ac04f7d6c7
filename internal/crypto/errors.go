package crypto

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned by [NewPasswordHasher] for an
	// unknown digest name.
	ErrUnsupportedAlgorithm = errors.New("unsupported password hash algorithm")

	// ErrGeneratingSalt is returned when the system random source fails.
	ErrGeneratingSalt = errors.New("failed to generate salt")
)
