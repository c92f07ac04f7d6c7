package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted, opaque digests and
// checks candidates against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash returns base64(salt || digest) for a fresh random salt, so two
	// calls with the same plaintext produce different results.
	Hash(plaintext string) (string, error)

	// Verify reports whether candidate hashes to stored. Malformed stored
	// values never match.
	Verify(candidate, stored string) bool

	// Algorithm is the name of the digest in use.
	Algorithm() string
}
