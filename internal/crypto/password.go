package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// SaltSize is the length in bytes of the random salt prefixed to every digest.
const SaltSize = 16

// Supported digest names.
const (
	AlgorithmSHA256   = "sha256"
	AlgorithmSHA3     = "sha3-256"
	AlgorithmBLAKE2b  = "blake2b-256"
	AlgorithmArgon2id = "argon2id"
	DefaultAlgorithm  = AlgorithmSHA256
	digestSize        = 32
	argon2Time        = 1
	argon2Memory      = 64 * 1024
	argon2Threads     = 4
)

// digestFunc computes the 32-byte digest of plaintext under salt.
type digestFunc func(salt, plaintext []byte) []byte

var digests = map[string]digestFunc{
	AlgorithmSHA256: func(salt, plaintext []byte) []byte {
		sum := sha256.Sum256(concat(salt, plaintext))
		return sum[:]
	},
	AlgorithmSHA3: func(salt, plaintext []byte) []byte {
		sum := sha3.Sum256(concat(salt, plaintext))
		return sum[:]
	},
	AlgorithmBLAKE2b: func(salt, plaintext []byte) []byte {
		sum := blake2b.Sum256(concat(salt, plaintext))
		return sum[:]
	},
	AlgorithmArgon2id: func(salt, plaintext []byte) []byte {
		return argon2.IDKey(plaintext, salt, argon2Time, argon2Memory, argon2Threads, digestSize)
	},
}

// Algorithms lists the supported digest names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type saltedHasher struct {
	name   string
	digest digestFunc
}

// NewPasswordHasher returns a [PasswordHasher] using the named digest.
// The name is case-insensitive; an empty name selects [DefaultAlgorithm].
// The sha256 variant reads hashes written by earlier releases of the store.
func NewPasswordHasher(algorithm string) (PasswordHasher, error) {
	name := strings.ToLower(strings.TrimSpace(algorithm))
	if name == "" {
		name = DefaultAlgorithm
	}

	digest, ok := digests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedAlgorithm, algorithm, strings.Join(Algorithms(), ", "))
	}

	return &saltedHasher{name: name, digest: digest}, nil
}

func (h *saltedHasher) Algorithm() string {
	return h.name
}

func (h *saltedHasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingSalt, err)
	}

	sum := h.digest(salt, []byte(plaintext))
	return base64.StdEncoding.EncodeToString(concat(salt, sum)), nil
}

func (h *saltedHasher) Verify(candidate, stored string) bool {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil || len(raw) != SaltSize+digestSize {
		return false
	}

	salt, want := raw[:SaltSize], raw[SaltSize:]
	got := h.digest(salt, []byte(candidate))
	return subtle.ConstantTimeCompare(got, want) == 1
}

func concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
