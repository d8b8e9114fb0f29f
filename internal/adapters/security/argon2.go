package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	defaultMemoryKB    = 64 * 1024
	defaultIterations  = 3
	defaultParallelism = 2
	saltLength         = 16
	keyLength          = 32
)

// Argon2Hasher implements password hashing via argon2id. Parameters are
// embedded in the digest string, so cost can be raised over time without
// invalidating stored digests.
type Argon2Hasher struct {
	memoryKB    uint32
	iterations  uint32
	parallelism uint8
}

// NewArgon2Hasher creates an argon2id hasher. Non-positive parameters fall
// back to defaults tuned for roughly 100ms per verify on server hardware.
func NewArgon2Hasher(memoryKB, iterations, parallelism int) *Argon2Hasher {
	h := &Argon2Hasher{
		memoryKB:    defaultMemoryKB,
		iterations:  defaultIterations,
		parallelism: defaultParallelism,
	}
	if memoryKB > 0 {
		h.memoryKB = uint32(memoryKB)
	}
	if iterations > 0 {
		h.iterations = uint32(iterations)
	}
	if parallelism > 0 && parallelism < 256 {
		h.parallelism = uint8(parallelism)
	}
	return h
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memoryKB, h.parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memoryKB,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify re-derives the key with the parameters stored in the digest and
// compares in constant time. Undecodable digests verify as false rather
// than erroring, so callers cannot distinguish them from a wrong password.
func (h *Argon2Hasher) Verify(digest, password string) bool {
	memoryKB, iterations, parallelism, salt, key, err := parseDigest(digest)
	if err != nil {
		return false
	}
	derived := argon2.IDKey([]byte(password), salt, iterations, memoryKB, parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(derived, key) == 1
}

func parseDigest(digest string) (memoryKB, iterations uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, fmt.Errorf("unsupported digest format")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("parse version: %w", err)
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var m, t uint32
	var p uint8
	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("parse parameters: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("decode salt: %w", err)
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("decode key: %w", err)
	}
	return m, t, p, salt, key, nil
}
