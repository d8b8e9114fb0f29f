package ports

import (
	"time"

	"github.com/google/uuid"
	"github.com/oceansouq/platform-core/internal/domain"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}

// AuthClaims is the adapter-neutral claim set carried by every bearer
// token. ExpiresAt is absolute; the codec owns TTL arithmetic.
type AuthClaims struct {
	SubjectID uuid.UUID
	Email     string
	Role      domain.Role
	Audience  domain.Audience
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec signs and verifies compact bearer tokens per audience.
// Decode classifies failures onto the domain taxonomy: ErrTokenExpired,
// ErrTokenMalformed, ErrBadSignature.
type TokenCodec interface {
	Issue(audience domain.Audience, claims AuthClaims, ttl time.Duration) (string, error)
	Decode(audience domain.Audience, token string) (AuthClaims, error)
}
