package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/oceansouq/platform-core/internal/domain"
	"github.com/oceansouq/platform-core/internal/ports"
)

// TokenCodec implements HS256 signing/verification with an independent
// secret per audience. Audience-scoped secrets are the primary isolation
// boundary between the customer API and the operational dashboards.
type TokenCodec struct {
	secrets map[domain.Audience][]byte
	nowFn   func() time.Time
}

// NewTokenCodec builds a codec from configured audience secrets. Every
// audience of the compile-time enumeration must carry a non-empty secret.
func NewTokenCodec(secrets map[domain.Audience]string) (*TokenCodec, error) {
	resolved := make(map[domain.Audience][]byte, len(domain.Audiences))
	for _, aud := range domain.Audiences {
		secret := secrets[aud]
		if secret == "" {
			return nil, fmt.Errorf("missing signing secret for audience %q", aud)
		}
		resolved[aud] = []byte(secret)
	}
	return &TokenCodec{
		secrets: resolved,
		nowFn:   func() time.Time { return time.Now().UTC() },
	}, nil
}

type subjectClaims struct {
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Audience  string `json:"audience"`
	jwt.RegisteredClaims
}

func (c *TokenCodec) Issue(audience domain.Audience, claims ports.AuthClaims, ttl time.Duration) (string, error) {
	secret, ok := c.secrets[audience]
	if !ok {
		return "", fmt.Errorf("unknown audience %q", audience)
	}
	now := c.nowFn()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, subjectClaims{
		SubjectID: claims.SubjectID.String(),
		Email:     claims.Email,
		Role:      string(claims.Role),
		Audience:  string(audience),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(secret)
}

func (c *TokenCodec) Decode(audience domain.Audience, raw string) (ports.AuthClaims, error) {
	secret, ok := c.secrets[audience]
	if !ok {
		return ports.AuthClaims{}, fmt.Errorf("unknown audience %q", audience)
	}

	parsed, err := jwt.ParseWithClaims(raw, &subjectClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return ports.AuthClaims{}, domain.ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return ports.AuthClaims{}, domain.ErrTokenExpired
		default:
			return ports.AuthClaims{}, domain.ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*subjectClaims)
	if !ok || !parsed.Valid {
		return ports.AuthClaims{}, domain.ErrTokenMalformed
	}
	// Reject cross-audience tokens even when two audiences happen to share
	// a secret (the copy-paste drift case).
	if claims.Audience != string(audience) {
		return ports.AuthClaims{}, domain.ErrBadSignature
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return ports.AuthClaims{}, domain.ErrTokenMalformed
	}
	// The library treats exp == now as still valid; the contract here is
	// that the boundary instant is already expired.
	if !c.nowFn().Before(claims.ExpiresAt.Time) {
		return ports.AuthClaims{}, domain.ErrTokenExpired
	}

	subjectID, err := uuid.Parse(claims.SubjectID)
	if err != nil {
		return ports.AuthClaims{}, domain.ErrTokenMalformed
	}
	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return ports.AuthClaims{}, domain.ErrTokenMalformed
	}

	return ports.AuthClaims{
		SubjectID: subjectID,
		Email:     claims.Email,
		Role:      role,
		Audience:  audience,
		IssuedAt:  claims.IssuedAt.Time.UTC(),
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}
