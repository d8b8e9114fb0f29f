package application

import (
	"context"
	"errors"
	"strings"

	"github.com/oceansouq/platform-core/internal/domain"
)

// Authenticate is the request-time auth predicate. It turns a raw
// Authorization header into a Principal for the expected audience, or a
// typed failure from the domain taxonomy. It is a pure function of its
// inputs and the identity store snapshot; nothing is cached or mutated.
//
// For the command audience, and for admin-scoped capabilities on the user
// audience, the subject is re-read so that suspension takes effect before
// the token expires. The dashboard audiences (driver, captain, restaurant,
// hotel) trust the token for its whole TTL.
func (s *Service) Authenticate(ctx context.Context, authorization string, audience domain.Audience, capability domain.Capability) (domain.Principal, error) {
	token := extractBearer(authorization)
	if token == "" {
		return domain.Principal{}, domain.ErrMissingCredential
	}

	claims, err := s.tokens.Decode(audience, token)
	if err != nil {
		return domain.Principal{}, err
	}

	role := claims.Role
	if s.requiresLiveSubject(audience, capability) {
		subject, err := s.subjects.GetByID(ctx, claims.SubjectID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Principal{}, domain.ErrSubjectGone
			}
			return domain.Principal{}, err
		}
		if subject.Status != domain.StatusActive {
			return domain.Principal{}, domain.ErrSubjectSuspended
		}
		// The stored role is authoritative over the token's snapshot.
		role = subject.Role
	}

	if capability != "" && !capability.Permits(role) {
		return domain.Principal{}, &domain.CapabilityError{Capability: capability}
	}

	return domain.Principal{
		SubjectID: claims.SubjectID,
		Email:     claims.Email,
		Role:      role,
		Audience:  audience,
		IssuedAt:  claims.IssuedAt,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (s *Service) requiresLiveSubject(audience domain.Audience, capability domain.Capability) bool {
	if audience == domain.AudienceCommand {
		return true
	}
	return audience == domain.AudienceUser && capability.AdminScoped()
}

// extractBearer accepts either "Bearer <token>" or the raw token as the
// header value. The prefix match is case-sensitive.
func extractBearer(header string) string {
	value := strings.TrimSpace(header)
	if value == "" {
		return ""
	}
	if rest, found := strings.CutPrefix(value, "Bearer "); found {
		return strings.TrimSpace(rest)
	}
	return value
}
