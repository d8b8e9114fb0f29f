package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/oceansouq/platform-core/internal/domain"
	"github.com/oceansouq/platform-core/internal/ports"
)

type Service struct {
	cfg      Config
	subjects ports.SubjectRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenCodec
	regLock  ports.RegistrationLock
	nowFn    func() time.Time
}

type Dependencies struct {
	Config   Config
	Subjects ports.SubjectRepository
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenCodec
	RegLock  ports.RegistrationLock
}

func NewService(deps Dependencies) *Service {
	return &Service{
		cfg:      deps.Config,
		subjects: deps.Subjects,
		hasher:   deps.Hasher,
		tokens:   deps.Tokens,
		regLock:  deps.RegLock,
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a new subject of the given provider kind and issues its
// first credential. The only persistent effect is the subject insert; a
// duplicate email fails cleanly with ErrEmailTaken.
func (s *Service) Register(ctx context.Context, kind domain.ProviderKind, req RegisterRequest) (AuthResponse, error) {
	role, ok := domain.RoleForKind(kind)
	if !ok {
		return AuthResponse{}, &domain.FieldError{Field: "kind"}
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return AuthResponse{}, err
	}
	if err := validateRegistration(kind, req); err != nil {
		return AuthResponse{}, err
	}

	// Registration is serialized per email: the store gives no unique-index
	// guarantee, so the lock establishes happens-before between the
	// uniqueness lookup and the insert.
	acquired, err := s.regLock.Acquire(ctx, email)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("acquire registration lock: %w", err)
	}
	if !acquired {
		return AuthResponse{}, domain.ErrEmailTaken
	}
	defer func() { _ = s.regLock.Release(ctx, email) }()

	if _, err := s.subjects.GetByEmail(ctx, email); err == nil {
		return AuthResponse{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return AuthResponse{}, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.nowFn()
	subject := domain.Subject{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         role,
		Status:       domain.StatusActive,
		Profile:      kindProfile(kind, req),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return AuthResponse{}, err
	}

	slog.Default().InfoContext(ctx, "subject registered",
		"module", "application",
		"operation", "register",
		"outcome", "success",
		"subject_id", subject.ID.String(),
		"kind", string(kind),
		"role", string(role),
	)

	return s.issueFor(subject, domain.AudienceForKind(kind))
}

// Login verifies a password against the identity store and issues a
// credential scoped to the requested audience surface. Lookup and password
// failures are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, audience domain.Audience, req LoginRequest) (AuthResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	subject, err := s.subjects.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResponse{}, domain.ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}
	if !s.hasher.Verify(subject.PasswordHash, req.Password) {
		return AuthResponse{}, domain.ErrInvalidCredentials
	}
	if subject.Status != domain.StatusActive {
		return AuthResponse{}, domain.ErrSubjectSuspended
	}
	if !audienceAdmits(audience, subject.Role) {
		return AuthResponse{}, domain.ErrInvalidCredentials
	}

	return s.issueFor(subject, audience)
}

// Me returns the current subject for an authenticated principal. For
// token-authoritative audiences this is the only place the store is read.
func (s *Service) Me(ctx context.Context, principal domain.Principal) (SubjectSummary, error) {
	subject, err := s.subjects.GetByID(ctx, principal.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return SubjectSummary{}, domain.ErrSubjectGone
		}
		return SubjectSummary{}, err
	}
	return toSubjectSummary(subject), nil
}

// ListSubjects serves the command-center subject directory.
func (s *Service) ListSubjects(ctx context.Context, limit, offset int) ([]SubjectSummary, error) {
	subjects, err := s.subjects.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]SubjectSummary, 0, len(subjects))
	for _, subject := range subjects {
		out = append(out, toSubjectSummary(subject))
	}
	return out, nil
}

// UpdateSubjectStatus flips a subject's soft lifecycle state. Subjects are
// never deleted; bans and suspensions go through here.
func (s *Service) UpdateSubjectStatus(ctx context.Context, actor domain.Principal, id uuid.UUID, status domain.Status) error {
	subject, err := s.subjects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.subjects.UpdateStatus(ctx, id, status, s.nowFn()); err != nil {
		return err
	}
	slog.Default().InfoContext(ctx, "subject status changed",
		"module", "application",
		"operation", "update_subject_status",
		"outcome", "success",
		"subject_id", id.String(),
		"from", string(subject.Status),
		"to", string(status),
		"actor_id", actor.SubjectID.String(),
	)
	return nil
}

// UpdateSubjectRole reassigns a subject's role. Every transition is logged
// with before/after values and the acting administrator.
func (s *Service) UpdateSubjectRole(ctx context.Context, actor domain.Principal, id uuid.UUID, role domain.Role) error {
	subject, err := s.subjects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.subjects.UpdateRole(ctx, id, role, s.nowFn()); err != nil {
		return err
	}
	slog.Default().InfoContext(ctx, "subject role changed",
		"module", "application",
		"operation", "update_subject_role",
		"outcome", "success",
		"subject_id", id.String(),
		"from", string(subject.Role),
		"to", string(role),
		"actor_id", actor.SubjectID.String(),
	)
	return nil
}

func (s *Service) issueFor(subject domain.Subject, audience domain.Audience) (AuthResponse, error) {
	ttl := s.cfg.ttlFor(audience)
	token, err := s.tokens.Issue(audience, ports.AuthClaims{
		SubjectID: subject.ID,
		Email:     subject.Email,
		Role:      subject.Role,
		Audience:  audience,
	}, ttl)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("sign token: %w", err)
	}
	return AuthResponse{
		Token:     token,
		TokenType: "bearer",
		Audience:  audience,
		ExpiresIn: int64(ttl.Seconds()),
		Subject:   toSubjectSummary(subject),
	}, nil
}

// audienceAdmits restricts which roles can sign into each token surface.
// Platform admins can enter any surface for support work.
func audienceAdmits(audience domain.Audience, role domain.Role) bool {
	if role == domain.RoleAdmin || role == domain.RoleSuperAdmin {
		return true
	}
	switch audience {
	case domain.AudienceUser:
		return true
	case domain.AudienceCommand:
		return role == domain.RoleFinanceAdmin || role == domain.RoleAnalyst
	case domain.AudienceDriver:
		return role == domain.RoleDriver
	case domain.AudienceCaptain:
		return role == domain.RoleCaptain
	case domain.AudienceRestaurant:
		return role == domain.RoleRestaurantOwner
	case domain.AudienceHotel:
		return role == domain.RoleHotelManager
	}
	return false
}
