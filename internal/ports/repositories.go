package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oceansouq/platform-core/internal/domain"
)

// SubjectRepository defines persistence operations for identity subjects.
// The store is treated as an opaque document collection: the core reads and
// writes whole subjects and never caches rows beyond a single request.
// Every call must respect the caller's deadline; an abandoned round-trip
// maps to domain.ErrUnavailable.
type SubjectRepository interface {
	Create(ctx context.Context, subject domain.Subject) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Subject, error)
	GetByEmail(ctx context.Context, email string) (domain.Subject, error)
	List(ctx context.Context, limit, offset int) ([]domain.Subject, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, updatedAt time.Time) error
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role, updatedAt time.Time) error
}
