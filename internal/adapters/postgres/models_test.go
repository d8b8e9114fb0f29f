package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oceansouq/platform-core/internal/domain"
)

func TestSubjectModelRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	in := domain.Subject{
		ID:           uuid.New(),
		Email:        "hotel@example.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		Name:         "Manager",
		Role:         domain.RoleHotelManager,
		Status:       domain.StatusActive,
		Profile: map[string]any{
			"hotel_name":  "Corniche Grand",
			"total_rooms": float64(120),
			"star_rating": float64(4),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	out := toDomainSubject(toSubjectModel(in))
	if out.ID != in.ID || out.Email != in.Email || out.Role != in.Role || out.Status != in.Status {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.Profile["hotel_name"] != "Corniche Grand" {
		t.Fatalf("profile lost: %+v", out.Profile)
	}
	// JSON numbers come back as float64; callers must not assume int.
	if out.Profile["total_rooms"] != float64(120) {
		t.Fatalf("total_rooms = %v", out.Profile["total_rooms"])
	}
}

func TestSubjectModelEmptyProfile(t *testing.T) {
	t.Parallel()

	rec := toSubjectModel(domain.Subject{ID: uuid.New(), Role: domain.RoleBuyer})
	if rec.Profile != "{}" {
		t.Fatalf("empty profile stored as %q, want {}", rec.Profile)
	}
	out := toDomainSubject(rec)
	if len(out.Profile) != 0 {
		t.Fatalf("expected empty profile, got %+v", out.Profile)
	}
}
