package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/oceansouq/platform-core/internal/domain"
)

type Config struct {
	// UserTokenTTL applies to the user and command audiences.
	UserTokenTTL time.Duration
	// ProviderTokenTTL applies to the dashboard audiences (driver, captain,
	// restaurant, hotel), which stay signed in for longer between shifts.
	ProviderTokenTTL time.Duration
}

func (c Config) ttlFor(audience domain.Audience) time.Duration {
	switch audience {
	case domain.AudienceUser, domain.AudienceCommand:
		return c.UserTokenTTL
	default:
		return c.ProviderTokenTTL
	}
}

// RegisterRequest is the union of registration payloads across provider
// kinds. Validation enforces the fields each kind actually requires.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`

	StoreName string `json:"store_name,omitempty"`
	Category  string `json:"category,omitempty"`
	Address   string `json:"address,omitempty"`

	LicenseNumber string `json:"license_number,omitempty"`
	VehicleType   string `json:"vehicle_type,omitempty"`
	IDNumber      string `json:"id_number,omitempty"`

	RestaurantName string `json:"restaurant_name,omitempty"`

	HotelName  string `json:"hotel_name,omitempty"`
	TotalRooms int    `json:"total_rooms,omitempty"`
	StarRating int    `json:"star_rating,omitempty"`

	ServiceType string `json:"service_type,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SubjectSummary struct {
	ID        uuid.UUID     `json:"id"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	Role      domain.Role   `json:"role"`
	Status    domain.Status `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// AuthResponse carries a freshly issued credential plus the subject it
// identifies.
type AuthResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	Audience  domain.Audience `json:"audience"`
	ExpiresIn int64           `json:"expires_in"`
	Subject   SubjectSummary  `json:"subject"`
}

func toSubjectSummary(s domain.Subject) SubjectSummary {
	return SubjectSummary{
		ID:        s.ID,
		Email:     s.Email,
		Name:      s.Name,
		Role:      s.Role,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}
