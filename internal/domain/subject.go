package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles recognized across the platform.
// Handlers must never compare against raw strings; this enumeration is the
// single source of truth for the capability policy.
type Role string

const (
	RoleBuyer              Role = "buyer"
	RoleSeller             Role = "seller"
	RoleAdmin              Role = "admin"
	RoleSuperAdmin         Role = "super_admin"
	RoleCaptain            Role = "captain"
	RoleDriver             Role = "driver"
	RoleRestaurantOwner    Role = "restaurant_owner"
	RoleHotelManager       Role = "hotel_manager"
	RoleServiceProvider    Role = "service_provider"
	RoleExperienceProvider Role = "experience_provider"
	RoleFinanceAdmin       Role = "finance_admin"
	RoleAnalyst            Role = "analyst"
)

var allRoles = map[Role]struct{}{
	RoleBuyer:              {},
	RoleSeller:             {},
	RoleAdmin:              {},
	RoleSuperAdmin:         {},
	RoleCaptain:            {},
	RoleDriver:             {},
	RoleRestaurantOwner:    {},
	RoleHotelManager:       {},
	RoleServiceProvider:    {},
	RoleExperienceProvider: {},
	RoleFinanceAdmin:       {},
	RoleAnalyst:            {},
}

// ParseRole maps a stored role string back onto the enumeration.
func ParseRole(raw string) (Role, bool) {
	r := Role(raw)
	_, ok := allRoles[r]
	return r, ok
}

// Status is the soft lifecycle state of a subject. Subjects are never
// deleted; banning or suspending flips this field.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusBanned    Status = "banned"
)

// ParseStatus validates a status string coming from the admin surface.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusActive, StatusSuspended, StatusBanned:
		return Status(raw), true
	}
	return "", false
}

// Audience is a named class of tokens with its own signing secret and TTL,
// corresponding to one dashboard or API surface. A token issued for one
// audience must never verify under another audience's secret.
type Audience string

const (
	AudienceUser       Audience = "user"
	AudienceCommand    Audience = "command"
	AudienceDriver     Audience = "driver"
	AudienceCaptain    Audience = "captain"
	AudienceRestaurant Audience = "restaurant"
	AudienceHotel      Audience = "hotel"
)

// Audiences enumerates every audience at compile time so configuration can
// be checked for completeness at startup.
var Audiences = []Audience{
	AudienceUser,
	AudienceCommand,
	AudienceDriver,
	AudienceCaptain,
	AudienceRestaurant,
	AudienceHotel,
}

// ProviderKind identifies what sort of account a registration creates.
type ProviderKind string

const (
	KindBuyer              ProviderKind = "buyer"
	KindSeller             ProviderKind = "seller"
	KindDriver             ProviderKind = "driver"
	KindCaptain            ProviderKind = "captain"
	KindRestaurant         ProviderKind = "restaurant"
	KindHotel              ProviderKind = "hotel"
	KindServiceProvider    ProviderKind = "service_provider"
	KindExperienceProvider ProviderKind = "experience_provider"
)

// RoleForKind derives the stored role from the registration kind.
func RoleForKind(kind ProviderKind) (Role, bool) {
	switch kind {
	case KindBuyer:
		return RoleBuyer, true
	case KindSeller:
		return RoleSeller, true
	case KindDriver:
		return RoleDriver, true
	case KindCaptain:
		return RoleCaptain, true
	case KindRestaurant:
		return RoleRestaurantOwner, true
	case KindHotel:
		return RoleHotelManager, true
	case KindServiceProvider:
		return RoleServiceProvider, true
	case KindExperienceProvider:
		return RoleExperienceProvider, true
	}
	return "", false
}

// AudienceForKind picks the token surface a freshly registered subject
// signs into. Marketplace accounts share the user surface; each operational
// dashboard has its own.
func AudienceForKind(kind ProviderKind) Audience {
	switch kind {
	case KindDriver:
		return AudienceDriver
	case KindCaptain:
		return AudienceCaptain
	case KindRestaurant:
		return AudienceRestaurant
	case KindHotel:
		return AudienceHotel
	default:
		return AudienceUser
	}
}

// Subject is the persistent identity record for a human or business
// account. Kind-specific registration fields (license numbers, room counts)
// live in the Profile document rather than dedicated columns.
type Subject struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Status       Status
	Profile      map[string]any
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated identity derived from a validated
// credential for the duration of a single request. It is never persisted.
type Principal struct {
	SubjectID uuid.UUID
	Email     string
	Role      Role
	Audience  Audience
	IssuedAt  time.Time
	ExpiresAt time.Time
}
