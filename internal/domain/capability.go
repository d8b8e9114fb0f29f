package domain

import "strings"

// Capability is a named permission consulted by the role policy. It is
// independent of HTTP paths; handlers declare the capability they need and
// the guard evaluates it against the principal's role.
type Capability string

const (
	CapAdminAny         Capability = "admin.any"
	CapAdminFinance     Capability = "admin.finance"
	CapAdminAnalytics   Capability = "admin.analytics"
	CapAdminCommand     Capability = "admin.command"
	CapSellerManage     Capability = "seller.manage"
	CapRestaurantManage Capability = "restaurant.manage"
	CapHotelManage      Capability = "hotel.manage"
	CapRideCaptain      Capability = "ride.captain"
	CapDeliveryDriver   Capability = "delivery.driver"
	CapUserSelf         Capability = "user.self"
)

// capabilityRoles is the static permission table. Deny is the default:
// a capability absent from this table is granted to nobody but super_admin.
var capabilityRoles = map[Capability][]Role{
	CapAdminAny:         {RoleAdmin},
	CapAdminFinance:     {RoleAdmin, RoleFinanceAdmin},
	CapAdminAnalytics:   {RoleAdmin, RoleAnalyst},
	CapAdminCommand:     {RoleAdmin},
	CapSellerManage:     {RoleSeller, RoleAdmin},
	CapRestaurantManage: {RoleRestaurantOwner, RoleAdmin},
	CapHotelManage:      {RoleHotelManager, RoleAdmin},
	CapRideCaptain:      {RoleCaptain, RoleAdmin},
	CapDeliveryDriver:   {RoleDriver, RoleAdmin},
}

// Permits reports whether a role satisfies the capability. super_admin
// implicitly satisfies every capability; user.self admits any known role.
func (c Capability) Permits(role Role) bool {
	if _, known := allRoles[role]; !known {
		return false
	}
	if role == RoleSuperAdmin {
		return true
	}
	if c == CapUserSelf {
		return true
	}
	for _, allowed := range capabilityRoles[c] {
		if allowed == role {
			return true
		}
	}
	return false
}

// AdminScoped reports whether the capability touches the admin surface.
// The guard re-reads the subject for admin-scoped checks so a suspended
// admin cannot ride out a still-valid token.
func (c Capability) AdminScoped() bool {
	return strings.HasPrefix(string(c), "admin.")
}
