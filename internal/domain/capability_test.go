package domain

import "testing"

func TestCapabilityPermits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		capability Capability
		role       Role
		want       bool
	}{
		{name: "admin on admin.any", capability: CapAdminAny, role: RoleAdmin, want: true},
		{name: "buyer on admin.any", capability: CapAdminAny, role: RoleBuyer, want: false},
		{name: "finance_admin on admin.finance", capability: CapAdminFinance, role: RoleFinanceAdmin, want: true},
		{name: "finance_admin on admin.analytics", capability: CapAdminAnalytics, role: RoleFinanceAdmin, want: false},
		{name: "analyst on admin.analytics", capability: CapAdminAnalytics, role: RoleAnalyst, want: true},
		{name: "analyst on admin.finance", capability: CapAdminFinance, role: RoleAnalyst, want: false},
		{name: "analyst on admin.command", capability: CapAdminCommand, role: RoleAnalyst, want: false},
		{name: "seller on seller.manage", capability: CapSellerManage, role: RoleSeller, want: true},
		{name: "buyer on seller.manage", capability: CapSellerManage, role: RoleBuyer, want: false},
		{name: "restaurant_owner on restaurant.manage", capability: CapRestaurantManage, role: RoleRestaurantOwner, want: true},
		{name: "hotel_manager on restaurant.manage", capability: CapRestaurantManage, role: RoleHotelManager, want: false},
		{name: "hotel_manager on hotel.manage", capability: CapHotelManage, role: RoleHotelManager, want: true},
		{name: "captain on ride.captain", capability: CapRideCaptain, role: RoleCaptain, want: true},
		{name: "driver on ride.captain", capability: CapRideCaptain, role: RoleDriver, want: false},
		{name: "driver on delivery.driver", capability: CapDeliveryDriver, role: RoleDriver, want: true},
		{name: "admin on delivery.driver", capability: CapDeliveryDriver, role: RoleAdmin, want: true},
		{name: "buyer on user.self", capability: CapUserSelf, role: RoleBuyer, want: true},
		{name: "analyst on user.self", capability: CapUserSelf, role: RoleAnalyst, want: true},
		{name: "unknown role on user.self", capability: CapUserSelf, role: Role("ghost"), want: false},
		{name: "unknown capability denied", capability: Capability("fleet.dispatch"), role: RoleAdmin, want: false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.capability.Permits(tc.role); got != tc.want {
				t.Fatalf("Permits(%s, %s) = %v, want %v", tc.capability, tc.role, got, tc.want)
			}
		})
	}
}

func TestSuperAdminPermitsEverything(t *testing.T) {
	t.Parallel()

	capabilities := []Capability{
		CapAdminAny, CapAdminFinance, CapAdminAnalytics, CapAdminCommand,
		CapSellerManage, CapRestaurantManage, CapHotelManage,
		CapRideCaptain, CapDeliveryDriver, CapUserSelf,
		Capability("fleet.dispatch"),
	}
	for _, c := range capabilities {
		if !c.Permits(RoleSuperAdmin) {
			t.Fatalf("super_admin denied %s", c)
		}
	}
}

func TestCapabilityAdminScoped(t *testing.T) {
	t.Parallel()

	cases := []struct {
		capability Capability
		want       bool
	}{
		{capability: CapAdminAny, want: true},
		{capability: CapAdminFinance, want: true},
		{capability: CapAdminAnalytics, want: true},
		{capability: CapAdminCommand, want: true},
		{capability: CapSellerManage, want: false},
		{capability: CapUserSelf, want: false},
		{capability: CapRideCaptain, want: false},
	}
	for _, tc := range cases {
		if got := tc.capability.AdminScoped(); got != tc.want {
			t.Fatalf("AdminScoped(%s) = %v, want %v", tc.capability, got, tc.want)
		}
	}
}

func TestRoleForKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind ProviderKind
		role Role
	}{
		{kind: KindBuyer, role: RoleBuyer},
		{kind: KindSeller, role: RoleSeller},
		{kind: KindDriver, role: RoleDriver},
		{kind: KindCaptain, role: RoleCaptain},
		{kind: KindRestaurant, role: RoleRestaurantOwner},
		{kind: KindHotel, role: RoleHotelManager},
		{kind: KindServiceProvider, role: RoleServiceProvider},
		{kind: KindExperienceProvider, role: RoleExperienceProvider},
	}
	for _, tc := range cases {
		role, ok := RoleForKind(tc.kind)
		if !ok || role != tc.role {
			t.Fatalf("RoleForKind(%s) = %s, %v; want %s", tc.kind, role, ok, tc.role)
		}
	}
	if _, ok := RoleForKind(ProviderKind("alien")); ok {
		t.Fatal("unknown kind must not map to a role")
	}
}

func TestAudienceForKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind ProviderKind
		want Audience
	}{
		{kind: KindBuyer, want: AudienceUser},
		{kind: KindSeller, want: AudienceUser},
		{kind: KindServiceProvider, want: AudienceUser},
		{kind: KindExperienceProvider, want: AudienceUser},
		{kind: KindDriver, want: AudienceDriver},
		{kind: KindCaptain, want: AudienceCaptain},
		{kind: KindRestaurant, want: AudienceRestaurant},
		{kind: KindHotel, want: AudienceHotel},
	}
	for _, tc := range cases {
		if got := AudienceForKind(tc.kind); got != tc.want {
			t.Fatalf("AudienceForKind(%s) = %s, want %s", tc.kind, got, tc.want)
		}
	}
}
