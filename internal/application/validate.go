package application

import (
	"strings"

	"github.com/oceansouq/platform-core/internal/domain"
)

var serviceTypes = map[string]struct{}{
	"cleaning":       {},
	"ac_maintenance": {},
	"plumbing":       {},
	"electrical":     {},
	"car_wash":       {},
	"moving":         {},
	"painting":       {},
	"carpentry":      {},
}

// normalizeEmail lowercases and shape-checks an email address: non-empty
// local part, exactly one @, and a dotted non-empty domain.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || strings.Count(email, "@") != 1 {
		return "", &domain.FieldError{Field: "email"}
	}
	at := strings.Index(email, "@")
	local, host := email[:at], email[at+1:]
	if local == "" || host == "" {
		return "", &domain.FieldError{Field: "email"}
	}
	if !strings.Contains(host, ".") || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return "", &domain.FieldError{Field: "email"}
	}
	return email, nil
}

// validateRegistration enforces the per-kind required fields.
func validateRegistration(kind domain.ProviderKind, req RegisterRequest) error {
	if strings.TrimSpace(req.Password) == "" {
		return &domain.FieldError{Field: "password"}
	}
	if strings.TrimSpace(req.Name) == "" {
		return &domain.FieldError{Field: "name"}
	}

	switch kind {
	case domain.KindSeller:
		if err := requireAll(map[string]string{
			"store_name": req.StoreName,
			"category":   req.Category,
			"address":    req.Address,
		}); err != nil {
			return err
		}
	case domain.KindDriver, domain.KindCaptain:
		if err := requireAll(map[string]string{
			"license_number": req.LicenseNumber,
			"vehicle_type":   req.VehicleType,
			"id_number":      req.IDNumber,
		}); err != nil {
			return err
		}
	case domain.KindRestaurant:
		if err := requireAll(map[string]string{
			"restaurant_name": req.RestaurantName,
			"address":         req.Address,
		}); err != nil {
			return err
		}
	case domain.KindHotel:
		if strings.TrimSpace(req.HotelName) == "" {
			return &domain.FieldError{Field: "hotel_name"}
		}
		if req.TotalRooms < 1 {
			return &domain.FieldError{Field: "total_rooms"}
		}
		if req.StarRating < 1 || req.StarRating > 5 {
			return &domain.FieldError{Field: "star_rating"}
		}
	case domain.KindServiceProvider:
		if _, ok := serviceTypes[strings.ToLower(strings.TrimSpace(req.ServiceType))]; !ok {
			return &domain.FieldError{Field: "service_type"}
		}
	}
	return nil
}

func requireAll(fields map[string]string) error {
	// Deterministic order keeps error messages stable across runs.
	for _, name := range []string{
		"store_name", "category", "address",
		"license_number", "vehicle_type", "id_number",
		"restaurant_name",
	} {
		value, present := fields[name]
		if present && strings.TrimSpace(value) == "" {
			return &domain.FieldError{Field: name}
		}
	}
	return nil
}

// kindProfile assembles the kind-specific registration fields into the
// subject's profile document.
func kindProfile(kind domain.ProviderKind, req RegisterRequest) map[string]any {
	profile := map[string]any{}
	if req.Phone != "" {
		profile["phone"] = req.Phone
	}
	switch kind {
	case domain.KindSeller:
		profile["store_name"] = req.StoreName
		profile["category"] = req.Category
		profile["address"] = req.Address
	case domain.KindDriver, domain.KindCaptain:
		profile["license_number"] = req.LicenseNumber
		profile["vehicle_type"] = req.VehicleType
		profile["id_number"] = req.IDNumber
	case domain.KindRestaurant:
		profile["restaurant_name"] = req.RestaurantName
		profile["address"] = req.Address
	case domain.KindHotel:
		profile["hotel_name"] = req.HotelName
		profile["total_rooms"] = req.TotalRooms
		profile["star_rating"] = req.StarRating
	case domain.KindServiceProvider:
		profile["service_type"] = strings.ToLower(strings.TrimSpace(req.ServiceType))
	}
	if len(profile) == 0 {
		return nil
	}
	return profile
}
