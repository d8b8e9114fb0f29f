// Package fare computes ride-hailing fare quotes from pickup and drop-off
// coordinates. It is a pure calculation with no I/O and no currency
// assumptions; amounts are plain decimals in the platform's billing unit.
package fare

import (
	"fmt"
	"math"
)

const (
	// earthRadiusKM is the spherical Earth model radius.
	earthRadiusKM = 6371.0
	// averageSpeedKMH is the city-traffic speed assumed for time estimates.
	averageSpeedKMH = 30.0
	// pickupBufferMin pads every estimate with driver-to-pickup time.
	pickupBufferMin = 5
	// windowSpreadMin is the width of the quoted arrival window.
	windowSpreadMin = 10
)

// Tier is a ride service class with fixed fare parameters.
type Tier string

const (
	TierEconomy Tier = "economy"
	TierComfort Tier = "comfort"
	TierPremium Tier = "premium"
	TierXL      Tier = "xl"
)

// TierConfig holds the pricing constants of one tier.
type TierConfig struct {
	BaseFare float64
	PerKM    float64
	MinFare  float64
}

var tiers = map[Tier]TierConfig{
	TierEconomy: {BaseFare: 5, PerKM: 1.5, MinFare: 10},
	TierComfort: {BaseFare: 8, PerKM: 2.0, MinFare: 15},
	TierPremium: {BaseFare: 15, PerKM: 3.0, MinFare: 25},
	TierXL:      {BaseFare: 12, PerKM: 2.5, MinFare: 20},
}

// ConfigFor resolves a tier's pricing. Unknown tiers quote as economy so a
// stale client can still get a ride.
func ConfigFor(tier Tier) TierConfig {
	if cfg, ok := tiers[tier]; ok {
		return cfg
	}
	return tiers[TierEconomy]
}

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Quote is the estimate returned to the rider.
type Quote struct {
	DistanceKM    float64 `json:"distance"`
	EstimatedFare float64 `json:"estimated_fare"`
	EstimatedTime string  `json:"estimated_time"`
	MinutesLow    int     `json:"-"`
	MinutesHigh   int     `json:"-"`
}

// Distance returns the great-circle distance between two points in
// kilometers, via the haversine formula.
func Distance(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}

// Estimate quotes a trip for the given tier. The fare never drops below
// the tier's minimum, and distance and fare are rounded to two decimals.
func Estimate(pickup, dropoff Point, tier Tier) Quote {
	cfg := ConfigFor(tier)
	d := Distance(pickup, dropoff)

	raw := cfg.BaseFare + d*cfg.PerKM
	estimated := math.Max(raw, cfg.MinFare)

	low := int(d/averageSpeedKMH*60) + pickupBufferMin
	high := low + windowSpreadMin

	return Quote{
		DistanceKM:    round2(d),
		EstimatedFare: round2(estimated),
		EstimatedTime: fmt.Sprintf("%d–%d min", low, high),
		MinutesLow:    low,
		MinutesHigh:   high,
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
