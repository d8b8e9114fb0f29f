package fare

import (
	"math"
	"testing"
)

var (
	olayaTower   = Point{Lat: 24.7136, Lng: 46.6753}
	kingFahdPark = Point{Lat: 24.7744, Lng: 46.7386}
)

func TestDistance(t *testing.T) {
	t.Parallel()

	d := Distance(olayaTower, kingFahdPark)
	if math.Abs(d-9.3043) > 0.001 {
		t.Fatalf("distance = %f, want ~9.3043", d)
	}

	if got := Distance(olayaTower, olayaTower); got != 0 {
		t.Fatalf("zero-length trip distance = %f, want 0", got)
	}

	// Symmetric within floating-point noise.
	forward := Distance(olayaTower, kingFahdPark)
	back := Distance(kingFahdPark, olayaTower)
	if math.Abs(forward-back) > 1e-9 {
		t.Fatalf("distance not symmetric: %f vs %f", forward, back)
	}
}

func TestEstimatePerTier(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tier     Tier
		wantFare float64
	}{
		{tier: TierEconomy, wantFare: 18.96},
		{tier: TierComfort, wantFare: 26.61},
		{tier: TierPremium, wantFare: 42.91},
		{tier: TierXL, wantFare: 35.26},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.tier), func(t *testing.T) {
			t.Parallel()
			q := Estimate(olayaTower, kingFahdPark, tc.tier)
			if q.DistanceKM != 9.3 {
				t.Fatalf("distance = %f, want 9.3", q.DistanceKM)
			}
			if q.EstimatedFare != tc.wantFare {
				t.Fatalf("fare = %f, want %f", q.EstimatedFare, tc.wantFare)
			}
			if q.EstimatedTime != "23–33 min" {
				t.Fatalf("time window = %q, want %q", q.EstimatedTime, "23–33 min")
			}
			if q.MinutesHigh-q.MinutesLow != windowSpreadMin {
				t.Fatalf("window spread = %d", q.MinutesHigh-q.MinutesLow)
			}
		})
	}
}

func TestEstimateMinimumFareFloor(t *testing.T) {
	t.Parallel()

	// A ~170m hop prices below every tier's minimum; the floor applies.
	nearby := Point{Lat: 24.7150, Lng: 46.6760}

	cases := []struct {
		tier     Tier
		wantFare float64
	}{
		{tier: TierEconomy, wantFare: 10},
		{tier: TierComfort, wantFare: 15},
		{tier: TierPremium, wantFare: 25},
		{tier: TierXL, wantFare: 20},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.tier), func(t *testing.T) {
			t.Parallel()
			q := Estimate(olayaTower, nearby, tc.tier)
			if q.EstimatedFare != tc.wantFare {
				t.Fatalf("fare = %f, want %f", q.EstimatedFare, tc.wantFare)
			}
		})
	}
}

func TestEstimateZeroDistance(t *testing.T) {
	t.Parallel()

	q := Estimate(olayaTower, olayaTower, TierPremium)
	if q.DistanceKM != 0 {
		t.Fatalf("distance = %f, want 0", q.DistanceKM)
	}
	if q.EstimatedFare != 25 {
		t.Fatalf("fare = %f, want minimum 25", q.EstimatedFare)
	}
	if q.EstimatedTime != "5–15 min" {
		t.Fatalf("time window = %q, want %q", q.EstimatedTime, "5–15 min")
	}
}

func TestEstimateUnknownTierQuotesEconomy(t *testing.T) {
	t.Parallel()

	got := Estimate(olayaTower, kingFahdPark, Tier("hoverboard"))
	want := Estimate(olayaTower, kingFahdPark, TierEconomy)
	if got != want {
		t.Fatalf("unknown tier quote %+v, want economy quote %+v", got, want)
	}
}

func TestEstimateFareMonotonicInDistance(t *testing.T) {
	t.Parallel()

	prev := 0.0
	for i := 1; i <= 5; i++ {
		dest := Point{Lat: olayaTower.Lat + float64(i)*0.05, Lng: olayaTower.Lng}
		q := Estimate(olayaTower, dest, TierEconomy)
		if q.EstimatedFare < prev {
			t.Fatalf("fare decreased with distance at step %d: %f < %f", i, q.EstimatedFare, prev)
		}
		prev = q.EstimatedFare
	}
}
