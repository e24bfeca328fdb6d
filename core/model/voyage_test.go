package model

import "testing"

func validVoyage() VoyageProfile {
	return VoyageProfile{
		TimeAtBerthH:  10,
		TimeAnchoredH: 2,
		Manoeuvring:   []Leg{{DistanceNM: 2, SpeedKn: 5, DraftM: 3}},
		AtSea:         []Leg{{DistanceNM: 30, SpeedKn: 12, DraftM: 3}},
	}
}

func TestVoyageValidate(t *testing.T) {
	if err := validVoyage().Validate(); err != nil {
		t.Fatalf("valid voyage rejected: %v", err)
	}

	p := validVoyage()
	p.TimeAtBerthH = -1
	if err := p.Validate(); err == nil {
		t.Errorf("negative berth time accepted")
	}

	p = validVoyage()
	p.TimeAnchoredH = MaxVoyageHours + 1
	if err := p.Validate(); err == nil {
		t.Errorf("year-exceeding anchor time accepted")
	}

	p = validVoyage()
	p.AtSea[0].DistanceNM = -5
	if err := p.Validate(); err == nil {
		t.Errorf("negative leg distance accepted")
	}
}

func TestLegsByMode(t *testing.T) {
	p := validVoyage()
	if got := len(p.Legs(ModeManoeuvring)); got != 1 {
		t.Errorf("manoeuvring legs = %d, want 1", got)
	}
	if got := p.Legs(ModeAtBerth); got != nil {
		t.Errorf("berth phase returned legs")
	}
}

func TestTotalDistanceNM(t *testing.T) {
	if got := validVoyage().TotalDistanceNM(); got != 32 {
		t.Fatalf("total distance = %.1f, want 32", got)
	}
}

func TestWithDraftDeltaDoesNotMutate(t *testing.T) {
	p := validVoyage()
	adj := p.WithDraftDelta(0.5)
	if p.AtSea[0].DraftM != 3 {
		t.Fatalf("original profile mutated: draft %.2f", p.AtSea[0].DraftM)
	}
	if adj.AtSea[0].DraftM != 3.5 || adj.Manoeuvring[0].DraftM != 3.5 {
		t.Fatalf("adjusted drafts = %.2f / %.2f, want 3.5", adj.AtSea[0].DraftM, adj.Manoeuvring[0].DraftM)
	}
	// Slices must be independent copies.
	adj.AtSea[0].SpeedKn = 99
	if p.AtSea[0].SpeedKn == 99 {
		t.Fatalf("adjusted profile shares leg storage with the original")
	}
}
