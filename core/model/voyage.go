package model

import "github.com/ceto-project/ceto/core/errs"

// OperationMode is a voyage phase with its own auxiliary-power regime.
type OperationMode string

const (
	ModeAtBerth     OperationMode = "at_berth"
	ModeAnchored    OperationMode = "anchored"
	ModeManoeuvring OperationMode = "manoeuvring"
	ModeAtSea       OperationMode = "at_sea"
)

// OperationModes lists the four voyage phases in chronological order.
var OperationModes = []OperationMode{ModeAtBerth, ModeAnchored, ModeManoeuvring, ModeAtSea}

// Valid reports whether m is a recognised operation mode.
func (m OperationMode) Valid() bool {
	switch m {
	case ModeAtBerth, ModeAnchored, ModeManoeuvring, ModeAtSea:
		return true
	}
	return false
}

// MaxVoyageHours bounds berth/anchor durations to one year.
const MaxVoyageHours = 24 * 365

// Leg is an independent voyage segment sailed at constant speed and draft.
type Leg struct {
	DistanceNM float64 `json:"distance_nm"`
	SpeedKn    float64 `json:"speed_kn"`
	DraftM     float64 `json:"draft_m"`
}

// VoyageProfile describes how a vessel spends a voyage. The engine treats
// profiles as values: draft feedback produces adjusted copies and never
// touches the caller's profile.
type VoyageProfile struct {
	TimeAtBerthH  float64 `json:"time_at_berth"`
	TimeAnchoredH float64 `json:"time_anchored"`
	Manoeuvring   []Leg   `json:"legs_manoeuvring"`
	AtSea         []Leg   `json:"legs_at_sea"`
}

// Validate checks durations and leg fields. Zero-speed legs are reported
// later, as computation errors, by whichever aggregation divides by speed.
func (p VoyageProfile) Validate() error {
	if p.TimeAtBerthH < 0 || p.TimeAtBerthH > MaxVoyageHours {
		return errs.Validationf("voyage_profile: time_at_berth %.1f h outside [0, %d]", p.TimeAtBerthH, MaxVoyageHours)
	}
	if p.TimeAnchoredH < 0 || p.TimeAnchoredH > MaxVoyageHours {
		return errs.Validationf("voyage_profile: time_anchored %.1f h outside [0, %d]", p.TimeAnchoredH, MaxVoyageHours)
	}
	for i, leg := range p.Manoeuvring {
		if leg.DistanceNM < 0 {
			return errs.Validationf("voyage_profile: legs_manoeuvring[%d] has negative distance", i)
		}
	}
	for i, leg := range p.AtSea {
		if leg.DistanceNM < 0 {
			return errs.Validationf("voyage_profile: legs_at_sea[%d] has negative distance", i)
		}
	}
	return nil
}

// Legs returns the legs sailed in the given mode. Berth and anchor phases
// have no legs.
func (p VoyageProfile) Legs(mode OperationMode) []Leg {
	switch mode {
	case ModeManoeuvring:
		return p.Manoeuvring
	case ModeAtSea:
		return p.AtSea
	}
	return nil
}

// TotalDistanceNM sums the sailed distance over both leg sequences.
func (p VoyageProfile) TotalDistanceNM() float64 {
	var d float64
	for _, leg := range p.Manoeuvring {
		d += leg.DistanceNM
	}
	for _, leg := range p.AtSea {
		d += leg.DistanceNM
	}
	return d
}

// WithDraftDelta returns a copy of the profile with delta added to every
// leg's draft in both sequences.
func (p VoyageProfile) WithDraftDelta(delta float64) VoyageProfile {
	adj := p
	adj.Manoeuvring = make([]Leg, len(p.Manoeuvring))
	adj.AtSea = make([]Leg, len(p.AtSea))
	for i, leg := range p.Manoeuvring {
		leg.DraftM += delta
		adj.Manoeuvring[i] = leg
	}
	for i, leg := range p.AtSea {
		leg.DraftM += delta
		adj.AtSea[i] = leg
	}
	return adj
}
