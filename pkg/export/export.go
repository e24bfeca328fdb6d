// Package export renders estimation results as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/ceto-project/ceto/core/energysystem"
	"github.com/ceto-project/ceto/core/imo"
	"github.com/ceto-project/ceto/core/model"
)

// Suggestion pairs the two alternative energy system estimates produced by
// one suggestion run.
type Suggestion struct {
	RunID           string                      `json:"run_id"`
	GaseousHydrogen energysystem.SystemEstimate `json:"gaseous_hydrogen"`
	Battery         energysystem.SystemEstimate `json:"battery"`
}

// WriteSuggestionJSON writes the suggestion to w in JSON format.
func WriteSuggestionJSON(w io.Writer, s Suggestion) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSuggestionCSV writes one row per strategy.
func WriteSuggestionCSV(w io.Writer, s Suggestion) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"strategy", "total_weight_kg", "total_volume_m3", "change_in_draft_m", "converged", "iterations"}); err != nil {
		return err
	}
	for _, est := range []energysystem.SystemEstimate{s.GaseousHydrogen, s.Battery} {
		rec := []string{
			string(est.Strategy),
			formatFloat(est.TotalWeightKg),
			formatFloat(est.TotalVolumeM3),
			formatFloat(est.DraftChangeM),
			strconv.FormatBool(est.Converged),
			strconv.Itoa(est.Iterations),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFuelJSON writes the fuel breakdown to w in JSON format.
func WriteFuelJSON(w io.Writer, b imo.FuelBreakdown) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// WriteFuelCSV writes one row per operation mode plus a total row.
func WriteFuelCSV(w io.Writer, b imo.FuelBreakdown) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"mode", "sub_total_kg", "auxiliary_engine_kg", "steam_boiler_kg", "propulsion_kg", "average_fuel_consumption_l_per_nm"}); err != nil {
		return err
	}
	rows := []struct {
		mode model.OperationMode
		fuel imo.ModeFuel
	}{
		{model.ModeAtBerth, b.AtBerth},
		{model.ModeAnchored, b.Anchored},
		{model.ModeManoeuvring, b.Manoeuvring},
		{model.ModeAtSea, b.AtSea},
	}
	for _, r := range rows {
		rec := []string{
			string(r.mode),
			formatFloat(r.fuel.SubTotalKg),
			formatFloat(r.fuel.AuxiliaryEngineKg),
			formatFloat(r.fuel.SteamBoilerKg),
			formatFloat(r.fuel.PropulsionKg),
			formatFloat(r.fuel.AverageLitersPerNM),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"total", formatFloat(b.TotalKg), "", "", "", ""}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteEnergyJSON writes the energy estimate to w in JSON format.
func WriteEnergyJSON(w io.Writer, e imo.EnergyEstimate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteEnergyCSV writes one row per operation mode plus the voyage totals.
func WriteEnergyCSV(w io.Writer, e imo.EnergyEstimate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"mode", "auxiliary_engine_kwh", "steam_boiler_kwh", "propulsion_kwh"}); err != nil {
		return err
	}
	rows := []struct {
		mode   model.OperationMode
		energy imo.ModeEnergy
	}{
		{model.ModeAtBerth, e.AtBerth},
		{model.ModeAnchored, e.Anchored},
		{model.ModeManoeuvring, e.Manoeuvring},
		{model.ModeAtSea, e.AtSea},
	}
	for _, r := range rows {
		var propulsion float64
		for _, kwh := range r.energy.PropulsionEnergyKWh {
			propulsion += kwh
		}
		rec := []string{
			string(r.mode),
			formatFloat(r.energy.AuxiliaryEngine.EnergyKWh),
			formatFloat(r.energy.SteamBoiler.EnergyKWh),
			formatFloat(propulsion),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"total", formatFloat(e.TotalKWh), "", ""}); err != nil {
		return err
	}
	if err := cw.Write([]string{"maximum_required_total_power_kw", formatFloat(e.MaxPowerKW), "", ""}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
