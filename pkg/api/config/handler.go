// Package config serves the static model configuration the UI builds its
// widgets from: protocol constants, the preset table and the default state.
package config

import (
	"encoding/json"
	"net/http"

	"fold_valuation/pkg/core/calc"
	"fold_valuation/pkg/core/scenario"
	"fold_valuation/pkg/core/session"
)

// Response describes everything the UI needs before the first session exists.
type Response struct {
	Constants   Constants          `json:"constants"`
	Presets     []scenario.Preset  `json:"presets"`
	PresetNames []string           `json:"preset_names"`
	Defaults    session.InputState `json:"defaults"`
}

// Constants mirrors the fixed tokenomics figures.
type Constants struct {
	BlocksPerYear   int     `json:"blocks_per_year"`
	FOLDTotalSupply int     `json:"fold_total_supply"`
	XGATotalSupply  int     `json:"xga_total_supply"`
	AirdropRatio    float64 `json:"airdrop_ratio"`
	IncentiveROI    float64 `json:"incentive_roi"`
}

// HandleConfig returns constants, presets and defaults.
func HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	resp := Response{
		Constants: Constants{
			BlocksPerYear:   calc.BlocksPerYear,
			FOLDTotalSupply: calc.FOLDTotalSupply,
			XGATotalSupply:  calc.XGATotalSupply,
			AirdropRatio:    calc.AirdropRatio,
			IncentiveROI:    calc.IncentiveROI,
		},
		Presets:     scenario.All(),
		PresetNames: scenario.List(),
		Defaults:    session.Defaults(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
