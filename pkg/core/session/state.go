// Package session owns the mutable input state of one calculator session and
// turns it into results snapshots. The original app kept inputs in a global
// stringly-keyed bag; here they are one typed struct with validation
// centralized in SetField.
package session

import (
	"fmt"

	"fold_valuation/pkg/core/calc"
	"fold_valuation/pkg/core/scenario"
)

// InputState is every user-adjustable input. Percentage fields are stored as
// percentages (0–100) and normalized to fractions only inside Recompute.
type InputState struct {
	MarketSharePct    float64 `json:"market_share_pct"`
	AdjustmentRatePct float64 `json:"adjustment_rate_pct"`
	SuccessRatePct    float64 `json:"success_rate_pct"`
	AvgBidETH         float64 `json:"avg_bid_eth"`

	ETHPrice     float64 `json:"eth_price"`
	PERatio      float64 `json:"pe_ratio"`
	CurrentPrice float64 `json:"current_price"`

	StakedPct  float64 `json:"staked_pct"`
	StakedLock bool    `json:"staked_lock"`

	KickbackPct  float64 `json:"kickback_pct"`
	FoldSharePct float64 `json:"fold_share_pct"`

	UserFOLD     float64           `json:"user_fold"`
	CurrencyMode calc.CurrencyMode `json:"currency_mode"`

	XGATargetMcapMUSD float64 `json:"xga_target_mcap_musd"`
}

// LockedStakedPct is the staked percentage forced while the staked-lock
// toggle is on (the "400k cap": 20% of 2M supply).
const LockedStakedPct = 20

// Defaults returns the canonical startup state: the Realistic preset plus the
// published reference assumptions.
func Defaults() InputState {
	s := InputState{
		ETHPrice:          3200,
		PERatio:           20,
		CurrentPrice:      0.75,
		StakedPct:         50,
		KickbackPct:       30,
		FoldSharePct:      90,
		StakedLock:        false,
		UserFOLD:          5000,
		CurrencyMode:      calc.CurrencyUSD,
		XGATargetMcapMUSD: 300,
	}
	if p, ok := scenario.Lookup(scenario.Realistic); ok {
		s.applyPreset(p)
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetField writes one named field, clamping numeric values into the field's
// widget range (the UI sliders clamp the same way, so out-of-range input is
// normalized rather than rejected). Unknown names and wrong value types are
// errors. The staked-lock invariant is re-enforced after every write.
func (s *InputState) SetField(name string, value any) error {
	switch name {
	case "staked_lock":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %s expects a bool, got %T", name, value)
		}
		s.StakedLock = b
	case "currency_mode":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %s expects a string, got %T", name, value)
		}
		switch calc.CurrencyMode(str) {
		case calc.CurrencyUSD, calc.CurrencyETH:
			s.CurrencyMode = calc.CurrencyMode(str)
		default:
			return fmt.Errorf("unknown currency mode %q", str)
		}
	default:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("field %s expects a number, got %T", name, value)
		}
		if err := s.setNumeric(name, v); err != nil {
			return err
		}
	}

	s.enforceInvariants()
	return nil
}

func (s *InputState) setNumeric(name string, v float64) error {
	switch name {
	case "market_share_pct":
		s.MarketSharePct = clamp(v, 0, 100)
	case "adjustment_rate_pct":
		s.AdjustmentRatePct = clamp(v, 0, 100)
	case "success_rate_pct":
		s.SuccessRatePct = clamp(v, 0, 100)
	case "avg_bid_eth":
		s.AvgBidETH = max(v, 0)
	case "eth_price":
		s.ETHPrice = max(v, 0)
	case "pe_ratio":
		s.PERatio = clamp(v, 5, 60)
	case "current_price":
		s.CurrentPrice = max(v, 0)
	case "staked_pct":
		s.StakedPct = clamp(v, 0, 100)
	case "kickback_pct":
		s.KickbackPct = clamp(v, 0, 100)
	case "fold_share_pct":
		s.FoldSharePct = clamp(v, 0, 100)
	case "user_fold":
		s.UserFOLD = max(v, 0)
	case "xga_target_mcap_musd":
		s.XGATargetMcapMUSD = clamp(v, 100, 900)
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// ApplyPreset overwrites the four adoption fields from a named preset, all
// together or not at all. Custom and unknown names change nothing and report
// false.
func (s *InputState) ApplyPreset(name string) bool {
	p, ok := scenario.Lookup(name)
	if !ok {
		return false
	}
	s.applyPreset(p)
	s.enforceInvariants()
	return true
}

func (s *InputState) applyPreset(p scenario.Preset) {
	s.MarketSharePct = p.MarketSharePct
	s.AdjustmentRatePct = p.AdjustmentRatePct
	s.SuccessRatePct = p.SuccessRatePct
	s.AvgBidETH = p.AvgBidETH
}

// enforceInvariants pins the staked percentage while the lock is on. It runs
// after every mutation, so the invariant holds before any recompute.
func (s *InputState) enforceInvariants() {
	if s.StakedLock {
		s.StakedPct = LockedStakedPct
	}
}

// ActivePreset reports which preset the four adoption fields currently match,
// or Custom when they diverge from all of them.
func (s *InputState) ActivePreset() string {
	for _, p := range scenario.All() {
		if s.MarketSharePct == p.MarketSharePct &&
			s.AdjustmentRatePct == p.AdjustmentRatePct &&
			s.SuccessRatePct == p.SuccessRatePct &&
			s.AvgBidETH == p.AvgBidETH {
			return p.Name
		}
	}
	return scenario.CustomName
}
