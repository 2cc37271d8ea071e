// Package projection produces the two chart-feeding series: the market-share
// sensitivity sweep and the 36-month adoption ramp. Both are pure functions
// of one input state over fixed sample sequences.
package projection

import (
	"fold_valuation/pkg/core/calc"
	"fold_valuation/pkg/core/session"
)

// SensitivityPoint is one sample of the market-share sweep: the implied FOLD
// price (display currency) if market share were SharePct, all else unchanged.
type SensitivityPoint struct {
	SharePct     float64 `json:"share_pct"`
	ImpliedPrice float64 `json:"implied_price"`
}

// RampPoint is one sample of the utilization ramp: display-currency vault
// revenue at the given month's ramp factor.
type RampPoint struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

// Projections bundles both series for one input state.
type Projections struct {
	Sensitivity []SensitivityPoint `json:"sensitivity"`
	Ramp        []RampPoint        `json:"ramp"`
}

// Market-share sweep samples 5%..50% in 5-point steps; the ramp samples the
// months the original model charts.
var (
	sensitivityShares = []float64{5, 10, 15, 20, 25, 30, 35, 40, 45, 50}
	rampMonths        = []int{1, 12, 24, 36}
)

// Sensitivity sweeps market share over 5..50%, holding every other input
// fixed, and reports the implied price at each point. Ordered by share.
func Sensitivity(s session.InputState) []SensitivityPoint {
	ar := s.AdjustmentRatePct / 100.0
	sr := s.SuccessRatePct / 100.0
	kr := s.KickbackPct / 100.0
	fs := s.FoldSharePct / 100.0

	points := make([]SensitivityPoint, 0, len(sensitivityShares))
	for _, share := range sensitivityShares {
		revETH := calc.VaultRevenueETH(share/100.0, ar, sr, s.AvgBidETH, kr, fs)
		revDisplay := calc.ToDisplayCurrency(revETH, s.ETHPrice, s.CurrencyMode)
		points = append(points, SensitivityPoint{
			SharePct:     share,
			ImpliedPrice: calc.ImpliedPrice(revDisplay, s.PERatio, calc.FOLDTotalSupply),
		})
	}
	return points
}

// rampFactor interpolates utilization linearly from 0.1 at month 1 to 1.0 at
// month 36, clamped at both endpoints.
func rampFactor(month int) float64 {
	if month <= 1 {
		return 0.1
	}
	if month >= 36 {
		return 1.0
	}
	return 0.1 + (float64(month)-1)*(0.9/35.0)
}

// Ramp applies the utilization ramp factor to the state's display-currency
// vault revenue at months 1, 12, 24 and 36. Ordered by month.
func Ramp(s session.InputState) []RampPoint {
	revDisplay := session.Recompute(s).VaultRevenueDisplay

	points := make([]RampPoint, 0, len(rampMonths))
	for _, m := range rampMonths {
		points = append(points, RampPoint{
			Month:   m,
			Revenue: revDisplay * rampFactor(m),
		})
	}
	return points
}

// FromState produces both chart series for one input state.
func FromState(s session.InputState) Projections {
	return Projections{
		Sensitivity: Sensitivity(s),
		Ramp:        Ramp(s),
	}
}
