// Package scenario holds the named adoption-assumption presets. A preset is
// an immutable bundle of exactly four inputs (market share, adjustment rate,
// success rate, average bid); applying one never touches any other field.
package scenario

import "sync"

// Preset is one named bundle of adoption assumptions. Percentage fields are
// stored as percentages (0–100), the same unit the input state uses.
type Preset struct {
	Name              string  `json:"name"`
	MarketSharePct    float64 `json:"market_share_pct"`
	AdjustmentRatePct float64 `json:"adjustment_rate_pct"`
	SuccessRatePct    float64 `json:"success_rate_pct"`
	AvgBidETH         float64 `json:"avg_bid_eth"`
}

// CustomName is the sentinel meaning "no preset applied"; it is listed after
// the real presets and applying it changes nothing.
const CustomName = "Custom"

// Canonical preset names, in declaration order.
const (
	Conservative = "Conservative"
	Realistic    = "Realistic"
	Optimistic   = "Optimistic"
)

var (
	mu      sync.RWMutex
	presets = builtinPresets()
)

func builtinPresets() []Preset {
	return []Preset{
		{Name: Conservative, MarketSharePct: 10, AdjustmentRatePct: 25, SuccessRatePct: 30, AvgBidETH: 0.05},
		{Name: Realistic, MarketSharePct: 25, AdjustmentRatePct: 40, SuccessRatePct: 50, AvgBidETH: 0.10},
		{Name: Optimistic, MarketSharePct: 40, AdjustmentRatePct: 60, SuccessRatePct: 70, AvgBidETH: 0.15},
	}
}

// List returns preset names in declaration order with the Custom sentinel
// appended.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(presets)+1)
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return append(names, CustomName)
}

// All returns a copy of the active preset table (without the Custom
// sentinel), in declaration order.
func All() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Lookup finds a preset by name. Custom and unknown names report false: the
// caller applies nothing.
func Lookup(name string) (Preset, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
