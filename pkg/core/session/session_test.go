package session

import (
	"math"
	"testing"

	"fold_valuation/pkg/core/calc"
	"fold_valuation/pkg/core/scenario"
)

func TestDefaults(t *testing.T) {
	s := Defaults()

	// Realistic preset drives the adoption fields.
	if s.MarketSharePct != 25 || s.AdjustmentRatePct != 40 || s.SuccessRatePct != 50 || s.AvgBidETH != 0.10 {
		t.Errorf("Defaults should carry the Realistic preset, got %+v", s)
	}
	if s.ETHPrice != 3200 || s.PERatio != 20 || s.CurrentPrice != 0.75 {
		t.Errorf("Market defaults wrong: %+v", s)
	}
	if s.KickbackPct != 30 || s.FoldSharePct != 90 {
		t.Errorf("Expected 30/90 kickback/FOLD-share defaults, got %f/%f", s.KickbackPct, s.FoldSharePct)
	}
	if s.StakedPct != 50 || s.StakedLock {
		t.Errorf("Expected 50%% staked unlocked, got %f lock=%v", s.StakedPct, s.StakedLock)
	}
	if s.CurrencyMode != calc.CurrencyUSD || s.UserFOLD != 5000 || s.XGATargetMcapMUSD != 300 {
		t.Errorf("Session defaults wrong: %+v", s)
	}
	if got := s.ActivePreset(); got != scenario.Realistic {
		t.Errorf("Expected active preset Realistic, got %s", got)
	}
}

func TestSetFieldClamping(t *testing.T) {
	s := Defaults()

	// Sliders clamp at their widget bounds rather than rejecting.
	if err := s.SetField("market_share_pct", 150.0); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if s.MarketSharePct != 100 {
		t.Errorf("Expected clamp to 100, got %f", s.MarketSharePct)
	}

	if err := s.SetField("pe_ratio", 2.0); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if s.PERatio != 5 {
		t.Errorf("Expected P/E clamp to 5, got %f", s.PERatio)
	}

	if err := s.SetField("xga_target_mcap_musd", 1200.0); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if s.XGATargetMcapMUSD != 900 {
		t.Errorf("Expected mcap clamp to 900, got %f", s.XGATargetMcapMUSD)
	}

	if err := s.SetField("avg_bid_eth", -1.0); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if s.AvgBidETH != 0 {
		t.Errorf("Expected bid floor at 0, got %f", s.AvgBidETH)
	}
}

func TestSetFieldRejectsUnknownAndWrongType(t *testing.T) {
	s := Defaults()

	if err := s.SetField("warp_factor", 9.0); err == nil {
		t.Error("Expected error for unknown field")
	}
	if err := s.SetField("eth_price", "high"); err == nil {
		t.Error("Expected error for string into numeric field")
	}
	if err := s.SetField("staked_lock", 1.0); err == nil {
		t.Error("Expected error for number into bool field")
	}
	if err := s.SetField("currency_mode", "GBP"); err == nil {
		t.Error("Expected error for unknown currency mode")
	}
}

func TestStakedLockForcesTwenty(t *testing.T) {
	s := Defaults()
	s.SetField("staked_pct", 80.0)

	// The invariant must hold the moment the lock is toggled, before any
	// recompute.
	if err := s.SetField("staked_lock", true); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if s.StakedPct != LockedStakedPct {
		t.Errorf("Expected staked_pct forced to %d, got %f", LockedStakedPct, s.StakedPct)
	}

	// Writes while locked cannot break it either.
	s.SetField("staked_pct", 95.0)
	if s.StakedPct != LockedStakedPct {
		t.Errorf("Locked staked_pct moved to %f", s.StakedPct)
	}

	// Unlocking releases the pin; the slider drives again.
	s.SetField("staked_lock", false)
	s.SetField("staked_pct", 95.0)
	if s.StakedPct != 95 {
		t.Errorf("Expected 95 after unlock, got %f", s.StakedPct)
	}

	snap := Recompute(s)
	if math.Abs(snap.StakedAmount-1_900_000) > 0.0001 {
		t.Errorf("Expected 1.9M staked at 95%%, got %f", snap.StakedAmount)
	}
}

func TestPresetEqualsManualFieldSetting(t *testing.T) {
	a := Defaults()
	if !a.ApplyPreset(scenario.Optimistic) {
		t.Fatal("Optimistic preset should apply")
	}

	b := Defaults()
	b.SetField("market_share_pct", 40.0)
	b.SetField("adjustment_rate_pct", 60.0)
	b.SetField("success_rate_pct", 70.0)
	b.SetField("avg_bid_eth", 0.15)

	if Recompute(a) != Recompute(b) {
		t.Error("Preset application and manual field writes should be observably equivalent")
	}
}

func TestApplyPresetTouchesOnlyFourFields(t *testing.T) {
	s := Defaults()
	s.SetField("eth_price", 5000.0)
	s.SetField("user_fold", 123.0)

	s.ApplyPreset(scenario.Conservative)

	if s.MarketSharePct != 10 || s.AdjustmentRatePct != 25 || s.SuccessRatePct != 30 || s.AvgBidETH != 0.05 {
		t.Errorf("Conservative preset fields wrong: %+v", s)
	}
	if s.ETHPrice != 5000 || s.UserFOLD != 123 {
		t.Error("Preset application leaked into non-preset fields")
	}

	// Custom and unknown names are no-ops.
	before := s
	if s.ApplyPreset(scenario.CustomName) {
		t.Error("Custom should not apply")
	}
	if s.ApplyPreset("Moonshot") {
		t.Error("Unknown preset should not apply")
	}
	if s != before {
		t.Error("No-op preset application mutated state")
	}
}

func TestRecomputeRealisticDefaults(t *testing.T) {
	snap := Recompute(Defaults())

	if math.Abs(snap.VaultRevenueETH-8278.2) > 0.0001 {
		t.Errorf("Expected 8278.2 ETH revenue, got %f", snap.VaultRevenueETH)
	}
	if math.Abs(snap.VaultRevenueDisplay-26_490_240) > 0.01 {
		t.Errorf("Expected $26,490,240 revenue, got %f", snap.VaultRevenueDisplay)
	}
	if math.Abs(snap.StakedAmount-1_000_000) > 0.0001 {
		t.Errorf("Expected 1M FOLD staked, got %f", snap.StakedAmount)
	}
	if math.Abs(snap.YieldPerToken-26.49024) > 0.0001 {
		t.Errorf("Expected ~26.49 yield per token, got %f", snap.YieldPerToken)
	}
	if math.Abs(snap.ImpliedPrice-264.9024) > 0.0001 {
		t.Errorf("Expected $264.90 implied price, got %f", snap.ImpliedPrice)
	}
	if snap.ReferencePrice != 0.75 {
		t.Errorf("USD mode reference price should pass through, got %f", snap.ReferencePrice)
	}
	if math.Abs(snap.EffectiveFill-0.20) > 1e-9 {
		t.Errorf("Expected 20%% effective fill (0.40*0.50), got %f", snap.EffectiveFill)
	}

	// Holder figures at 5,000 FOLD.
	if math.Abs(snap.AnnualIncome-132_451.2) > 0.01 {
		t.Errorf("Expected annual income 132451.2, got %f", snap.AnnualIncome)
	}
	if math.Abs(snap.MonthlyIncome-snap.AnnualIncome/12) > 1e-9 {
		t.Errorf("Monthly income should be annual/12, got %f", snap.MonthlyIncome)
	}
	if math.Abs(snap.PortfolioValue-1_324_512) > 0.01 {
		t.Errorf("Expected portfolio value 1324512, got %f", snap.PortfolioValue)
	}

	// XGA card at the $300M default.
	if math.Abs(snap.XGAPrice-1.1111111) > 0.0001 {
		t.Errorf("Expected XGA price ~1.1111, got %f", snap.XGAPrice)
	}
	if snap.AirdropTokens != 25_000 {
		t.Errorf("Expected 25,000 airdrop tokens, got %f", snap.AirdropTokens)
	}
	if math.Abs(snap.AirdropValue-27_777.7777) > 0.01 {
		t.Errorf("Expected airdrop value ~27777.78, got %f", snap.AirdropValue)
	}
	if math.Abs(snap.IncentiveValue-12_750) > 0.0001 {
		t.Errorf("Expected incentive value 12750, got %f", snap.IncentiveValue)
	}
	if math.Abs(snap.ValuePerFOLD-5*snap.XGAPrice) > 1e-9 {
		t.Errorf("Value per FOLD should be 5x XGA price, got %f", snap.ValuePerFOLD)
	}
}

func TestRecomputeCurrencyModes(t *testing.T) {
	usd := Defaults()
	eth := Defaults()
	eth.SetField("currency_mode", "ETH")

	usdSnap := Recompute(usd)
	ethSnap := Recompute(eth)

	// ETH-mode revenue times the ETH price matches USD-mode revenue.
	if math.Abs(ethSnap.VaultRevenueDisplay*usd.ETHPrice-usdSnap.VaultRevenueDisplay) > 1e-6 {
		t.Errorf("Currency round trip broken: %f vs %f",
			ethSnap.VaultRevenueDisplay*usd.ETHPrice, usdSnap.VaultRevenueDisplay)
	}

	// Reference price is re-denominated in ETH terms.
	if math.Abs(ethSnap.ReferencePrice-0.75/3200) > 1e-12 {
		t.Errorf("Expected ETH reference price %f, got %f", 0.75/3200, ethSnap.ReferencePrice)
	}

	// Upside is a pure ratio, identical either way (given nonzero ETH price).
	if math.Abs(usdSnap.UpsidePct-ethSnap.UpsidePct) > 1e-6 {
		t.Errorf("Upside should be currency-independent: %f vs %f", usdSnap.UpsidePct, ethSnap.UpsidePct)
	}

	// Incentive value stays USD-denominated in ETH mode.
	if usdSnap.IncentiveValue != ethSnap.IncentiveValue {
		t.Errorf("Incentive value must not follow display currency: %f vs %f",
			usdSnap.IncentiveValue, ethSnap.IncentiveValue)
	}
}

func TestRecomputeZeroETHPrice(t *testing.T) {
	s := Defaults()
	s.SetField("currency_mode", "ETH")
	s.SetField("eth_price", 0.0)

	// Zero ETH price silently zeroes the re-denominated reference price and
	// every ratio against it, per the zero-guard policy.
	snap := Recompute(s)
	if snap.ReferencePrice != 0 || snap.UpsidePct != 0 || snap.DividendYield != 0 {
		t.Errorf("Expected zeroed reference ratios, got ref=%f upside=%f yield=%f",
			snap.ReferencePrice, snap.UpsidePct, snap.DividendYield)
	}
	// Revenue itself is still defined (identity conversion in ETH mode).
	if math.Abs(snap.VaultRevenueETH-8278.2) > 0.0001 {
		t.Errorf("ETH revenue should be unaffected, got %f", snap.VaultRevenueETH)
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	s := Defaults()
	s.SetField("market_share_pct", 33.0)

	if Recompute(s) != Recompute(s) {
		t.Error("Recompute must be idempotent for a fixed state")
	}
}
