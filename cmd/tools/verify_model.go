// Command verify_model runs the published worked examples through the live
// calculation code and prints PASS/FAIL per check. Useful after touching the
// formula set: the expected figures come straight from the model's
// documentation, not from the code under test.
package main

import (
	"fmt"
	"math"
	"os"

	"fold_valuation/pkg/core/calc"
	"fold_valuation/pkg/core/projection"
	"fold_valuation/pkg/core/session"
)

var failures int

func check(name string, got, want, tol float64) {
	if math.Abs(got-want) <= tol {
		fmt.Printf("  PASS %-38s %v\n", name, got)
		return
	}
	failures++
	fmt.Printf("  FAIL %-38s got %v, want %v\n", name, got, want)
}

func main() {
	fmt.Println("--- Realistic Preset (Defaults) ---")
	state := session.Defaults()
	snap := session.Recompute(state)

	check("vault revenue (ETH)", snap.VaultRevenueETH, 8278.2, 0.0001)
	check("vault revenue (USD @ 3200)", snap.VaultRevenueDisplay, 26_490_240, 0.01)
	check("staked amount (50% of 2M)", snap.StakedAmount, 1_000_000, 0.0001)
	check("yield per staked token", snap.YieldPerToken, 26.49024, 0.0001)
	check("implied price (20x P/E)", snap.ImpliedPrice, 264.9024, 0.0001)
	check("effective fill", snap.EffectiveFill, 0.20, 1e-9)

	fmt.Println("--- XGA Rewards (5,000 FOLD, $300M cap) ---")
	check("implied XGA price", snap.XGAPrice, 300_000_000.0/270_000_000.0, 1e-9)
	check("airdrop tokens", snap.AirdropTokens, 25_000, 0)
	check("airdrop value", snap.AirdropValue, 27_777.7778, 0.01)
	check("incentive value (340% on $3,750)", snap.IncentiveValue, 12_750, 0.0001)

	fmt.Println("--- Currency Round Trip ---")
	ethState := state
	ethState.SetField("currency_mode", string(calc.CurrencyETH))
	ethSnap := session.Recompute(ethState)
	check("ETH revenue * price == USD revenue",
		ethSnap.VaultRevenueDisplay*state.ETHPrice, snap.VaultRevenueDisplay, 1e-6)

	fmt.Println("--- Projections ---")
	proj := projection.FromState(state)
	check("sweep points", float64(len(proj.Sensitivity)), 10, 0)
	check("sweep @25% == implied price", proj.Sensitivity[4].ImpliedPrice, snap.ImpliedPrice, 1e-6)
	check("ramp month 1 (10% floor)", proj.Ramp[0].Revenue, 0.1*snap.VaultRevenueDisplay, 1e-6)
	check("ramp month 36 (full)", proj.Ramp[3].Revenue, snap.VaultRevenueDisplay, 1e-6)

	if failures > 0 {
		fmt.Printf("\n%d check(s) FAILED\n", failures)
		os.Exit(1)
	}
	fmt.Println("\nAll checks passed.")
}
