// Package calc provides deterministic financial calculations for the FOLD
// valuation model. Every function is pure: identical inputs give identical
// outputs, no state, no side effects.
//
// Division by zero is a defined business rule here, not an error: any ratio
// with an absent denominator is 0.0. The package therefore never returns an
// error and never panics on numeric input.
package calc

// =============================================================================
// GUARDS
// =============================================================================

// SafeDivide returns numerator/denominator, or 0.0 when the denominator is
// zero. "No meaningful ratio when the denominator is absent" — every ratio in
// this package routes through it.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0.0
	}
	return numerator / denominator
}

// =============================================================================
// VAULT REVENUE
// =============================================================================

// VaultRevenueETH calculates annual ETH revenue flowing to the FOLD captive
// insurance vault.
//
// FORMULA:
//
//	totalSlots    = BlocksPerYear × marketShare
//	adjustable    = totalSlots × adjustmentRate
//	successful    = adjustable × successRate
//	capturedValue = successful × avgBid          (ETH)
//	netRevenue    = capturedValue × (1 − kickbackRate)
//	vaultRevenue  = netRevenue × foldShare
//
// All rate arguments are fractions in [0,1], not percentages; callers divide
// percentage inputs by 100 first. The result is non-negative whenever all
// inputs are non-negative and all rates are ≤ 1, and monotonically
// non-decreasing in everything except kickbackRate.
func VaultRevenueETH(marketShare, adjustmentRate, successRate, avgBid, kickbackRate, foldShare float64) float64 {
	totalSlots := float64(BlocksPerYear) * marketShare
	adjustable := totalSlots * adjustmentRate
	successful := adjustable * successRate
	capturedValue := successful * avgBid
	netRevenue := capturedValue * (1.0 - kickbackRate)
	return netRevenue * foldShare
}

// ToDisplayCurrency converts an ETH amount into the active display currency.
// USD mode multiplies by the ETH price; ETH mode is the identity.
func ToDisplayCurrency(ethAmount, ethPriceUSD float64, mode CurrencyMode) float64 {
	if mode == CurrencyUSD {
		return ethAmount * ethPriceUSD
	}
	return ethAmount
}

// =============================================================================
// VALUATION RATIOS
// =============================================================================

// ImpliedPrice capitalizes annual revenue at a target earnings multiple.
//
// FORMULA: price = (revenue × P/E) / totalSupply
//
// Revenue and the returned price share a denomination (both USD or both ETH).
func ImpliedPrice(revenueDisplay, peRatio, totalSupply float64) float64 {
	return SafeDivide(revenueDisplay*peRatio, totalSupply)
}

// YieldPerToken is the annual cash flow accruing to each staked token.
func YieldPerToken(revenueDisplay, stakedAmount float64) float64 {
	return SafeDivide(revenueDisplay, stakedAmount)
}

// DividendYield expresses per-token yield as a fraction of the reference
// price (0.05 = 5%).
func DividendYield(yieldPerToken, referencePrice float64) float64 {
	return SafeDivide(yieldPerToken, referencePrice)
}

// UpsidePct is the percentage gap between the implied price and the current
// reference price. Positive means the model prices the token above market.
func UpsidePct(impliedPrice, referencePrice float64) float64 {
	return SafeDivide(impliedPrice-referencePrice, referencePrice) * 100.0
}
