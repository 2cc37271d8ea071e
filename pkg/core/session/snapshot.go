package session

import "fold_valuation/pkg/core/calc"

// ResultsSnapshot is the full derived output for one input state. It is
// always recomputed from scratch; nothing in it is updated incrementally.
//
// Display-currency fields (vault_revenue_display, yield_per_token,
// implied_price, reference_price, annual/monthly income, portfolio_value)
// follow currency_mode; the XGA reward figures are always USD.
type ResultsSnapshot struct {
	VaultRevenueETH     float64 `json:"vault_revenue_eth"`
	VaultRevenueDisplay float64 `json:"vault_revenue_display"`
	EffectiveFill       float64 `json:"effective_fill"`
	StakedAmount        float64 `json:"staked_amount"`

	YieldPerToken  float64 `json:"yield_per_token"`
	ImpliedMcap    float64 `json:"implied_mcap"`
	ImpliedPrice   float64 `json:"implied_price"`
	ReferencePrice float64 `json:"reference_price"`
	DividendYield  float64 `json:"dividend_yield"`
	UpsidePct      float64 `json:"upside_pct"`

	MonthlyIncome  float64 `json:"monthly_income"`
	AnnualIncome   float64 `json:"annual_income"`
	PortfolioValue float64 `json:"portfolio_value"`

	XGAPrice       float64 `json:"xga_price"`
	AirdropTokens  float64 `json:"airdrop_tokens"`
	AirdropValue   float64 `json:"airdrop_value"`
	IncentiveValue float64 `json:"incentive_value"`
	ValuePerFOLD   float64 `json:"value_per_fold"`
}

// Recompute derives the full snapshot from an input state, from first
// principles every time. Pure: no session required, no side effects,
// idempotent for a fixed state.
func Recompute(s InputState) ResultsSnapshot {
	// 1. Normalize percentages to fractions.
	ms := s.MarketSharePct / 100.0
	ar := s.AdjustmentRatePct / 100.0
	sr := s.SuccessRatePct / 100.0
	kr := s.KickbackPct / 100.0
	fs := s.FoldSharePct / 100.0

	// 2. Staked supply (lock invariant already enforced on write).
	stakedAmt := float64(calc.FOLDTotalSupply) * (s.StakedPct / 100.0)

	// 3–4. Annual vault revenue, then into the display currency.
	revETH := calc.VaultRevenueETH(ms, ar, sr, s.AvgBidETH, kr, fs)
	revDisplay := calc.ToDisplayCurrency(revETH, s.ETHPrice, s.CurrencyMode)

	// 5. Yield and implied valuation, both in display currency.
	yield := calc.YieldPerToken(revDisplay, stakedAmt)
	impliedMcap := revDisplay * s.PERatio
	implied := calc.ImpliedPrice(revDisplay, s.PERatio, calc.FOLDTotalSupply)

	// 6. Reference price: the stored current price is USD; in ETH mode it is
	// re-denominated by the ETH price (zero price degrades to zero).
	refPrice := s.CurrentPrice
	if s.CurrencyMode == calc.CurrencyETH {
		refPrice = calc.SafeDivide(s.CurrentPrice, s.ETHPrice)
	}

	// 7. Market comparison.
	divYield := calc.DividendYield(yield, refPrice)
	upside := calc.UpsidePct(implied, refPrice)

	// 8. Holder figures.
	annualIncome := s.UserFOLD * yield
	portfolio := s.UserFOLD * implied

	// 9. XGA rewards, driven only by the target-mcap slider and the USD
	// reference price.
	xgaPrice := calc.XGAPrice(s.XGATargetMcapMUSD*1_000_000, calc.XGATotalSupply)
	airdropTokens := s.UserFOLD * calc.AirdropRatio
	airdropValue := calc.AirdropValue(s.UserFOLD, calc.AirdropRatio, xgaPrice)
	incentive := calc.IncentiveValue(s.UserFOLD, s.CurrentPrice, calc.IncentiveROI)

	return ResultsSnapshot{
		VaultRevenueETH:     revETH,
		VaultRevenueDisplay: revDisplay,
		EffectiveFill:       ar * sr,
		StakedAmount:        stakedAmt,
		YieldPerToken:       yield,
		ImpliedMcap:         impliedMcap,
		ImpliedPrice:        implied,
		ReferencePrice:      refPrice,
		DividendYield:       divYield,
		UpsidePct:           upside,
		MonthlyIncome:       annualIncome / 12.0,
		AnnualIncome:        annualIncome,
		PortfolioValue:      portfolio,
		XGAPrice:            xgaPrice,
		AirdropTokens:       airdropTokens,
		AirdropValue:        airdropValue,
		IncentiveValue:      incentive,
		ValuePerFOLD:        calc.AirdropRatio * xgaPrice,
	}
}
