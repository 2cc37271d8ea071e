package calc

// XGA reward math. All three figures are USD-denominated regardless of the
// session's display currency: the airdrop and incentive campaigns are quoted
// against the USD reference price of FOLD.

// XGAPrice derives the implied XGA token price from a target market cap.
//
// FORMULA: price = targetMcapUSD / xgaTotalSupply
//
// No zero-guard: supply is a positive process-wide constant.
func XGAPrice(targetMcapUSD, xgaTotalSupply float64) float64 {
	return targetMcapUSD / xgaTotalSupply
}

// AirdropValue is the USD value of the retroactive airdrop for a holder:
// tokens held × airdrop ratio × implied XGA price.
func AirdropValue(userTokens, airdropRatio, xgaPrice float64) float64 {
	return userTokens * airdropRatio * xgaPrice
}

// IncentiveValue applies the fixed active-participation ROI multiple to the
// holder's capital base (tokens × USD reference price).
func IncentiveValue(userTokens, referencePrice, roiMultiple float64) float64 {
	return userTokens * referencePrice * roiMultiple
}
