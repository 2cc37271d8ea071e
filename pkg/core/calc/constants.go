package calc

// Protocol constants. These mirror the published XGA/FOLD tokenomics and are
// fixed process-wide; everything adjustable lives in session.InputState.
const (
	// BlocksPerYear is the number of beacon-chain slots per year
	// (7,200 slots/day * 365).
	BlocksPerYear = 2_628_000

	// FOLDTotalSupply is the fixed total supply of the FOLD token.
	FOLDTotalSupply = 2_000_000

	// XGATotalSupply is the fixed total supply of the XGA incentive token.
	XGATotalSupply = 270_000_000

	// AirdropRatio is the fixed retroactive airdrop rate: 5 XGA per 1 FOLD.
	AirdropRatio = 5.0

	// IncentiveROI is the fixed active-participation return multiple (340%
	// over the 3-month campaign).
	IncentiveROI = 3.40
)

// CurrencyMode selects the denomination of display values.
type CurrencyMode string

const (
	CurrencyUSD CurrencyMode = "USD"
	CurrencyETH CurrencyMode = "ETH"
)
