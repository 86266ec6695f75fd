package balance

import (
	"github.com/shopspring/decimal"

	"github.com/walletkeeper/walletkeeper/model"
)

// FundingCheck reports whether a wallet holds enough native tokens for an
// operation. Amounts are exact decimals; what to do about an underfunded
// wallet is a presentation decision.
type FundingCheck struct {
	HasEnough bool
	Current   decimal.Decimal
	Required  decimal.Decimal
	Symbol    string
	Network   string
}

// CheckFunding finds the first balance with the given symbol and compares it
// against the required amount. A missing or unparsable balance counts as
// zero.
func CheckFunding(balances []model.WalletBalance, symbol string, required decimal.Decimal) FundingCheck {
	for _, b := range balances {
		if b.Symbol != symbol {
			continue
		}
		current, err := decimal.NewFromString(b.Balance)
		if err != nil {
			current = decimal.Zero
		}
		return FundingCheck{
			HasEnough: current.GreaterThanOrEqual(required),
			Current:   current,
			Required:  required,
			Symbol:    b.Symbol,
			Network:   b.Network,
		}
	}

	return FundingCheck{
		HasEnough: false,
		Current:   decimal.Zero,
		Required:  required,
		Symbol:    symbol,
	}
}
