package entities

import "github.com/shopspring/decimal"

// Money amounts are kept at two decimal places.
const moneyPlaces = 2

func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(moneyPlaces)
}

// SumMoney adds the amounts, treating an empty list as zero.
func SumMoney(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return RoundMoney(total)
}
