package response

import "github.com/shopspring/decimal"

// money renders an amount as a JSON number with at most two decimals.
func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func optionalMoney(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := money(*d)
	return &f
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
