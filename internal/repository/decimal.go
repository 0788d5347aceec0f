package repository

import "github.com/shopspring/decimal"

// sumDecimals folds money values in-process so the arithmetic stays exact
// regardless of what the database driver would make of SUM over a numeric
// column. Zero rows yield decimal zero.
func sumDecimals(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
