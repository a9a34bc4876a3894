package repoargs

import "github.com/shopspring/decimal"

type CreateCard struct {
	CustomerID  int64
	CreditLimit decimal.Decimal
}
