package repoargs

import "github.com/shopspring/decimal"

type TransactionCreate struct {
	CardNumber int64
	Total      decimal.Decimal
}

type DetailCreate struct {
	TransactionID int64
	ItemID        int64
	Quantity      int32
}
