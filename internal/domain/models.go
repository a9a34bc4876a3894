package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type Customer struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsActive  bool
}

// CreditCard номера карт выдаются из отдельного блока (от 1000 и выше),
// чтобы не пересекаться с остальными идентификаторами.
type CreditCard struct {
	Number        int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CustomerID    int64
	CreditLimit   decimal.Decimal
	CreditBalance decimal.Decimal
}

// AvailableCredit возвращает доступный кредит карты: creditLimit - creditBalance.
func (c *CreditCard) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.CreditBalance)
}

type Vendor struct {
	ID          int64
	Name        string
	Description string
}

type VendorItem struct {
	ID          int64
	VendorID    int64
	Name        string
	Description string
	ImgLink     string
	Price       decimal.Decimal
}

// Transaction запись журнала. Положительный Total - покупка, отрицательный - платеж.
// Записи журнала никогда не обновляются и не удаляются.
type Transaction struct {
	ID         int64
	CreatedAt  time.Time
	CardNumber int64
	Total      decimal.Decimal
}

type TransactionDetail struct {
	TransactionID int64
	ItemID        int64
	Quantity      int32
}
