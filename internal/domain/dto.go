package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem позиция заказа в том виде, в котором её прислал клиент:
// идентификатор товара и количество.
type OrderItem struct {
	ItemID   int64
	Quantity int32
}

// TransactionReport развернутая выписка по одной транзакции: итоговая сумма
// плюс плоский список позиций (без ленивых связей, все join'ы выполняются
// на стороне репозитория).
type TransactionReport struct {
	Total      decimal.Decimal
	OrderItems []ReportItem
}

type ReportItem struct {
	ItemName        string
	ItemDescription string
	Price           decimal.Decimal
	ImgLink         string
	Quantity        int32
}

// VendorSale строка отчета по продажам вендора: одна на каждую позицию
// журнала с товаром этого вендора, развернутая до клиента и номера карты.
// Транзакция с двумя разными товарами вендора дает две строки.
type VendorSale struct {
	TransactionID int64
	CreatedAt     time.Time
	Total         decimal.Decimal
	CustomerID    int64
	FirstName     string
	LastName      string
	CardNumber    int64
}
