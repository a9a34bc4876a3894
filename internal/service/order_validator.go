package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-store/internal/domain"
)

const (
	minItemQuantity int32 = 1
	maxItemQuantity int32 = 10
)

// OrderValidator проверяет запрос на заказ и считает его итоговую сумму.
// Сам ничего не пишет: результат валидации передается движку транзакций.
type OrderValidator struct{}

func NewOrderValidator() *OrderValidator {
	return &OrderValidator{}
}

type ValidatedItem struct {
	Item     domain.VendorItem
	Quantity int32
}

// ValidatedOrder заказ, прошедший все проверки: карта, разрешенные позиции
// каталога и итоговая сумма, посчитанная в точной десятичной арифметике.
type ValidatedOrder struct {
	Card  *domain.CreditCard
	Items []ValidatedItem
	Total decimal.Decimal
}

// Validate выполняет проверки заказа строго по порядку, каждая обрывает
// выполнение при провале:
//  1. Карта существует и принадлежит customerID - иначе ErrCardNotFound.
//  2. Каждый itemID разрешается ровно в один товар каталога, размер
//     разрешенного набора равен размеру запрошенного (дубликаты и неизвестные
//     id не проглатываются) - иначе ErrItemsInvalid.
//  3. Каждое количество в диапазоне [1, 10] - иначе ErrQuantityInvalid.
//  4. Итог = сумма quantity*price по всем позициям.
//  5. Итог строго меньше доступного кредита - иначе ErrInsufficientBalance.
//     Заказ, в точности исчерпывающий лимит, отклоняется: граница намеренно
//     строгая, это наблюдаемое поведение.
//
// Переданная card может быть nil (карта не найдена).
func (v *OrderValidator) Validate(
	ctx context.Context,
	catalog CatalogRepository,
	card *domain.CreditCard,
	customerID int64,
	items []domain.OrderItem,
) (*ValidatedOrder, error) {
	if card == nil || card.CustomerID != customerID {
		return nil, domain.ErrCardNotFound
	}

	if len(items) == 0 {
		return nil, domain.ErrItemsInvalid
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ItemID
	}

	resolved, resolveErr := catalog.GetItemsByIDs(ctx, ids)
	if resolveErr != nil {
		return nil, resolveErr //nolint:wrapcheck
	}
	if len(resolved) != len(items) {
		return nil, domain.ErrItemsInvalid
	}

	for _, item := range items {
		if item.Quantity < minItemQuantity || item.Quantity > maxItemQuantity {
			return nil, domain.ErrQuantityInvalid
		}
	}

	byID := make(map[int64]domain.VendorItem, len(resolved))
	for _, item := range resolved {
		byID[item.ID] = item
	}

	var total = decimal.Zero
	var validatedItems = make([]ValidatedItem, len(items))
	for i, item := range items {
		catalogItem := byID[item.ItemID]
		total = total.Add(catalogItem.Price.Mul(decimal.NewFromInt32(item.Quantity)))
		validatedItems[i] = ValidatedItem{
			Item:     catalogItem,
			Quantity: item.Quantity,
		}
	}

	if !total.LessThan(card.AvailableCredit()) {
		return nil, domain.ErrInsufficientBalance
	}

	return &ValidatedOrder{
		Card:  card,
		Items: validatedItems,
		Total: total,
	}, nil
}
