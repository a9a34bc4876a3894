package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/metrics"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
)

var (
	minPaymentAmount = decimal.RequireFromString("0.01")
	maxPaymentAmount = decimal.NewFromInt(2500)
)

// TransactionService движок транзакций: проверяет заказ или платеж и атомарно
// фиксирует изменение баланса вместе с записью журнала.
//
// Все проверки и мутации одной операции выполняются внутри одной транзакции БД,
// начиная с чтения карты под блокировкой строки. Два коммита по одной карте
// поэтому не могут проверить доступный кредит по устаревшему балансу;
// коммиты по разным картам независимы.
type TransactionService struct {
	uow       uow.UOW
	validator *OrderValidator
}

func NewTransactionService(u uow.UOW) *TransactionService {
	return &TransactionService{
		uow:       u,
		validator: NewOrderValidator(),
	}
}

// PlaceOrder проверяет заказ (см. OrderValidator) и атомарно применяет его:
// баланс карты увеличивается на сумму заказа, в журнал пишется транзакция и
// по одной детали на каждую позицию. При любой ошибке хранилища вся операция
// откатывается и возвращается ErrCommitFailed; ошибки валидации возвращаются
// как есть, без каких-либо мутаций.
func (t *TransactionService) PlaceOrder(
	ctx context.Context,
	customerID int64,
	cardNumber int64,
	items []domain.OrderItem,
) (*domain.Transaction, error) {
	var trans *domain.Transaction

	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cardRepo, cardRepoErr := uow.GetAs[CardRepository](tx, uow.RepositoryName(repoargs.CardRepoName))
		if cardRepoErr != nil {
			return cardRepoErr //nolint:wrapcheck
		}
		catalogRepo, catalogRepoErr := uow.GetAs[CatalogRepository](tx, uow.RepositoryName(repoargs.CatalogRepoName))
		if catalogRepoErr != nil {
			return catalogRepoErr //nolint:wrapcheck
		}
		ledgerRepo, ledgerRepoErr := uow.GetAs[LedgerRepository](tx, uow.RepositoryName(repoargs.LedgerRepoName))
		if ledgerRepoErr != nil {
			return ledgerRepoErr //nolint:wrapcheck
		}

		card, lockErr := t.lockCard(c, cardRepo, cardNumber)
		if lockErr != nil {
			return lockErr
		}

		validated, validateErr := t.validator.Validate(c, catalogRepo, card, customerID, items)
		if validateErr != nil {
			return validateErr //nolint:wrapcheck
		}

		if _, balanceErr := cardRepo.AddToBalance(c, card.Number, validated.Total); balanceErr != nil {
			return balanceErr //nolint:wrapcheck
		}

		created, createErr := ledgerRepo.CreateTransaction(c, repoargs.TransactionCreate{
			CardNumber: card.Number,
			Total:      validated.Total,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		for _, item := range validated.Items {
			_, detailErr := ledgerRepo.CreateDetail(c, repoargs.DetailCreate{
				TransactionID: created.ID,
				ItemID:        item.Item.ID,
				Quantity:      item.Quantity,
			})
			if detailErr != nil {
				return detailErr //nolint:wrapcheck
			}
		}

		trans = created
		return nil
	})

	if txErr != nil {
		return nil, t.commitErr("order", txErr)
	}

	metrics.OrdersCommitted.Inc()
	return trans, nil
}

// MakePayment проверяет платеж и атомарно применяет его: баланс уменьшается на
// amount, в журнал пишется транзакция с total = -amount (без деталей).
// Проверки по порядку:
//  1. Карта существует - иначе ErrCardNotFound. Платеж принимается по любой
//     существующей карте, привязка к плательщику не проверяется.
//  2. Баланс больше нуля - иначе ErrNoPaymentRequired.
//  3. Сумма: не более 2 знаков после запятой, в диапазоне [0.01, 2500]
//     и не больше кредитного лимита карты - иначе ErrPaymentInvalid.
//
// Сумма не сверяется с текущим долгом: переплата с уходом баланса в минус
// разрешена. Не "чинить" без подтверждения продукта.
func (t *TransactionService) MakePayment(
	ctx context.Context,
	cardNumber int64,
	amount decimal.Decimal,
) (*domain.Transaction, error) {
	var trans *domain.Transaction

	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cardRepo, cardRepoErr := uow.GetAs[CardRepository](tx, uow.RepositoryName(repoargs.CardRepoName))
		if cardRepoErr != nil {
			return cardRepoErr //nolint:wrapcheck
		}
		ledgerRepo, ledgerRepoErr := uow.GetAs[LedgerRepository](tx, uow.RepositoryName(repoargs.LedgerRepoName))
		if ledgerRepoErr != nil {
			return ledgerRepoErr //nolint:wrapcheck
		}

		card, lockErr := t.lockCard(c, cardRepo, cardNumber)
		if lockErr != nil {
			return lockErr
		}

		if card.CreditBalance.LessThanOrEqual(decimal.Zero) {
			return domain.ErrNoPaymentRequired //nolint:wrapcheck
		}

		if validateErr := validatePaymentAmount(amount, card.CreditLimit); validateErr != nil {
			return validateErr
		}

		if _, balanceErr := cardRepo.AddToBalance(c, card.Number, amount.Neg()); balanceErr != nil {
			return balanceErr //nolint:wrapcheck
		}

		created, createErr := ledgerRepo.CreateTransaction(c, repoargs.TransactionCreate{
			CardNumber: card.Number,
			Total:      amount.Neg(),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		trans = created
		return nil
	})

	if txErr != nil {
		return nil, t.commitErr("payment", txErr)
	}

	metrics.PaymentsCommitted.Inc()
	return trans, nil
}

// lockCard читает карту под блокировкой строки текущей транзакции.
func (t *TransactionService) lockCard(
	ctx context.Context,
	cardRepo CardRepository,
	cardNumber int64,
) (*domain.CreditCard, error) {
	card, err := cardRepo.FindByNumberForUpdate(ctx, cardNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrCardNotFound //nolint:wrapcheck
		}
		return nil, err //nolint:wrapcheck
	}
	return card, nil
}

// validatePaymentAmount amount должен быть положительным числом не более чем с
// двумя знаками после запятой, в пределах [0.01, 2500] и не больше лимита карты.
// Сравнение с округлением, а не по экспоненте: хвостовые нули ("10.100")
// не делают сумму невалидной.
func validatePaymentAmount(amount, creditLimit decimal.Decimal) error {
	if !amount.Equal(amount.Round(2)) { //nolint:mnd
		return domain.ErrPaymentInvalid //nolint:wrapcheck
	}
	if amount.LessThan(minPaymentAmount) || amount.GreaterThan(maxPaymentAmount) {
		return domain.ErrPaymentInvalid //nolint:wrapcheck
	}
	if amount.GreaterThan(creditLimit) {
		return domain.ErrPaymentInvalid //nolint:wrapcheck
	}
	return nil
}

// commitErr ошибки валидации отдаются вызывающему как есть; все прочее - сбой
// хранилища посреди атомарной записи, он маппится на ErrCommitFailed
// (откат к этому моменту уже выполнен в uow.Do).
func (t *TransactionService) commitErr(operation string, err error) error {
	validationErrs := []error{
		domain.ErrCardNotFound,
		domain.ErrItemsInvalid,
		domain.ErrQuantityInvalid,
		domain.ErrInsufficientBalance,
		domain.ErrPaymentInvalid,
		domain.ErrNoPaymentRequired,
	}
	for _, sentinel := range validationErrs {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	metrics.CommitFailures.WithLabelValues(operation).Inc()
	return fmt.Errorf("%w: %s", domain.ErrCommitFailed, err.Error())
}
