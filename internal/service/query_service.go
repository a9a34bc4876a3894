package service

import (
	"context"
	"errors"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
	"github.com/fsdevblog/groph-store/pkg/uow"
)

// QueryService read-only проекции: список карт, история транзакций и
// развернутая выписка. Путь чтения полностью независим от движка транзакций.
//
// Админские хендлеры используют те же методы, передавая customerID выбранного
// клиента: проверки карта->клиент и транзакция->карта сохраняются, пропускается
// лишь привязка к аутентифицированному пользователю.
type QueryService struct {
	uow         uow.UOW
	cardRepo    CardRepository
	ledgerRepo  LedgerRepository
	catalogRepo CatalogRepository
}

func NewQueryService(u uow.UOW) (*QueryService, error) {
	cardRepo, cardRepoErr := uow.GetRepositoryAs[CardRepository](u, uow.RepositoryName(repoargs.CardRepoName))
	if cardRepoErr != nil {
		return nil, cardRepoErr //nolint:wrapcheck
	}
	ledgerRepo, ledgerRepoErr := uow.GetRepositoryAs[LedgerRepository](u, uow.RepositoryName(repoargs.LedgerRepoName))
	if ledgerRepoErr != nil {
		return nil, ledgerRepoErr //nolint:wrapcheck
	}
	catalogRepo, catalogRepoErr := uow.GetRepositoryAs[CatalogRepository](u, uow.RepositoryName(repoargs.CatalogRepoName))
	if catalogRepoErr != nil {
		return nil, catalogRepoErr //nolint:wrapcheck
	}
	return &QueryService{
		uow:         u,
		cardRepo:    cardRepo,
		ledgerRepo:  ledgerRepo,
		catalogRepo: catalogRepo,
	}, nil
}

func (q *QueryService) ListCards(ctx context.Context, customerID int64) ([]domain.CreditCard, error) {
	cards, err := q.cardRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return cards, nil
}

// ListTransactions возвращает транзакции карты в хронологическом порядке.
// Сначала проверяется владение: ErrCardNotFound, если карты нет,
// ErrOwnershipMismatch, если она принадлежит другому клиенту.
func (q *QueryService) ListTransactions(
	ctx context.Context,
	customerID int64,
	cardNumber int64,
) ([]domain.Transaction, error) {
	if _, err := q.verifyCardOwnership(ctx, customerID, cardNumber); err != nil {
		return nil, err
	}
	transactions, err := q.ledgerRepo.GetByCardNumber(ctx, cardNumber)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// GetTransactionReport возвращает выписку по транзакции: итог и позиции заказа.
// Поверх проверки владения картой проверяется, что транзакция принадлежит
// именно этой карте - иначе ErrTransactionNotFound.
func (q *QueryService) GetTransactionReport(
	ctx context.Context,
	customerID int64,
	cardNumber int64,
	transactionID int64,
) (*domain.TransactionReport, error) {
	card, ownErr := q.verifyCardOwnership(ctx, customerID, cardNumber)
	if ownErr != nil {
		return nil, ownErr
	}

	trans, transErr := q.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if transErr != nil {
		if errors.Is(transErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound //nolint:wrapcheck
		}
		return nil, transErr //nolint:wrapcheck
	}
	if trans.CardNumber != card.Number {
		return nil, domain.ErrTransactionNotFound //nolint:wrapcheck
	}

	items, itemsErr := q.ledgerRepo.GetReportItems(ctx, transactionID)
	if itemsErr != nil {
		return nil, itemsErr //nolint:wrapcheck
	}

	return &domain.TransactionReport{
		Total:      trans.Total,
		OrderItems: items,
	}, nil
}

// VendorTransactions отчет по продажам вендора: все позиции журнала с его
// товарами, развернутые до клиента и номера карты. Если вендора с таким
// именем нет, вернется domain.ErrRecordNotFound.
func (q *QueryService) VendorTransactions(ctx context.Context, vendorName string) ([]domain.VendorSale, error) {
	vendor, findErr := q.catalogRepo.FindVendorByName(ctx, vendorName)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	sales, salesErr := q.ledgerRepo.GetVendorSales(ctx, vendor.ID)
	if salesErr != nil {
		return nil, salesErr //nolint:wrapcheck
	}
	return sales, nil
}

func (q *QueryService) verifyCardOwnership(
	ctx context.Context,
	customerID int64,
	cardNumber int64,
) (*domain.CreditCard, error) {
	card, err := q.cardRepo.FindByNumber(ctx, cardNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrCardNotFound //nolint:wrapcheck
		}
		return nil, err //nolint:wrapcheck
	}
	if card.CustomerID != customerID {
		return nil, domain.ErrOwnershipMismatch //nolint:wrapcheck
	}
	return card, nil
}
