package service

import (
	"fmt"

	"github.com/fsdevblog/groph-store/pkg/uow"
)

type AppServices struct {
	AccountService     *AccountService
	TransactionService *TransactionService
	QueryService       *QueryService
	CatalogService     *CatalogService
}

// Factory собирает сервисы приложения. catalog - репозиторий каталога для
// витринных чтений (возможно, обернутый кешем); движок транзакций работает
// с каталогом только через uow.
func Factory(unitOfWork uow.UOW, catalog CatalogRepository, adminPasswordHash string) (*AppServices, error) {
	accountService, accountServiceErr := NewAccountService(unitOfWork, adminPasswordHash)
	if accountServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountServiceErr.Error())
	}

	queryService, queryServiceErr := NewQueryService(unitOfWork)
	if queryServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", queryServiceErr.Error())
	}

	return &AppServices{
		AccountService:     accountService,
		TransactionService: NewTransactionService(unitOfWork),
		QueryService:       queryService,
		CatalogService:     NewCatalogService(catalog),
	}, nil
}
