package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type CustomerRepository interface {
	Create(ctx context.Context, args repoargs.CreateCustomer) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Customer, error)
}

type CardRepository interface {
	Create(ctx context.Context, args repoargs.CreateCard) (*domain.CreditCard, error)
	FindByNumber(ctx context.Context, number int64) (*domain.CreditCard, error)
	FindByNumberForUpdate(ctx context.Context, number int64) (*domain.CreditCard, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]domain.CreditCard, error)
	AddToBalance(ctx context.Context, number int64, delta decimal.Decimal) (*domain.CreditCard, error)
}

type CatalogRepository interface {
	GetVendors(ctx context.Context) ([]domain.Vendor, error)
	FindVendorByName(ctx context.Context, name string) (*domain.Vendor, error)
	GetItemsByVendorID(ctx context.Context, vendorID int64) ([]domain.VendorItem, error)
	GetItemsByIDs(ctx context.Context, ids []int64) ([]domain.VendorItem, error)
}

type LedgerRepository interface {
	CreateTransaction(ctx context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error)
	CreateDetail(ctx context.Context, args repoargs.DetailCreate) (*domain.TransactionDetail, error)
	GetByCardNumber(ctx context.Context, cardNumber int64) ([]domain.Transaction, error)
	FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	GetReportItems(ctx context.Context, transactionID int64) ([]domain.ReportItem, error)
	GetVendorSales(ctx context.Context, vendorID int64) ([]domain.VendorSale, error)
}
