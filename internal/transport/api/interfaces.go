package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/service"
)

type AccountServicer interface {
	Register(ctx context.Context, args service.RegisterArgs) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, error)
	AdminLogin(password string) error
	ApplyForCard(ctx context.Context, customerID int64) (*domain.CreditCard, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ToggleActive(ctx context.Context, customerID int64) (*domain.Customer, error)
}

type TransactionServicer interface {
	PlaceOrder(
		ctx context.Context,
		customerID int64,
		cardNumber int64,
		items []domain.OrderItem,
	) (*domain.Transaction, error)
	MakePayment(ctx context.Context, cardNumber int64, amount decimal.Decimal) (*domain.Transaction, error)
}

type QueryServicer interface {
	ListCards(ctx context.Context, customerID int64) ([]domain.CreditCard, error)
	ListTransactions(ctx context.Context, customerID int64, cardNumber int64) ([]domain.Transaction, error)
	GetTransactionReport(
		ctx context.Context,
		customerID int64,
		cardNumber int64,
		transactionID int64,
	) (*domain.TransactionReport, error)
	VendorTransactions(ctx context.Context, vendorName string) ([]domain.VendorSale, error)
}

type CatalogServicer interface {
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	VendorItems(ctx context.Context, vendorName string) ([]domain.VendorItem, error)
}
