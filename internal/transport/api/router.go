package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-store/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup             = "/api"
	RegisterRoute          = "/register"
	LoginRoute             = "/login"
	AdminLoginRoute        = "/admin/login"
	VendorsRoute           = "/vendors"
	VendorItemsRoute       = "/vendors/:name/items"
	CardsRoute             = "/cards"
	CardTransactionsRoute  = "/cards/:number/transactions"
	TransactionReportRoute = "/cards/:number/transactions/:id"
	OrdersRoute            = "/orders"
	PaymentsRoute          = "/payments"

	AdminCustomersRoute            = "/admin/customers"
	AdminCustomerActiveRoute       = "/admin/customers/:id/active"
	AdminCustomerCardsRoute        = "/admin/customers/:id/cards"
	AdminCustomerTransactionsRoute = "/admin/customers/:id/cards/:number/transactions"
	AdminCustomerReportRoute       = "/admin/customers/:id/cards/:number/transactions/:tid"
	AdminVendorTransactionsRoute   = "/admin/vendors/:name/transactions"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	AccountService     AccountServicer
	TransactionService TransactionServicer
	QueryService       QueryServicer
	CatalogService     CatalogServicer
	JWTSecretKey       []byte
	AdminAuthKey       string
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Metrics())
	r.Use(middlewares.Errors())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(args.AccountService, args.JWTSecretKey, args.AdminAuthKey)
	cardsHandler := NewCardsHandler(args.AccountService, args.QueryService)
	ordersHandler := NewOrdersHandler(args.TransactionService)
	catalogHandler := NewCatalogHandler(args.CatalogService)
	adminHandler := NewAdminHandler(args.AccountService, args.QueryService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, authHandler.Register)
	api.POST(LoginRoute, authHandler.Login)
	api.POST(AdminLoginRoute, authHandler.AdminLogin)
	api.GET(VendorsRoute, catalogHandler.Vendors)
	api.GET(VendorItemsRoute, catalogHandler.Items)

	customer := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного клиента.
	customer.GET(CardsRoute, cardsHandler.Index)
	customer.POST(CardsRoute, cardsHandler.Apply)
	customer.GET(CardTransactionsRoute, cardsHandler.Transactions)
	customer.GET(TransactionReportRoute, cardsHandler.Report)
	customer.POST(OrdersRoute, ordersHandler.Create)
	customer.POST(PaymentsRoute, ordersHandler.Pay)

	admin := api.Group("", middlewares.AdminRequired(args.JWTSecretKey, args.AdminAuthKey))
	admin.GET(AdminCustomersRoute, adminHandler.Customers)
	admin.POST(AdminCustomerActiveRoute, adminHandler.ToggleActive)
	admin.GET(AdminCustomerCardsRoute, adminHandler.CustomerCards)
	admin.GET(AdminCustomerTransactionsRoute, adminHandler.CustomerTransactions)
	admin.GET(AdminCustomerReportRoute, adminHandler.CustomerReport)
	admin.GET(AdminVendorTransactionsRoute, adminHandler.VendorTransactions)

	return r
}
