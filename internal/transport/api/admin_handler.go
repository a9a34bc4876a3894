package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-store/internal/domain"
)

// AdminHandler читает данные клиентов от их имени: для выписок используется
// тот же QueryServicer, что и в клиентских роутах, с id клиента из URL
// вместо id из токена.
type AdminHandler struct {
	accountSvs AccountServicer
	querySvs   QueryServicer
}

func NewAdminHandler(accountSvs AccountServicer, querySvs QueryServicer) *AdminHandler {
	return &AdminHandler{
		accountSvs: accountSvs,
		querySvs:   querySvs,
	}
}

type CustomerResponse struct {
	CustomerID int64  `json:"customerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	IsActive   bool   `json:"isActive"`
}

// Customers GET RouteGroup + AdminCustomersRoute.
func (h *AdminHandler) Customers(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customers, err := h.accountSvs.ListCustomers(reqCtx)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	response := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		response = append(response, convertCustomer(&customers[i]))
	}
	c.JSON(http.StatusOK, response)
}

// ToggleActive POST RouteGroup + AdminCustomerActiveRoute. Переключает флаг
// isActive клиента на противоположный.
func (h *AdminHandler) ToggleActive(c *gin.Context) {
	customerID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, err := h.accountSvs.ToggleActive(reqCtx, customerID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, convertCustomer(customer))
}

// CustomerCards GET RouteGroup + AdminCustomerCardsRoute.
func (h *AdminHandler) CustomerCards(c *gin.Context) {
	customerID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cards, err := h.querySvs.ListCards(reqCtx, customerID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, convertCards(cards))
}

// CustomerTransactions GET RouteGroup + AdminCustomerTransactionsRoute.
func (h *AdminHandler) CustomerTransactions(c *gin.Context) {
	customerID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	cardNumber, ok := paramInt64(c, "number")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.querySvs.ListTransactions(reqCtx, customerID, cardNumber)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, convertTransactions(transactions))
}

// CustomerReport GET RouteGroup + AdminCustomerReportRoute.
func (h *AdminHandler) CustomerReport(c *gin.Context) {
	customerID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	cardNumber, ok := paramInt64(c, "number")
	if !ok {
		return
	}
	transactionID, ok := paramInt64(c, "tid")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.querySvs.GetTransactionReport(reqCtx, customerID, cardNumber, transactionID)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, convertReport(report))
}

type VendorSaleResponse struct {
	TransactionID int64   `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	CustomerID    int64   `json:"customerId"`
	CardNumber    int64   `json:"cardNumber"`
}

// VendorTransactions GET RouteGroup + AdminVendorTransactionsRoute.
// Отчет по продажам вендора: строка на каждую позицию журнала с его товаром.
func (h *AdminHandler) VendorTransactions(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sales, err := h.querySvs.VendorTransactions(reqCtx, c.Param("name"))
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	response := make([]VendorSaleResponse, 0, len(sales))
	for _, sale := range sales {
		response = append(response, VendorSaleResponse{
			TransactionID: sale.TransactionID,
			Amount:        sale.Total.InexactFloat64(),
			Date:          sale.CreatedAt.Format("2006-01-02 15:04:05"),
			FirstName:     sale.FirstName,
			LastName:      sale.LastName,
			CustomerID:    sale.CustomerID,
			CardNumber:    sale.CardNumber,
		})
	}
	c.JSON(http.StatusOK, response)
}

func convertCustomer(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: customer.ID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Email:      customer.Email,
		IsActive:   customer.IsActive,
	}
}
