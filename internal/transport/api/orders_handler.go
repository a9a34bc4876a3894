package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-store/internal/domain"
)

type OrdersHandler struct {
	transactionSvs TransactionServicer
}

func NewOrdersHandler(transactionSvs TransactionServicer) *OrdersHandler {
	return &OrdersHandler{transactionSvs: transactionSvs}
}

type OrderItemParams struct {
	ItemID   int64 `json:"itemId"   binding:"required"`
	Quantity int32 `json:"quantity" binding:"required"`
}

type CreateOrderParams struct {
	CardNumber int64             `json:"cardNumber" binding:"required"`
	Items      []OrderItemParams `json:"items"      binding:"required"`
}

// Create POST RouteGroup + OrdersRoute. Принадлежность карты проверяет
// сервис, здесь только разбор запроса.
func (h *OrdersHandler) Create(c *gin.Context) {
	var params CreateOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	items := make([]domain.OrderItem, 0, len(params.Items))
	for _, item := range params.Items {
		items = append(items, domain.OrderItem{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	trans, err := h.transactionSvs.PlaceOrder(reqCtx, getCustomerIDFromContext(c), params.CardNumber, items)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{
		TransactionID: trans.ID,
		Amount:        trans.Total.InexactFloat64(),
		Date:          trans.CreatedAt.Format("2006-01-02 15:04:05"),
	})
}

type PaymentParams struct {
	CardNumber int64           `json:"cardNumber" binding:"required"`
	Amount     decimal.Decimal `json:"amount"     binding:"required"`
}

// Pay POST RouteGroup + PaymentsRoute. Сумма приходит строкой или числом,
// decimal разбирает оба варианта без потери точности. Платеж принимается
// по любой существующей карте, не только по картам плательщика.
func (h *OrdersHandler) Pay(c *gin.Context) {
	var params PaymentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	trans, err := h.transactionSvs.MakePayment(reqCtx, params.CardNumber, params.Amount)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{
		TransactionID: trans.ID,
		Amount:        trans.Total.InexactFloat64(),
		Date:          trans.CreatedAt.Format("2006-01-02 15:04:05"),
	})
}
