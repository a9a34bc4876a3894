package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-store/internal/domain"
)

type CardsHandler struct {
	accountSvs AccountServicer
	querySvs   QueryServicer
}

func NewCardsHandler(accountSvs AccountServicer, querySvs QueryServicer) *CardsHandler {
	return &CardsHandler{
		accountSvs: accountSvs,
		querySvs:   querySvs,
	}
}

type CardResponse struct {
	CreditCardNumber int64   `json:"creditCardNumber"`
	CreditLimit      float64 `json:"creditLimit"`
	CreditBalance    float64 `json:"creditBalance"`
}

type TransactionResponse struct {
	TransactionID int64   `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
}

type ReportItemResponse struct {
	ItemName        string  `json:"itemName"`
	ItemDescription string  `json:"itemDescription"`
	Price           float64 `json:"price"`
	ImgLink         string  `json:"imgLink"`
	Quantity        int32   `json:"quantity"`
}

type ReportResponse struct {
	Total      float64              `json:"total"`
	OrderItems []ReportItemResponse `json:"orderItems"`
}

// Index GET RouteGroup + CardsRoute.
func (h *CardsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cards, err := h.querySvs.ListCards(reqCtx, getCustomerIDFromContext(c))
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, convertCards(cards))
}

// Apply POST RouteGroup + CardsRoute. Выпускает клиенту новую карту со
// случайным кредитным лимитом.
func (h *CardsHandler) Apply(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	card, err := h.accountSvs.ApplyForCard(reqCtx, getCustomerIDFromContext(c))
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, convertCard(card))
}

// Transactions GET RouteGroup + CardTransactionsRoute.
func (h *CardsHandler) Transactions(c *gin.Context) {
	cardNumber, ok := paramInt64(c, "number")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.querySvs.ListTransactions(reqCtx, getCustomerIDFromContext(c), cardNumber)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, convertTransactions(transactions))
}

// Report GET RouteGroup + TransactionReportRoute.
func (h *CardsHandler) Report(c *gin.Context) {
	cardNumber, ok := paramInt64(c, "number")
	if !ok {
		return
	}
	transactionID, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.querySvs.GetTransactionReport(
		reqCtx,
		getCustomerIDFromContext(c),
		cardNumber,
		transactionID,
	)
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}

	c.JSON(http.StatusOK, convertReport(report))
}

func convertCard(card *domain.CreditCard) CardResponse {
	return CardResponse{
		CreditCardNumber: card.Number,
		CreditLimit:      card.CreditLimit.InexactFloat64(),
		CreditBalance:    card.CreditBalance.InexactFloat64(),
	}
}

func convertCards(cards []domain.CreditCard) []CardResponse {
	response := make([]CardResponse, 0, len(cards))
	for i := range cards {
		response = append(response, convertCard(&cards[i]))
	}
	return response
}

func convertTransactions(transactions []domain.Transaction) []TransactionResponse {
	response := make([]TransactionResponse, 0, len(transactions))
	for _, trans := range transactions {
		response = append(response, TransactionResponse{
			TransactionID: trans.ID,
			Amount:        trans.Total.InexactFloat64(),
			Date:          trans.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return response
}

func convertReport(report *domain.TransactionReport) ReportResponse {
	items := make([]ReportItemResponse, 0, len(report.OrderItems))
	for _, item := range report.OrderItems {
		items = append(items, ReportItemResponse{
			ItemName:        item.ItemName,
			ItemDescription: item.ItemDescription,
			Price:           item.Price.InexactFloat64(),
			ImgLink:         item.ImgLink,
			Quantity:        item.Quantity,
		})
	}
	return ReportResponse{
		Total:      report.Total.InexactFloat64(),
		OrderItems: items,
	}
}
