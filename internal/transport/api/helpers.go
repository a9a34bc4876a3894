package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/transport/api/middlewares"
)

func getCustomerIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentCustomerIDKey)
}

func paramInt64(c *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

// abortWithServiceErr транслирует бизнес-ошибку в http статус. Ошибки
// валидации безопасно показывать клиенту (ErrorTypePublic), внутренние сбои
// уходят в лог и заменяются обезличенным текстом.
func abortWithServiceErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrOwnershipMismatch),
		errors.Is(err, domain.ErrCustomerInactive):
		_ = c.AbortWithError(http.StatusForbidden, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrItemsInvalid),
		errors.Is(err, domain.ErrQuantityInvalid),
		errors.Is(err, domain.ErrPaymentInvalid),
		errors.Is(err, domain.ErrCustomerInvalid):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrNoPaymentRequired):
		_ = c.AbortWithError(http.StatusPaymentRequired, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrEmailTaken):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrPasswordMissMatch):
		c.AbortWithStatus(http.StatusUnauthorized)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
