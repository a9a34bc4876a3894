package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/fsdevblog/groph-store/internal/transport/api/tokens"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentCustomerIDKey = "currentCustomerID"
)

// extractBearer достает токен из заголовка Authorization. Если токен не
// передан, вернется ошибка ErrTokenNotExist.
func extractBearer(c *gin.Context) (string, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return "", ErrTokenNotExist
	}
	return tokenHeader[len(bearer):], nil
}

// AuthRequired проверяет, что запрос авторизован клиентом. Кладет в контекст
// (поле CurrentCustomerIDKey) id клиента.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := checkCustomerAuthorization(c, jwtTokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		userClaims, ok := token.Claims.(*tokens.UserClaims)
		if !ok {
			_ = c.AbortWithError(http.StatusInternalServerError, errors.New("invalid jwt claims type")).
				SetType(gin.ErrorTypePrivate)
			return
		}
		c.Set(CurrentCustomerIDKey, userClaims.ID)
		c.Next()
	}
}

// AdminRequired проверяет, что запрос авторизован администратором: токен
// валиден и несет админский ключ из конфигурации.
func AdminRequired(jwtTokenSecret []byte, adminAuthKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, bearerErr := extractBearer(c)
		if bearerErr != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		token, validateErr := tokens.ValidateAdminJWT(tokenStr, jwtTokenSecret)
		if validateErr != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		adminClaims, ok := token.Claims.(*tokens.AdminClaims)
		if !ok || adminClaims.AdminKey != adminAuthKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func checkCustomerAuthorization(c *gin.Context, jwtTokenSecret []byte) (*jwt.Token, error) {
	tokenStr, err := extractBearer(c)
	if err != nil {
		return nil, err
	}
	token, validateErr := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
	if validateErr != nil {
		return nil, fmt.Errorf("check authorization: %w", validateErr)
	}
	return token, nil
}
