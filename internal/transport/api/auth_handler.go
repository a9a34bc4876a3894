package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-store/internal/domain"
	"github.com/fsdevblog/groph-store/internal/service"
	"github.com/fsdevblog/groph-store/internal/transport/api/tokens"
)

const JWTTokenExpire = 1 * time.Hour

type AuthHandler struct {
	accountSvs   AccountServicer
	jwtSecret    []byte
	adminAuthKey string
}

func NewAuthHandler(accountSvs AccountServicer, jwtSecret []byte, adminAuthKey string) *AuthHandler {
	return &AuthHandler{
		accountSvs:   accountSvs,
		jwtSecret:    jwtSecret,
		adminAuthKey: adminAuthKey,
	}
}

type RegisterParams struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"  binding:"required"`
	Email     string `json:"email"     binding:"required"`
	Password  string `json:"password"  binding:"required"`
}

type AuthResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AuthToken string `json:"authToken"`
}

// Register POST RouteGroup + RegisterRoute.
func (h *AuthHandler) Register(c *gin.Context) {
	var params RegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, registerErr := h.accountSvs.Register(reqCtx, service.RegisterArgs{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Password:  params.Password,
	})
	if registerErr != nil {
		abortWithServiceErr(c, registerErr)
		return
	}

	h.respondWithToken(c, customer)
}

type LoginParams struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login POST RouteGroup + LoginRoute.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	customer, loginErr := h.accountSvs.Login(reqCtx, params.Email, params.Password)
	if loginErr != nil {
		// не раскрываем, существует ли email
		if errors.Is(loginErr, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		abortWithServiceErr(c, loginErr)
		return
	}

	h.respondWithToken(c, customer)
}

type AdminLoginParams struct {
	Password string `json:"password" binding:"required"`
}

type AdminAuthResponse struct {
	AuthToken string `json:"authToken"`
}

// AdminLogin POST RouteGroup + AdminLoginRoute.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var params AdminLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if loginErr := h.accountSvs.AdminLogin(params.Password); loginErr != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	token, tokenErr := tokens.GenerateAdminJWT(h.adminAuthKey, JWTTokenExpire, h.jwtSecret)
	if tokenErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, tokenErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &AdminAuthResponse{AuthToken: token})
}

func (h *AuthHandler) respondWithToken(c *gin.Context, customer *domain.Customer) {
	token, tokenErr := tokens.GenerateUserJWT(customer.ID, JWTTokenExpire, h.jwtSecret)
	if tokenErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, tokenErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &AuthResponse{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		AuthToken: token,
	})
}
