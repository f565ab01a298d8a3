package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/infrastructure/jwt"
	"user-account-api/internal/interface/api/rest/dto/auth"
	"user-account-api/internal/interface/api/rest/dto/user"
	"user-account-api/internal/interface/api/rest/middleware"
	"user-account-api/internal/interface/api/rest/validator"
)

const tokenType = "Bearer"

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteLogout, ac.LogoutHandler)
	r.GET(RouteAuth, middleware.AuthMiddleware(jwtService), ac.CheckHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		badRequest(c, errs)
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), user.NormalizeEmail(req.Email), req.Password)
	if err != nil {
		respondError(c, ac.logger, "Login()", err)
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{Token: token, TokenType: tokenType})
}

func (ac *AuthController) LogoutHandler(c *gin.Context) {
	var req auth.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}

	if errs := validator.ValidateLogout(req); errs != nil {
		badRequest(c, errs)
		return
	}

	n, err := ac.authService.Logout(c.Request.Context(), req.ID)
	if err != nil {
		respondError(c, ac.logger, "Logout()", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": n})
}

func (ac *AuthController) CheckHandler(c *gin.Context) {
	token, err := ac.authService.CheckSession(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, ac.logger, "CheckSession()", err)
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{Token: token, TokenType: tokenType})
}
