package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/jwt"
	"user-account-api/internal/interface/api/rest/dto/user"
	"user-account-api/internal/interface/api/rest/middleware"
	"user-account-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	authed := r.Group("", middleware.AuthMiddleware(jwtService))
	admin := authed.Group("", middleware.RequireRole(domain.RoleAdmin))

	admin.POST(RouteRegistration, uc.RegistrationHandler)
	admin.GET(RouteAllUsers, uc.GetUsersHandler)
	admin.POST(RouteBlockByAdmin, uc.BlockByAdminHandler)
	authed.GET(RouteOneUser, uc.GetUserHandler)
	authed.POST(RouteBlockSelf, uc.BlockSelfHandler)

	return uc
}

func (uc *UserController) RegistrationHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}
	if errs := validator.ValidateRegistration(req); errs != nil {
		badRequest(c, errs)
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		badRequest(c, map[string]string{"dateOfBirth": err.Error()})
		return
	}

	u, err := uc.userService.Register(c.Request.Context(), uDomain, req.Password)
	if err != nil {
		respondError(c, uc.logger, "Register()", err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	page, limit := validator.ParsePagination(c.Query("page"), c.Query("limit"))

	p, err := uc.userService.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, uc.logger, "ListUsers()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponsePage(p))
}

// GetUserHandler reads ?userid=. An optional ?id= names the acting account
// and must be the token's own id.
func (uc *UserController) GetUserHandler(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	id, ok := validator.ParseID(c.Query("userid"))
	if !ok {
		badRequest(c, map[string]string{"userid": "must be a positive integer"})
		return
	}
	if raw, present := c.GetQuery("id"); present {
		actingID, ok := validator.ParseID(raw)
		if !ok {
			badRequest(c, map[string]string{"id": "must be a positive integer"})
			return
		}
		if actingID != caller.ID {
			respondError(c, uc.logger, "GetUser()", domain.ErrAccessDenied)
			return
		}
	}

	u, err := uc.userService.GetUser(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, uc.logger, "GetUser()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) BlockByAdminHandler(c *gin.Context) {
	var req user.AdminBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}
	if errs := validator.ValidateAdminBlock(req); errs != nil {
		badRequest(c, errs)
		return
	}

	cred := domain.Credentials{Email: user.NormalizeEmail(req.Email), Password: req.Password}
	err := uc.userService.BlockByAdmin(c.Request.Context(), middleware.CurrentUser(c), req.ID, req.AdminEmail, cred)
	if err != nil {
		respondError(c, uc.logger, "BlockByAdmin()", err)
		return
	}

	c.JSON(http.StatusOK, blockedMessage(req.ID))
}

func (uc *UserController) BlockSelfHandler(c *gin.Context) {
	var req user.SelfBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}
	if errs := validator.ValidateSelfBlock(req); errs != nil {
		badRequest(c, errs)
		return
	}

	cred := domain.Credentials{Email: user.NormalizeEmail(req.Email), Password: req.Password}
	err := uc.userService.BlockSelf(c.Request.Context(), middleware.CurrentUser(c), req.ID, req.UserEmail, cred)
	if err != nil {
		respondError(c, uc.logger, "BlockSelf()", err)
		return
	}

	c.JSON(http.StatusOK, blockedMessage(req.ID))
}

func blockedMessage(id int64) user.MessageResponse {
	return user.MessageResponse{Message: fmt.Sprintf("user with id %d blocked", id)}
}
