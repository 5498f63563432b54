package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	userdomain "github.com/petrini31/bike-garage-manager/internal/domain/user"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// AuthController gerencia as requisições de autenticação
type AuthController struct {
	userRepo   userdomain.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepo userdomain.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login autentica um usuário e retorna o token de acesso
// @Summary Login
// @Description Autentica por login e senha e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciais body dto.LoginRequest true "Credenciais de acesso"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u, err := c.userRepo.FindByLogin(ctx, req.Login)
	if err != nil {
		if err == repository.ErrUserNotFound {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", userdomain.ErrInvalidCredentials.Error()))
			return
		}
		c.logger.Error("erro ao buscar usuário para login", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autenticar", err.Error()))
		return
	}

	if !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", userdomain.ErrInvalidCredentials.Error()))
		return
	}

	if !u.Active {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuário inativo", userdomain.ErrUserInactive.Error()))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(u),
	})
}

// Me retorna o usuário autenticado
// @Summary Usuário autenticado
// @Description Retorna os dados do usuário do token
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "não autenticado", ""))
		return
	}

	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuário não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar usuário autenticado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
