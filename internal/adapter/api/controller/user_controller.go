package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/dto"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	userdomain "github.com/petrini31/bike-garage-manager/internal/domain/user"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
)

// UserController gerencia as requisições relacionadas a usuários
type UserController struct {
	userRepo userdomain.Repository
	logger   logger.Logger
}

// NewUserController cria uma nova instância de UserController
func NewUserController(userRepo userdomain.Repository, logger logger.Logger) *UserController {
	return &UserController{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create cria um novo usuário
// @Summary Criar usuário
// @Description Cria um usuário do sistema (somente administradores)
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param usuario body dto.UserRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if req.Password == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "senha é obrigatória", ""))
		return
	}

	u, err := userdomain.NewUser(req.Name, req.Login, req.Email, req.Phone, req.Password, req.Type)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar usuário", err.Error()))
		return
	}

	if err := c.userRepo.Create(ctx, u); err != nil {
		if err == repository.ErrUserDuplicate {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "login já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar usuário no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// Get retorna um usuário pelo ID
// @Summary Buscar usuário
// @Description Retorna um usuário pelo seu ID (somente administradores)
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	u, err := c.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrUserNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuário não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// List retorna a lista de usuários
// @Summary Listar usuários
// @Description Retorna a lista de usuários paginada (somente administradores)
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.UserListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios [get]
func (c *UserController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	offset := (page - 1) * size

	users, err := c.userRepo.List(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar usuários", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar usuários", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users, len(users), page, size))
}

// Update atualiza um usuário
// @Summary Atualizar usuário
// @Description Atualiza os dados de um usuário; a senha só é trocada quando informada
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do usuário"
// @Param usuario body dto.UserRequest true "Dados do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u, err := c.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrUserNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuário não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	active := u.Active
	if req.Active != nil {
		active = *req.Active
	}

	if err := u.Update(req.Name, req.Login, req.Email, req.Phone, req.Type, active); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar usuário", err.Error()))
		return
	}

	if req.Password != "" {
		if err := u.SetPassword(req.Password); err != nil {
			c.logger.Error("erro ao gerar hash da senha", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar senha", err.Error()))
			return
		}
	}

	if err := c.userRepo.Update(ctx, u); err != nil {
		if err == repository.ErrUserDuplicate {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "login já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar usuário no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// Delete remove um usuário
// @Summary Excluir usuário
// @Description Remove um usuário do sistema (somente administradores)
// @Tags usuarios
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /usuarios/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.userRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrUserNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "usuário não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("usuário excluído com sucesso", nil))
}
