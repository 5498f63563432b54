package dto

import (
	"time"

	"github.com/petrini31/bike-garage-manager/internal/domain/user"
)

// UserRequest representa a requisição de usuário
type UserRequest struct {
	Name     string `json:"nome" binding:"required"`
	Login    string `json:"login" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"telefone"`
	Password string `json:"senha"`
	Type     string `json:"user_type" binding:"required"`
	Active   *bool  `json:"ativo"`
}

// UserResponse representa a resposta de usuário, sem o hash da senha
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Type      string    `json:"user_type"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse representa a resposta de lista de usuários
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

// ToUserResponse converte a entidade para o DTO de resposta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Login:     u.Login,
		Email:     u.Email,
		Phone:     u.Phone,
		Type:      u.Type,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserListResponse converte uma lista de entidades para o DTO de lista
func ToUserListResponse(users []*user.User, total, page, size int) UserListResponse {
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, ToUserResponse(u))
	}

	return UserListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}
}
