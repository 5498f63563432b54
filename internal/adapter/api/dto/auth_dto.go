package dto

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

// LoginResponse representa a resposta de login com o token de acesso
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
