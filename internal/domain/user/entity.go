package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName          = errors.New("nome não pode ser vazio")
	ErrEmptyLogin         = errors.New("login não pode ser vazio")
	ErrEmptyPassword      = errors.New("senha não pode ser vazia")
	ErrInvalidUserType    = errors.New("tipo de usuário inválido")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserInactive       = errors.New("usuário inativo")
)

// Tipos de usuário
const (
	TypeAdmin = "admin"
	TypeStaff = "funcionario"
)

// User representa um usuário do sistema
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	Login        string    `json:"login"`
	Email        string    `json:"email"`
	Phone        string    `json:"telefone"`
	PasswordHash string    `json:"-"`
	Type         string    `json:"user_type"`
	Active       bool      `json:"ativo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já criptografada
func NewUser(name, login, email, phone, password, userType string) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if login == "" {
		return nil, ErrEmptyLogin
	}
	if userType != TypeAdmin && userType != TypeStaff {
		return nil, ErrInvalidUserType
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Login:     login,
		Email:     email,
		Phone:     phone,
		Type:      userType,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword criptografa e define a senha do usuário
func (u *User) SetPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()

	return nil
}

// CheckPassword verifica se a senha informada confere com a armazenada
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Update atualiza os dados cadastrais do usuário
func (u *User) Update(name, login, email, phone, userType string, active bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if login == "" {
		return ErrEmptyLogin
	}
	if userType != TypeAdmin && userType != TypeStaff {
		return ErrInvalidUserType
	}

	u.Name = name
	u.Login = login
	u.Email = email
	u.Phone = phone
	u.Type = userType
	u.Active = active
	u.UpdatedAt = time.Now()

	return nil
}

// IsAdmin indica se o usuário tem perfil de administrador
func (u *User) IsAdmin() bool {
	return u.Type == TypeAdmin
}
