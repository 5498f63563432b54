package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// Customer representa um cliente da oficina
type Customer struct {
	ID        string    `json:"id"`
	Number    int       `json:"numero_cliente"` // Número sequencial de exibição, atribuído pelo banco
	Name      string    `json:"nome"`
	Phone     string    `json:"telefone"`
	Email     string    `json:"email"`
	Address   string    `json:"endereco"`
	Document  string    `json:"cpf_cnpj"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCustomer cria um novo cliente
func NewCustomer(name, phone, email, address, document string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		Document:  document,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do cliente
func (c *Customer) Update(name, phone, email, address, document string) error {
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.Document = document
	c.UpdatedAt = time.Now()

	return nil
}
