package supplier

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/petrini31/bike-garage-manager/internal/domain/tag"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyDocument = errors.New("CNPJ não pode ser vazio")
)

// Supplier representa um fornecedor de peças e produtos
type Supplier struct {
	ID        string    `json:"id"`
	Document  string    `json:"cnpj"`
	Name      string    `json:"nome"`
	Phone     string    `json:"telefone"`
	Email     string    `json:"email"`
	Address   string    `json:"endereco"`
	City      string    `json:"cidade"`
	State     string    `json:"estado"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tags      []tag.Tag `json:"tags,omitempty"`
}

// NewSupplier cria um novo fornecedor
func NewSupplier(document, name, phone, email, address, city, state string) (*Supplier, error) {
	if document == "" {
		return nil, ErrEmptyDocument
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Supplier{
		ID:        uuid.New().String(),
		Document:  document,
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		City:      city,
		State:     state,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do fornecedor
func (s *Supplier) Update(document, name, phone, email, address, city, state string, active bool) error {
	if document == "" {
		return ErrEmptyDocument
	}
	if name == "" {
		return ErrEmptyName
	}

	s.Document = document
	s.Name = name
	s.Phone = phone
	s.Email = email
	s.Address = address
	s.City = city
	s.State = state
	s.Active = active
	s.UpdatedAt = time.Now()

	return nil
}
