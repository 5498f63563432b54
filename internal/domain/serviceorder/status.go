package serviceorder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyStatusName = errors.New("nome do status não pode ser vazio")

// Nomes de status com significado especial para o faturamento e o
// cancelamento. Os demais status são livres, definidos pelo operador.
const (
	StatusFinished  = "Finalizada"
	StatusCancelled = "Cancelada"
)

// Status representa um status configurável de ordem de serviço,
// exibido na ordem definida pelo campo Position.
type Status struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Color     string    `json:"cor"`
	Position  int       `json:"ordem"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStatus cria um novo status de ordem de serviço
func NewStatus(name, color string, position int) (*Status, error) {
	if name == "" {
		return nil, ErrEmptyStatusName
	}
	if color == "" {
		color = "#6b7280"
	}

	return &Status{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     color,
		Position:  position,
		CreatedAt: time.Now(),
	}, nil
}

// StatusRepository define as operações de persistência de status de O.S.
type StatusRepository interface {
	Create(ctx context.Context, s *Status) error
	FindByID(ctx context.Context, id string) (*Status, error)
	FindByName(ctx context.Context, name string) (*Status, error)
	// List retorna todos os status ordenados pelo campo ordem
	List(ctx context.Context) ([]*Status, error)
	Update(ctx context.Context, s *Status) error
	Delete(ctx context.Context, id string) error
}
