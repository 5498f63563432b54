package revenue

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription = errors.New("descrição não pode ser vazia")
	ErrInvalidValue     = errors.New("valor deve ser maior que zero")
)

// ManualRevenue representa uma receita lançada à mão, fora do fluxo de O.S.
type ManualRevenue struct {
	ID          string    `json:"id"`
	Description string    `json:"descricao"`
	Value       float64   `json:"valor"`
	Date        time.Time `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewManualRevenue cria uma nova receita manual
func NewManualRevenue(description string, value float64, date time.Time) (*ManualRevenue, error) {
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if value <= 0 {
		return nil, ErrInvalidValue
	}

	return &ManualRevenue{
		ID:          uuid.New().String(),
		Description: description,
		Value:       value,
		Date:        date,
		CreatedAt:   time.Now(),
	}, nil
}
