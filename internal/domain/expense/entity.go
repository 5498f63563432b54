package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrInvalidValue = errors.New("valor deve ser maior que zero")
)

// Status de pagamento do gasto
const (
	StatusPending = "Pendente"
	StatusPaid    = "Pago"
	StatusOverdue = "Atrasado"
)

// Expense representa um gasto da oficina, pontual ou recorrente
type Expense struct {
	ID          string     `json:"id"`
	Name        string     `json:"nome"`
	Description string     `json:"descricao"`
	Category    string     `json:"categoria"`
	Value       float64    `json:"valor"`
	DueDate     *time.Time `json:"data_vencimento"`
	PaymentDate *time.Time `json:"data_pagamento"`
	Recurring   bool       `json:"recorrente"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewExpense cria um novo gasto
func NewExpense(name, description, category string, value float64, dueDate, paymentDate *time.Time, recurring bool, status string) (*Expense, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if value <= 0 {
		return nil, ErrInvalidValue
	}
	if status == "" {
		status = StatusPending
	}

	now := time.Now()
	return &Expense{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Category:    category,
		Value:       value,
		DueDate:     dueDate,
		PaymentDate: paymentDate,
		Recurring:   recurring,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados do gasto
func (e *Expense) Update(name, description, category string, value float64, dueDate, paymentDate *time.Time, recurring bool, status string) error {
	if name == "" {
		return ErrEmptyName
	}
	if value <= 0 {
		return ErrInvalidValue
	}

	e.Name = name
	e.Description = description
	e.Category = category
	e.Value = value
	e.DueDate = dueDate
	e.PaymentDate = paymentDate
	e.Recurring = recurring
	e.Status = status
	e.UpdatedAt = time.Now()

	return nil
}

// MarkPaid registra o pagamento do gasto
func (e *Expense) MarkPaid(paymentDate time.Time) {
	e.PaymentDate = &paymentDate
	e.Status = StatusPaid
	e.UpdatedAt = time.Now()
}
