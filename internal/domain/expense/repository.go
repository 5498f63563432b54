package expense

import (
	"context"
	"time"
)

// Repository define as operações de persistência de gastos
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	FindByID(ctx context.Context, id string) (*Expense, error)
	List(ctx context.Context, limit, offset int) ([]*Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)

	// SumByPeriod soma o valor dos gastos com vencimento dentro do período
	SumByPeriod(ctx context.Context, from, to time.Time) (float64, error)
}
