package revenue

import (
	"context"
	"time"
)

// Repository define as operações de persistência de receitas manuais
type Repository interface {
	Create(ctx context.Context, r *ManualRevenue) error
	FindByID(ctx context.Context, id string) (*ManualRevenue, error)
	List(ctx context.Context, limit, offset int) ([]*ManualRevenue, error)
	Delete(ctx context.Context, id string) error

	// SumByPeriod soma o valor das receitas manuais com data dentro do período
	SumByPeriod(ctx context.Context, from, to time.Time) (float64, error)
}
