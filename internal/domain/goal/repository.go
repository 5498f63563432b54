package goal

import "context"

// Repository define as operações de persistência de metas
type Repository interface {
	Create(ctx context.Context, g *Goal) error
	FindByID(ctx context.Context, id string) (*Goal, error)
	List(ctx context.Context, limit, offset int) ([]*Goal, error)
	Update(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// RevenueGoalRepository persiste as metas de faturamento da oficina
type RevenueGoalRepository interface {
	// Get retorna as metas vigentes ou nil quando nunca configuradas
	Get(ctx context.Context) (*RevenueGoal, error)
	// Save grava as metas substituindo qualquer registro anterior
	Save(ctx context.Context, rg *RevenueGoal) error
}
