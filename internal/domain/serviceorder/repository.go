package serviceorder

import "context"

// Repository define as operações de persistência de ordens de serviço.
// Criação e edição gravam a ordem e seus itens na mesma transação: na edição
// os itens existentes são removidos e reinseridos.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, limit, offset int) ([]*Order, error)
	ListByStatus(ctx context.Context, statusID string, limit, offset int) ([]*Order, error)
	Update(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, id, statusID string) error
	Cancel(ctx context.Context, id, statusID, reason string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
