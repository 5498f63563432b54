package customer

import "context"

// Repository define as operações de persistência de clientes
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id string) (*Customer, error)
	FindByName(ctx context.Context, name string, limit, offset int) ([]*Customer, error)
	List(ctx context.Context, limit, offset int) ([]*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
