package product

import "context"

// Repository define as operações de persistência de produtos.
// As tags associadas são substituídas em bloco a cada gravação.
type Repository interface {
	Create(ctx context.Context, p *Product, tagIDs []string) error
	FindByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, limit, offset int) ([]*Product, error)
	ListByTag(ctx context.Context, tagID string) ([]*Product, error)
	Update(ctx context.Context, p *Product, tagIDs []string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
