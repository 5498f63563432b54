package supplier

import "context"

// Repository define as operações de persistência de fornecedores.
// As tags associadas são substituídas em bloco a cada gravação.
type Repository interface {
	Create(ctx context.Context, s *Supplier, tagIDs []string) error
	FindByID(ctx context.Context, id string) (*Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*Supplier, error)
	Update(ctx context.Context, s *Supplier, tagIDs []string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
