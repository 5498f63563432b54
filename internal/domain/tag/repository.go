package tag

import "context"

// Repository define as operações de persistência de tags
type Repository interface {
	Create(ctx context.Context, t *Tag) error
	FindByID(ctx context.Context, id string) (*Tag, error)
	List(ctx context.Context) ([]*Tag, error)
	Update(ctx context.Context, t *Tag) error
	Delete(ctx context.Context, id string) error
}
