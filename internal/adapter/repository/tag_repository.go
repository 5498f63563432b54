package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petrini31/bike-garage-manager/internal/domain/tag"
)

// Erros específicos do repositório
var (
	ErrTagNotFound  = errors.New("tag não encontrada")
	ErrTagDuplicate = errors.New("tag com mesmo nome já existe")
)

// TagRepository implementa a interface tag.Repository
type TagRepository struct {
	db *pgxpool.Pool
}

// NewTagRepository cria uma nova instância de TagRepository
func NewTagRepository(db *pgxpool.Pool) tag.Repository {
	return &TagRepository{
		db: db,
	}
}

// Create implementa tag.Repository.Create
func (r *TagRepository) Create(ctx context.Context, t *tag.Tag) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tags (id, nome, cor, created_at) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Name, t.Color, t.CreatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrTagDuplicate
		}
		return fmt.Errorf("erro ao criar tag: %w", err)
	}

	return nil
}

// FindByID implementa tag.Repository.FindByID
func (r *TagRepository) FindByID(ctx context.Context, id string) (*tag.Tag, error) {
	var t tag.Tag

	err := r.db.QueryRow(ctx,
		"SELECT id, nome, cor, created_at FROM tags WHERE id = $1",
		id).Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("erro ao buscar tag: %w", err)
	}

	return &t, nil
}

// List implementa tag.Repository.List
func (r *TagRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, nome, cor, created_at FROM tags ORDER BY nome ASC")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tags: %w", err)
	}
	defer rows.Close()

	tags := make([]*tag.Tag, 0)
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler tag: %w", err)
		}
		tags = append(tags, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return tags, nil
}

// Update implementa tag.Repository.Update
func (r *TagRepository) Update(ctx context.Context, t *tag.Tag) error {
	result, err := r.db.Exec(ctx,
		"UPDATE tags SET nome = $1, cor = $2 WHERE id = $3",
		t.Name, t.Color, t.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrTagDuplicate
		}
		return fmt.Errorf("erro ao atualizar tag: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTagNotFound
	}

	return nil
}

// Delete implementa tag.Repository.Delete. As associações com produtos e
// fornecedores caem junto por ON DELETE CASCADE.
func (r *TagRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM tags WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir tag: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTagNotFound
	}

	return nil
}
