package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petrini31/bike-garage-manager/internal/domain/supplier"
	"github.com/petrini31/bike-garage-manager/internal/domain/tag"
)

// Erros específicos do repositório
var (
	ErrSupplierNotFound  = errors.New("fornecedor não encontrado")
	ErrSupplierDuplicate = errors.New("fornecedor com mesmo CNPJ já existe")
)

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{
		db: db,
	}
}

// Create implementa supplier.Repository.Create. O fornecedor e suas tags são
// gravados na mesma transação.
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier, tagIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO fornecedores (
			id, cnpj, nome, telefone, email, endereco, cidade, estado, ativo,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`,
		s.ID, s.Document, s.Name, s.Phone, s.Email, s.Address, s.City,
		s.State, s.Active, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrSupplierDuplicate
		}
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}

	if err := replaceSupplierTags(ctx, tx, s.ID, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	var s supplier.Supplier

	err := r.db.QueryRow(ctx,
		`SELECT id, cnpj, nome, telefone, email, endereco, cidade, estado,
			ativo, created_at, updated_at
		FROM fornecedores WHERE id = $1`,
		id).Scan(
		&s.ID, &s.Document, &s.Name, &s.Phone, &s.Email, &s.Address,
		&s.City, &s.State, &s.Active, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}

	tags, err := r.findTags(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Tags = tags

	return &s, nil
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, limit, offset int) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, cnpj, nome, telefone, email, endereco, cidade, estado,
			ativo, created_at, updated_at
		FROM fornecedores
		ORDER BY nome ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	suppliers := make([]*supplier.Supplier, 0)
	for rows.Next() {
		var s supplier.Supplier
		err := rows.Scan(
			&s.ID, &s.Document, &s.Name, &s.Phone, &s.Email, &s.Address,
			&s.City, &s.State, &s.Active, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	for _, s := range suppliers {
		tags, err := r.findTags(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Tags = tags
	}

	return suppliers, nil
}

// Update implementa supplier.Repository.Update. As tags são substituídas em
// bloco na mesma transação.
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier, tagIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE fornecedores SET
			cnpj = $1, nome = $2, telefone = $3, email = $4, endereco = $5,
			cidade = $6, estado = $7, ativo = $8, updated_at = $9
		WHERE id = $10`,
		s.Document, s.Name, s.Phone, s.Email, s.Address, s.City, s.State,
		s.Active, s.UpdatedAt, s.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrSupplierDuplicate
		}
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}

	if err := replaceSupplierTags(ctx, tx, s.ID, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM fornecedores WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir fornecedor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// Count implementa supplier.Repository.Count
func (r *SupplierRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM fornecedores").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar fornecedores: %w", err)
	}

	return count, nil
}

func (r *SupplierRepository) findTags(ctx context.Context, supplierID string) ([]tag.Tag, error) {
	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.nome, t.cor, t.created_at
		FROM tags t
		JOIN fornecedor_tags ft ON ft.tag_id = t.id
		WHERE ft.fornecedor_id = $1
		ORDER BY t.nome ASC`,
		supplierID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tags do fornecedor: %w", err)
	}
	defer rows.Close()

	tags := make([]tag.Tag, 0)
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler tag: %w", err)
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return tags, nil
}

func replaceSupplierTags(ctx context.Context, tx pgx.Tx, supplierID string, tagIDs []string) error {
	_, err := tx.Exec(ctx,
		"DELETE FROM fornecedor_tags WHERE fornecedor_id = $1", supplierID)
	if err != nil {
		return fmt.Errorf("erro ao remover tags do fornecedor: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO fornecedor_tags (fornecedor_id, tag_id) VALUES ($1, $2)",
			supplierID, tagID)
		if err != nil {
			return fmt.Errorf("erro ao associar tag ao fornecedor: %w", err)
		}
	}

	return nil
}
