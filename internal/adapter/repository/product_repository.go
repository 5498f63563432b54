package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petrini31/bike-garage-manager/internal/domain/product"
	"github.com/petrini31/bike-garage-manager/internal/domain/tag"
)

// Erros específicos do repositório
var (
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrProductDuplicate = errors.New("produto com mesmo SKU já existe")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create. O produto e suas tags são
// gravados na mesma transação.
func (r *ProductRepository) Create(ctx context.Context, p *product.Product, tagIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO produtos (
			id, nome, sku, codigo_barras, quantidade, estoque_minimo,
			preco_compra, preco_venda, lucro, foto_url, status, fornecedor_id,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)`,
		p.ID, p.Name, p.SKU, p.Barcode, p.Quantity, p.MinStock,
		p.PurchasePrice, p.SalePrice, p.Profit, p.PhotoURL, p.Status,
		p.SupplierID, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicate
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	if err := replaceProductTags(ctx, tx, p.ID, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, sku, codigo_barras, quantidade, estoque_minimo,
			preco_compra, preco_venda, lucro, foto_url, status, fornecedor_id,
			created_at, updated_at
		FROM produtos WHERE id = $1`,
		id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Barcode, &p.Quantity, &p.MinStock,
		&p.PurchasePrice, &p.SalePrice, &p.Profit, &p.PhotoURL, &p.Status,
		&p.SupplierID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	tags, err := r.findTags(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Tags = tags

	return &p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome, sku, codigo_barras, quantidade, estoque_minimo,
			preco_compra, preco_venda, lucro, foto_url, status, fornecedor_id,
			created_at, updated_at
		FROM produtos
		ORDER BY nome ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return r.scanProductRows(rows)
}

// ListByTag implementa product.Repository.ListByTag
func (r *ProductRepository) ListByTag(ctx context.Context, tagID string) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.nome, p.sku, p.codigo_barras, p.quantidade,
			p.estoque_minimo, p.preco_compra, p.preco_venda, p.lucro,
			p.foto_url, p.status, p.fornecedor_id, p.created_at, p.updated_at
		FROM produtos p
		JOIN produto_tags pt ON pt.produto_id = p.id
		WHERE pt.tag_id = $1
		ORDER BY p.nome ASC`,
		tagID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos por tag: %w", err)
	}
	defer rows.Close()

	return r.scanProductRows(rows)
}

// Update implementa product.Repository.Update. As tags são substituídas em
// bloco na mesma transação.
func (r *ProductRepository) Update(ctx context.Context, p *product.Product, tagIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE produtos SET
			nome = $1, sku = $2, codigo_barras = $3, quantidade = $4,
			estoque_minimo = $5, preco_compra = $6, preco_venda = $7,
			lucro = $8, foto_url = $9, status = $10, fornecedor_id = $11,
			updated_at = $12
		WHERE id = $13`,
		p.Name, p.SKU, p.Barcode, p.Quantity, p.MinStock, p.PurchasePrice,
		p.SalePrice, p.Profit, p.PhotoURL, p.Status, p.SupplierID,
		p.UpdatedAt, p.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicate
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	if err := replaceProductTags(ctx, tx, p.ID, tagIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM produtos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM produtos").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

// scanProductRows processa resultados de consultas que retornam múltiplos produtos
func (r *ProductRepository) scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		var p product.Product

		err := rows.Scan(
			&p.ID, &p.Name, &p.SKU, &p.Barcode, &p.Quantity, &p.MinStock,
			&p.PurchasePrice, &p.SalePrice, &p.Profit, &p.PhotoURL, &p.Status,
			&p.SupplierID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}

		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) findTags(ctx context.Context, productID string) ([]tag.Tag, error) {
	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.nome, t.cor, t.created_at
		FROM tags t
		JOIN produto_tags pt ON pt.tag_id = t.id
		WHERE pt.produto_id = $1
		ORDER BY t.nome ASC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tags do produto: %w", err)
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

func replaceProductTags(ctx context.Context, tx pgx.Tx, productID string, tagIDs []string) error {
	_, err := tx.Exec(ctx,
		"DELETE FROM produto_tags WHERE produto_id = $1", productID)
	if err != nil {
		return fmt.Errorf("erro ao remover tags do produto: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO produto_tags (produto_id, tag_id) VALUES ($1, $2)",
			productID, tagID)
		if err != nil {
			return fmt.Errorf("erro ao associar tag ao produto: %w", err)
		}
	}

	return nil
}
