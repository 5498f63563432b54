package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petrini31/bike-garage-manager/internal/domain/customer"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound = errors.New("cliente não encontrado")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

// Create implementa customer.Repository.Create. O numero_cliente é atribuído
// pela sequência do banco e devolvido para a entidade.
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO clientes (
			id, nome, telefone, email, endereco, cpf_cnpj, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING numero_cliente`,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.Document,
		c.CreatedAt, c.UpdatedAt).Scan(&c.Number)

	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var c customer.Customer

	err := r.db.QueryRow(ctx,
		`SELECT id, numero_cliente, nome, telefone, email, endereco, cpf_cnpj,
			created_at, updated_at
		FROM clientes WHERE id = $1`,
		id).Scan(
		&c.ID, &c.Number, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Document,
		&c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// FindByName implementa customer.Repository.FindByName. A busca é parcial e
// sem diferenciar maiúsculas, usada pelo autocomplete do formulário de O.S.
func (r *CustomerRepository) FindByName(ctx context.Context, name string, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, numero_cliente, nome, telefone, email, endereco, cpf_cnpj,
			created_at, updated_at
		FROM clientes
		WHERE nome ILIKE $1
		ORDER BY nome ASC
		LIMIT $2 OFFSET $3`,
		"%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, numero_cliente, nome, telefone, email, endereco, cpf_cnpj,
			created_at, updated_at
		FROM clientes
		ORDER BY nome ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result, err := r.db.Exec(ctx,
		`UPDATE clientes SET
			nome = $1, telefone = $2, email = $3, endereco = $4,
			cpf_cnpj = $5, updated_at = $6
		WHERE id = $7`,
		c.Name, c.Phone, c.Email, c.Address, c.Document, c.UpdatedAt, c.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM clientes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Count implementa customer.Repository.Count
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM clientes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

// scanCustomerRows processa resultados de consultas que retornam múltiplos clientes
func (r *CustomerRepository) scanCustomerRows(rows pgx.Rows) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)

	for rows.Next() {
		var c customer.Customer

		err := rows.Scan(
			&c.ID, &c.Number, &c.Name, &c.Phone, &c.Email, &c.Address,
			&c.Document, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}

		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return customers, nil
}
