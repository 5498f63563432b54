package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petrini31/bike-garage-manager/internal/domain/expense"
)

// Erros específicos do repositório
var (
	ErrExpenseNotFound = errors.New("gasto não encontrado")
)

// ExpenseRepository implementa a interface expense.Repository
type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(db *pgxpool.Pool) expense.Repository {
	return &ExpenseRepository{
		db: db,
	}
}

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO gastos (
			id, nome, descricao, categoria, valor, data_vencimento,
			data_pagamento, recorrente, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`,
		e.ID, e.Name, e.Description, e.Category, e.Value, e.DueDate,
		e.PaymentDate, e.Recurring, e.Status, e.CreatedAt, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar gasto: %w", err)
	}

	return nil
}

// FindByID implementa expense.Repository.FindByID
func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	var e expense.Expense

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, descricao, categoria, valor, data_vencimento,
			data_pagamento, recorrente, status, created_at, updated_at
		FROM gastos WHERE id = $1`,
		id).Scan(
		&e.ID, &e.Name, &e.Description, &e.Category, &e.Value, &e.DueDate,
		&e.PaymentDate, &e.Recurring, &e.Status, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("erro ao buscar gasto: %w", err)
	}

	return &e, nil
}

// List implementa expense.Repository.List, dos vencimentos mais recentes
// para os mais antigos
func (r *ExpenseRepository) List(ctx context.Context, limit, offset int) ([]*expense.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome, descricao, categoria, valor, data_vencimento,
			data_pagamento, recorrente, status, created_at, updated_at
		FROM gastos
		ORDER BY data_vencimento DESC NULLS LAST, created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar gastos: %w", err)
	}
	defer rows.Close()

	expenses := make([]*expense.Expense, 0)
	for rows.Next() {
		var e expense.Expense
		err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.Category, &e.Value, &e.DueDate,
			&e.PaymentDate, &e.Recurring, &e.Status, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler gasto: %w", err)
		}
		expenses = append(expenses, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return expenses, nil
}

// Update implementa expense.Repository.Update
func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	result, err := r.db.Exec(ctx,
		`UPDATE gastos SET
			nome = $1, descricao = $2, categoria = $3, valor = $4,
			data_vencimento = $5, data_pagamento = $6, recorrente = $7,
			status = $8, updated_at = $9
		WHERE id = $10`,
		e.Name, e.Description, e.Category, e.Value, e.DueDate, e.PaymentDate,
		e.Recurring, e.Status, e.UpdatedAt, e.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar gasto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// Delete implementa expense.Repository.Delete
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM gastos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir gasto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// Count implementa expense.Repository.Count
func (r *ExpenseRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM gastos").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar gastos: %w", err)
	}

	return count, nil
}

// SumByPeriod implementa expense.Repository.SumByPeriod
func (r *ExpenseRepository) SumByPeriod(ctx context.Context, from, to time.Time) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(valor), 0) FROM gastos
		WHERE data_vencimento >= $1 AND data_vencimento < $2`,
		from, to).Scan(&sum)

	if err != nil {
		return 0, fmt.Errorf("erro ao somar gastos: %w", err)
	}

	return sum, nil
}
