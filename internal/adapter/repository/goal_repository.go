package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petrini31/bike-garage-manager/internal/domain/goal"
)

// Erros específicos do repositório
var (
	ErrGoalNotFound = errors.New("meta não encontrada")
)

// GoalRepository implementa a interface goal.Repository
type GoalRepository struct {
	db *pgxpool.Pool
}

// NewGoalRepository cria uma nova instância de GoalRepository
func NewGoalRepository(db *pgxpool.Pool) goal.Repository {
	return &GoalRepository{
		db: db,
	}
}

// Create implementa goal.Repository.Create
func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO metas (
			id, nome, valor_objetivo, valor_atual, data_inicio, data_fim,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`,
		g.ID, g.Name, g.TargetValue, g.CurrentValue, g.StartDate, g.EndDate,
		g.CreatedAt, g.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar meta: %w", err)
	}

	return nil
}

// FindByID implementa goal.Repository.FindByID
func (r *GoalRepository) FindByID(ctx context.Context, id string) (*goal.Goal, error) {
	var g goal.Goal

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, valor_objetivo, valor_atual, data_inicio, data_fim,
			created_at, updated_at
		FROM metas WHERE id = $1`,
		id).Scan(
		&g.ID, &g.Name, &g.TargetValue, &g.CurrentValue, &g.StartDate,
		&g.EndDate, &g.CreatedAt, &g.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("erro ao buscar meta: %w", err)
	}

	return &g, nil
}

// List implementa goal.Repository.List
func (r *GoalRepository) List(ctx context.Context, limit, offset int) ([]*goal.Goal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome, valor_objetivo, valor_atual, data_inicio, data_fim,
			created_at, updated_at
		FROM metas
		ORDER BY data_inicio DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar metas: %w", err)
	}
	defer rows.Close()

	goals := make([]*goal.Goal, 0)
	for rows.Next() {
		var g goal.Goal
		err := rows.Scan(
			&g.ID, &g.Name, &g.TargetValue, &g.CurrentValue, &g.StartDate,
			&g.EndDate, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler meta: %w", err)
		}
		goals = append(goals, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return goals, nil
}

// Update implementa goal.Repository.Update
func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	result, err := r.db.Exec(ctx,
		`UPDATE metas SET
			nome = $1, valor_objetivo = $2, valor_atual = $3,
			data_inicio = $4, data_fim = $5, updated_at = $6
		WHERE id = $7`,
		g.Name, g.TargetValue, g.CurrentValue, g.StartDate, g.EndDate,
		g.UpdatedAt, g.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar meta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Delete implementa goal.Repository.Delete
func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM metas WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir meta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Count implementa goal.Repository.Count
func (r *GoalRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM metas").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar metas: %w", err)
	}

	return count, nil
}

// RevenueGoalRepository implementa a interface goal.RevenueGoalRepository.
// A tabela metas_faturamento guarda no máximo um registro.
type RevenueGoalRepository struct {
	db *pgxpool.Pool
}

// NewRevenueGoalRepository cria uma nova instância de RevenueGoalRepository
func NewRevenueGoalRepository(db *pgxpool.Pool) goal.RevenueGoalRepository {
	return &RevenueGoalRepository{
		db: db,
	}
}

// Get implementa goal.RevenueGoalRepository.Get. Retorna nil sem erro quando
// as metas nunca foram configuradas.
func (r *RevenueGoalRepository) Get(ctx context.Context) (*goal.RevenueGoal, error) {
	var rg goal.RevenueGoal

	err := r.db.QueryRow(ctx,
		`SELECT id, meta_mensal, meta_anual, created_at, updated_at
		FROM metas_faturamento
		ORDER BY updated_at DESC
		LIMIT 1`).Scan(
		&rg.ID, &rg.MonthlyGoal, &rg.AnnualGoal, &rg.CreatedAt, &rg.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar metas de faturamento: %w", err)
	}

	return &rg, nil
}

// Save implementa goal.RevenueGoalRepository.Save, substituindo qualquer
// registro anterior na mesma transação
func (r *RevenueGoalRepository) Save(ctx context.Context, rg *goal.RevenueGoal) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM metas_faturamento"); err != nil {
		return fmt.Errorf("erro ao limpar metas de faturamento: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO metas_faturamento (
			id, meta_mensal, meta_anual, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5)`,
		rg.ID, rg.MonthlyGoal, rg.AnnualGoal, rg.CreatedAt, rg.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao gravar metas de faturamento: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}
