package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petrini31/bike-garage-manager/internal/domain/user"
)

// Erros específicos do repositório
var (
	ErrUserNotFound  = errors.New("usuário não encontrado")
	ErrUserDuplicate = errors.New("usuário com mesmo login já existe")
)

// UserRepository implementa a interface user.Repository
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{
		db: db,
	}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO usuarios (
			id, nome, login, email, telefone, senha_hash, user_type, ativo,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`,
		u.ID, u.Name, u.Login, u.Email, u.Phone, u.PasswordHash, u.Type,
		u.Active, u.CreatedAt, u.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUserDuplicate
		}
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, login, email, telefone, senha_hash, user_type,
			ativo, created_at, updated_at
		FROM usuarios WHERE id = $1`,
		id).Scan(
		&u.ID, &u.Name, &u.Login, &u.Email, &u.Phone, &u.PasswordHash,
		&u.Type, &u.Active, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &u, nil
}

// FindByLogin implementa user.Repository.FindByLogin
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	var u user.User

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, login, email, telefone, senha_hash, user_type,
			ativo, created_at, updated_at
		FROM usuarios WHERE login = $1`,
		login).Scan(
		&u.ID, &u.Name, &u.Login, &u.Email, &u.Phone, &u.PasswordHash,
		&u.Type, &u.Active, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &u, nil
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome, login, email, telefone, senha_hash, user_type,
			ativo, created_at, updated_at
		FROM usuarios
		ORDER BY nome ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID, &u.Name, &u.Login, &u.Email, &u.Phone, &u.PasswordHash,
			&u.Type, &u.Active, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return users, nil
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	result, err := r.db.Exec(ctx,
		`UPDATE usuarios SET
			nome = $1, login = $2, email = $3, telefone = $4, senha_hash = $5,
			user_type = $6, ativo = $7, updated_at = $8
		WHERE id = $9`,
		u.Name, u.Login, u.Email, u.Phone, u.PasswordHash, u.Type, u.Active,
		u.UpdatedAt, u.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUserDuplicate
		}
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete implementa user.Repository.Delete
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM usuarios WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
