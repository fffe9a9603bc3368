package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/oticavision/otica-api/internal/domain/entity"
	"github.com/oticavision/otica-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre SQLite.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepository constrói o adaptador de persistência para usuários.
func NewUserRepository(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindActiveLogin busca o usuário ativo com email e digest exatos, junto com a
// empresa dona. Match exato, sem fuzzy; no máximo uma linha (email é único).
func (r *UserRepo) FindActiveLogin(email, passwordHash string) (*entity.User, *entity.Company, error) {
	query := `
		SELECT u.id, u.empresa_id, u.nome, u.email, u.senha_hash, u.funcao, u.ativo, u.created_at,
		       e.nome, e.cnpj
		FROM usuarios u
		JOIN empresas e ON u.empresa_id = e.id
		WHERE u.email = ? AND u.senha_hash = ? AND u.ativo = 1`
	var u entity.User
	var c entity.Company
	var cnpj sql.NullString // cnpj da empresa é opcional
	err := r.db.QueryRow(query, email, passwordHash).Scan(
		&u.ID, &u.CompanyID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt,
		&c.Name, &cnpj,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("buscar login ativo: %w", err)
	}
	c.ID = u.CompanyID
	c.CNPJ = nullString(cnpj)
	return &u, &c, nil
}

// ListWithCompany lista todos os usuários (inclusive inativos) com o nome da
// empresa via join, ordenados por nome ascendente.
func (r *UserRepo) ListWithCompany() ([]entity.UserWithCompany, error) {
	query := `
		SELECT u.id, u.nome, u.email, u.funcao, u.ativo, e.nome
		FROM usuarios u
		JOIN empresas e ON u.empresa_id = e.id
		ORDER BY u.nome`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listar usuários: %w", err)
	}
	defer rows.Close()

	var list []entity.UserWithCompany
	for rows.Next() {
		var u entity.UserWithCompany
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Active, &u.CompanyName); err != nil {
			return nil, fmt.Errorf("scan usuário: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
