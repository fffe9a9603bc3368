package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/oticavision/otica-api/internal/domain/entity"
	"github.com/oticavision/otica-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementação do porto CompanyRepository sobre SQLite.
type CompanyRepo struct {
	db *sql.DB
}

// NewCompanyRepository constrói o adaptador de persistência para empresas.
func NewCompanyRepository(db *sql.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// List devolve todas as empresas, inclusive inativas, ordenadas por nome.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	query := `
		SELECT id, nome, cnpj, email, telefone, ativo, created_at
		FROM empresas ORDER BY nome`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listar empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		var cnpj, email, telefone sql.NullString // colunas opcionais no schema
		if err := rows.Scan(&c.ID, &c.Name, &cnpj, &email, &telefone, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		c.CNPJ = nullString(cnpj)
		c.Email = nullString(email)
		c.Phone = nullString(telefone)
		list = append(list, &c)
	}
	return list, rows.Err()
}
