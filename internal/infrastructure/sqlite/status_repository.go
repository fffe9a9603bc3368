package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/oticavision/otica-api/internal/domain/repository"
)

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo contagens para o resumo de status/health sobre SQLite.
type StatusRepo struct {
	db *sql.DB
}

// NewStatusRepository constrói o adaptador de contagens de status.
func NewStatusRepository(db *sql.DB) *StatusRepo {
	return &StatusRepo{db: db}
}

// CountTables conta as tabelas presentes no schema via sqlite_master.
func (r *StatusRepo) CountTables() (int, error) {
	return r.count(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'`)
}

// CountActiveCompanies conta empresas com ativo = 1.
func (r *StatusRepo) CountActiveCompanies() (int, error) {
	return r.count(`SELECT COUNT(*) FROM empresas WHERE ativo = 1`)
}

// CountActiveUsers conta usuários com ativo = 1.
func (r *StatusRepo) CountActiveUsers() (int, error) {
	return r.count(`SELECT COUNT(*) FROM usuarios WHERE ativo = 1`)
}

func (r *StatusRepo) count(query string) (int, error) {
	var n int
	if err := r.db.QueryRow(query).Scan(&n); err != nil {
		return 0, fmt.Errorf("contagem de status: %w", err)
	}
	return n, nil
}
