package usecase

import (
	"time"

	"github.com/oticavision/otica-api/internal/application/dto"
	"github.com/oticavision/otica-api/internal/domain/repository"
)

// StatusUseCase resumo de saúde do sistema.
type StatusUseCase struct {
	repo repository.StatusRepository
	env  string
}

// NewStatusUseCase constrói o caso de uso de status.
func NewStatusUseCase(repo repository.StatusRepository, env string) *StatusUseCase {
	return &StatusUseCase{repo: repo, env: env}
}

// Summary consulta as contagens do banco e monta o resumo. Quem decide como
// apresentar uma falha é o handler (payload de erro com HTTP 200).
func (uc *StatusUseCase) Summary() (*dto.StatusResponse, error) {
	tables, err := uc.repo.CountTables()
	if err != nil {
		return nil, err
	}
	companies, err := uc.repo.CountActiveCompanies()
	if err != nil {
		return nil, err
	}
	users, err := uc.repo.CountActiveUsers()
	if err != nil {
		return nil, err
	}
	return &dto.StatusResponse{
		Status:         "ok",
		Database:       true,
		Ambiente:       uc.env,
		Tabelas:        tables,
		EmpresasAtivas: companies,
		UsuariosAtivos: users,
		Timestamp:      time.Now().Format(time.RFC3339),
	}, nil
}
