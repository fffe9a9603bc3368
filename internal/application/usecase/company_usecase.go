package usecase

import (
	"github.com/oticavision/otica-api/internal/application/dto"
	"github.com/oticavision/otica-api/internal/domain/repository"
)

// CompanyUseCase listagem de empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase constrói o caso de uso de empresas.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devolve todas as empresas, inclusive inativas, ordenadas por nome.
func (uc *CompanyUseCase) List() (*dto.CompanyListResponse, error) {
	companies, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, dto.CompanyResponse{
			ID:        c.ID,
			Nome:      c.Name,
			CNPJ:      c.CNPJ,
			Email:     c.Email,
			Telefone:  c.Phone,
			Ativo:     c.Active,
			CreatedAt: c.CreatedAt,
		})
	}
	return &dto.CompanyListResponse{Total: len(out), Empresas: out}, nil
}
