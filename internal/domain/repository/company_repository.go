package repository

import "github.com/oticavision/otica-api/internal/domain/entity"

// CompanyRepository define o porto de persistência para Company (DIP).
// A implementação vive em infrastructure.
type CompanyRepository interface {
	// List devolve todas as empresas (inclusive inativas) ordenadas por nome.
	List() ([]*entity.Company, error)
}
