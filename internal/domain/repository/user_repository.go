package repository

import "github.com/oticavision/otica-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	// FindActiveLogin busca o usuário ativo com email e digest exatos, já com a
	// empresa dona via join. Devolve (nil, nil, nil) quando nenhuma linha casa.
	FindActiveLogin(email, passwordHash string) (*entity.User, *entity.Company, error)
	// ListWithCompany lista todos os usuários (inclusive inativos) com o nome da
	// empresa, ordenados por nome ascendente.
	ListWithCompany() ([]entity.UserWithCompany, error)
}
