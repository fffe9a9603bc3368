package usecase

import (
	"github.com/oticavision/otica-api/internal/application/dto"
	"github.com/oticavision/otica-api/internal/domain/repository"
)

// UserUseCase listagem de usuários.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso de usuários.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devolve todos os usuários (inclusive inativos) com o nome da empresa,
// ordenados por nome.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	users, err := uc.repo.ListWithCompany()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:          u.ID,
			Nome:        u.Name,
			Email:       u.Email,
			Funcao:      u.Role,
			Ativo:       u.Active,
			EmpresaNome: u.CompanyName,
		})
	}
	return &dto.UserListResponse{Total: len(out), Usuarios: out}, nil
}
