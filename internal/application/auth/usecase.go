package auth

import (
	"github.com/oticavision/otica-api/internal/application/dto"
	"github.com/oticavision/otica-api/internal/domain"
	"github.com/oticavision/otica-api/internal/domain/repository"
	"github.com/oticavision/otica-api/pkg/hash"
	"github.com/oticavision/otica-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret  string
	ExpDays int
}

// AuthUseCase caso de uso de autenticação: login com emissão de token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/senha contra o digest armazenado, gera o JWT e compõe
// a resposta com os resumos de usuário e empresa.
// Devolve domain.ErrInvalidCredentials quando email, senha ou flag ativo não
// casam; qualquer outra falha sobe como erro distinto (nunca se confundem).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	digest := hash.Digest(in.Password)

	user, company, err := uc.userRepo.FindActiveLogin(in.Email, digest)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Email, user.Role, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResumo{
			ID:     user.ID,
			Nome:   user.Name,
			Email:  user.Email,
			Funcao: user.Role,
		},
		Empresa: dto.EmpresaResumo{
			ID:   company.ID,
			Nome: company.Name,
			CNPJ: company.CNPJ,
		},
	}, nil
}
