package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oticavision/otica-api/internal/application/auth"
	"github.com/oticavision/otica-api/internal/application/dto"
	"github.com/oticavision/otica-api/internal/domain"
	"github.com/oticavision/otica-api/internal/domain/entity"
	"github.com/oticavision/otica-api/pkg/hash"
	pkgjwt "github.com/oticavision/otica-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// stubUserRepo simula o repositório: devolve o par usuário/empresa quando
// email e digest casam exatamente, como o join real.
type stubUserRepo struct {
	email   string
	digest  string
	user    *entity.User
	company *entity.Company
	err     error
}

func (s *stubUserRepo) FindActiveLogin(email, passwordHash string) (*entity.User, *entity.Company, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	if email == s.email && passwordHash == s.digest {
		return s.user, s.company, nil
	}
	return nil, nil, nil
}

func (s *stubUserRepo) ListWithCompany() ([]entity.UserWithCompany, error) {
	return nil, nil
}

func adminRepo() *stubUserRepo {
	return &stubUserRepo{
		email:  "admin@oticavision.com.br",
		digest: hash.Digest("123456"),
		user: &entity.User{
			ID:        1,
			CompanyID: 1,
			Name:      "Administrador",
			Email:     "admin@oticavision.com.br",
			Role:      "admin",
			Active:    true,
		},
		company: &entity.Company{
			ID:   1,
			Name: "Ótica Vision",
			CNPJ: "12.345.678/0001-90",
		},
	}
}

func newUC(repo *stubUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpDays: 7})
}

func TestLogin_Sucesso(t *testing.T) {
	uc := newUC(adminRepo())

	out, err := uc.Login(dto.LoginRequest{Email: "admin@oticavision.com.br", Password: "123456"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(1), out.Usuario.ID)
	assert.Equal(t, "Administrador", out.Usuario.Nome)
	assert.Equal(t, "admin", out.Usuario.Funcao)
	assert.Equal(t, "Ótica Vision", out.Empresa.Nome)
	assert.Equal(t, "12.345.678/0001-90", out.Empresa.CNPJ)

	// O token carrega identidade e tenant nos claims
	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, int64(1), claims.EmpresaID)
	assert.Equal(t, "admin", claims.Funcao)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc := newUC(adminRepo())

	out, err := uc.Login(dto.LoginRequest{Email: "admin@oticavision.com.br", Password: "senha-errada"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"senha errada é credencial inválida, nunca erro interno")
}

func TestLogin_EmailDesconhecido(t *testing.T) {
	uc := newUC(adminRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@oticavision.com.br", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_FalhaDeBanco(t *testing.T) {
	repo := adminRepo()
	repo.err = errors.New("banco indisponível")
	uc := newUC(repo)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@oticavision.com.br", Password: "123456"})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials,
		"falha de infraestrutura nunca vira credencial inválida")
}
