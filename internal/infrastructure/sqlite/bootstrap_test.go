package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oticavision/otica-api/internal/infrastructure/sqlite"
	"github.com/oticavision/otica-api/pkg/hash"
)

// newTestDB abre um banco SQLite em arquivo temporário do teste.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "optica_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestEnsureSchema_CriaTabelasSemSeed(t *testing.T) {
	db := newTestDB(t)
	boot := sqlite.NewBootstrapper(db)

	require.NoError(t, boot.EnsureSchema())

	assert.Equal(t, 0, countRows(t, db, "empresas"))
	assert.Equal(t, 0, countRows(t, db, "usuarios"))

	// Idempotente: repetir não falha nem altera nada
	require.NoError(t, boot.EnsureSchema())
	assert.Equal(t, 0, countRows(t, db, "empresas"))
}

func TestEnsureReady_SeedApenasUmaVez(t *testing.T) {
	db := newTestDB(t)
	boot := sqlite.NewBootstrapper(db)

	require.NoError(t, boot.EnsureReady())
	require.NoError(t, boot.EnsureReady())

	assert.Equal(t, 1, countRows(t, db, "empresas"), "seed não deve duplicar empresas")
	assert.Equal(t, 1, countRows(t, db, "usuarios"), "seed não deve duplicar usuários")
}

func TestEnsureSeed_DadosDoAdmin(t *testing.T) {
	db := newTestDB(t)
	boot := sqlite.NewBootstrapper(db)
	require.NoError(t, boot.EnsureReady())

	var nome, cnpj string
	require.NoError(t, db.QueryRow(`SELECT nome, cnpj FROM empresas`).Scan(&nome, &cnpj))
	assert.Equal(t, "Ótica Vision", nome)
	assert.Equal(t, "12.345.678/0001-90", cnpj)

	var email, senhaHash, funcao string
	var ativo bool
	require.NoError(t, db.QueryRow(`SELECT email, senha_hash, funcao, ativo FROM usuarios`).
		Scan(&email, &senhaHash, &funcao, &ativo))
	assert.Equal(t, "admin@oticavision.com.br", email)
	assert.Equal(t, hash.Digest("123456"), senhaHash, "digest da senha seed 123456")
	assert.Equal(t, "admin", funcao)
	assert.True(t, ativo)
}

func TestEnsureSeed_NaoSemeiaBancoComDados(t *testing.T) {
	db := newTestDB(t)
	boot := sqlite.NewBootstrapper(db)
	require.NoError(t, boot.EnsureSchema())

	_, err := db.Exec(`INSERT INTO empresas (nome) VALUES ('Ótica Existente')`)
	require.NoError(t, err)

	require.NoError(t, boot.EnsureSeed())

	assert.Equal(t, 1, countRows(t, db, "empresas"), "banco com dados não recebe seed")
	assert.Equal(t, 0, countRows(t, db, "usuarios"))
}
