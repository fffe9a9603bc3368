package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/oticavision/otica-api/pkg/hash"
)

// Dados seed inseridos apenas quando o banco está vazio.
const (
	seedCompanyName  = "Ótica Vision"
	seedCompanyCNPJ  = "12.345.678/0001-90"
	seedCompanyEmail = "contato@oticavision.com.br"
	seedCompanyPhone = "(11) 98765-4321"
	seedAdminName    = "Administrador"
	seedAdminEmail   = "admin@oticavision.com.br"
	seedAdminRole    = "admin"
	seedAdminSenha   = "123456"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS empresas (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nome TEXT NOT NULL,
	cnpj TEXT,
	email TEXT,
	telefone TEXT,
	ativo INTEGER DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS usuarios (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	empresa_id INTEGER NOT NULL,
	nome TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	senha_hash TEXT NOT NULL,
	funcao TEXT NOT NULL DEFAULT 'vendedor',
	ativo INTEGER DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (empresa_id) REFERENCES empresas(id)
);
`

// Bootstrapper garante o schema mínimo e o seed inicial do banco.
// Roda no startup, antes de servir tráfego; nunca dentro de um request.
type Bootstrapper struct {
	db *sql.DB
}

// NewBootstrapper constrói o bootstrapper sobre a conexão dada.
func NewBootstrapper(db *sql.DB) *Bootstrapper {
	return &Bootstrapper{db: db}
}

// EnsureReady verifica a conexão e garante schema + seed. Idempotente: pode
// rodar em todo start de processo sem duplicar linhas.
func (b *Bootstrapper) EnsureReady() error {
	if err := b.db.Ping(); err != nil {
		return fmt.Errorf("ping banco: %w", err)
	}
	if err := b.EnsureSchema(); err != nil {
		return err
	}
	return b.EnsureSeed()
}

// EnsureSchema cria as tabelas empresas e usuarios se ausentes (CREATE TABLE
// IF NOT EXISTS; não há esquema de migração versionada).
func (b *Bootstrapper) EnsureSchema() error {
	if _, err := b.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("criar tabelas: %w", err)
	}
	return nil
}

// EnsureSeed insere a empresa e o usuário admin padrão somente quando não
// existe nenhuma empresa.
func (b *Bootstrapper) EnsureSeed() error {
	var total int
	if err := b.db.QueryRow(`SELECT COUNT(*) FROM empresas`).Scan(&total); err != nil {
		return fmt.Errorf("contar empresas: %w", err)
	}
	if total > 0 {
		return nil
	}
	return b.seed()
}

func (b *Bootstrapper) seed() error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("iniciar transação de seed: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // seguro mesmo após commit
	}()

	now := time.Now().UTC()
	res, err := tx.Exec(`
		INSERT INTO empresas (nome, cnpj, email, telefone, ativo, created_at)
		VALUES (?, ?, ?, ?, 1, ?)`,
		seedCompanyName, seedCompanyCNPJ, seedCompanyEmail, seedCompanyPhone, now,
	)
	if err != nil {
		return fmt.Errorf("inserir empresa seed: %w", err)
	}
	companyID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id da empresa seed: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO usuarios (empresa_id, nome, email, senha_hash, funcao, ativo, created_at)
		VALUES (?, ?, ?, ?, ?, 1, ?)`,
		companyID, seedAdminName, seedAdminEmail, hash.Digest(seedAdminSenha), seedAdminRole, now,
	)
	if err != nil {
		return fmt.Errorf("inserir usuário seed: %w", err)
	}

	return tx.Commit()
}
