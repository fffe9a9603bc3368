package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open abre (criando se necessário) o arquivo SQLite e habilita foreign keys.
// O *sql.DB resultante é seguro para uso concorrente; o controle de lock fica
// por conta do próprio engine.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir banco: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("habilitar foreign keys: %w", err)
	}
	return db, nil
}

// nullString mapeia colunas opcionais (cnpj, email, telefone) para string vazia.
func nullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
