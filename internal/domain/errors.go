package domain

import "errors"

// Erros de domínio (sem dependências externas). Taxonomia fechada:
// credenciais inválidas nunca se confunde com falha interna.
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInternal           = errors.New("erro interno")
)
