package entity

import "time"

// Funções válidas para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa um usuário do sistema (pertence a exatamente uma Company).
// Email é único globalmente, não por tenant.
type User struct {
	ID           int64
	CompanyID    int64
	Name         string
	Email        string
	PasswordHash string // digest SHA-256 hex, nunca plano após persistir
	Role         string // admin, vendedor
	Active       bool
	CreatedAt    time.Time
}

// UserWithCompany é a projeção de listagem: usuário com o nome da empresa via join.
type UserWithCompany struct {
	ID          int64
	Name        string
	Email       string
	Role        string
	Active      bool
	CompanyName string
}
