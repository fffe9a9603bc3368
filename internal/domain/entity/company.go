package entity

import "time"

// Company representa uma empresa/tenant do sistema (óticas e joalherias).
// O ID é atribuído pelo banco e imutável; desativação é flag, nunca delete.
type Company struct {
	ID        int64
	Name      string
	CNPJ      string // CNPJ brasileiro, formato livre
	Email     string
	Phone     string
	Active    bool
	CreatedAt time.Time
}
