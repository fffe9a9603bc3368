package dto

import "time"

// CompanyResponse empresa na listagem.
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyListResponse listagem de empresas.
type CompanyListResponse struct {
	Total    int               `json:"total"`
	Empresas []CompanyResponse `json:"empresas"`
}
