package dto

// UserResponse usuário na listagem, com o nome da empresa dona via join.
type UserResponse struct {
	ID          int64  `json:"id"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Funcao      string `json:"funcao"`
	Ativo       bool   `json:"ativo"`
	EmpresaNome string `json:"empresa_nome"`
}

// UserListResponse listagem de usuários.
type UserListResponse struct {
	Total    int            `json:"total"`
	Usuarios []UserResponse `json:"usuarios"`
}
