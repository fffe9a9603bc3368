package dto

// LoginRequest entrada do login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResumo resumo do usuário autenticado na resposta de login.
type UsuarioResumo struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Funcao string `json:"funcao"`
}

// EmpresaResumo resumo da empresa do usuário na resposta de login.
type EmpresaResumo struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
	CNPJ string `json:"cnpj"`
}

// LoginResponse saída do login: token de sessão + identidade composta.
type LoginResponse struct {
	Token   string        `json:"token"`
	Usuario UsuarioResumo `json:"usuario"`
	Empresa EmpresaResumo `json:"empresa"`
}
