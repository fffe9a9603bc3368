package dto

// StatusResponse resumo de saúde quando o banco responde.
type StatusResponse struct {
	Status         string `json:"status"`
	Database       bool   `json:"database"`
	Ambiente       string `json:"ambiente"`
	Tabelas        int    `json:"tabelas"`
	EmpresasAtivas int    `json:"empresas_ativas"`
	UsuariosAtivos int    `json:"usuarios_ativos"`
	Timestamp      string `json:"timestamp"`
}

// StatusErrorResponse resumo de saúde quando o banco falha. Sempre devolvido
// com HTTP 200 para que o monitoramento possa fazer poll incondicional.
type StatusErrorResponse struct {
	Status    string `json:"status"`
	Database  bool   `json:"database"`
	Erro      string `json:"erro"`
	Timestamp string `json:"timestamp"`
}
