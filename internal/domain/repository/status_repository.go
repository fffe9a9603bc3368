package repository

// StatusRepository expõe as contagens usadas pelo resumo de status/health.
type StatusRepository interface {
	// CountTables conta objetos de schema (tabelas), independente de dados.
	CountTables() (int, error)
	// CountActiveCompanies conta empresas com ativo = 1.
	CountActiveCompanies() (int, error)
	// CountActiveUsers conta usuários com ativo = 1.
	CountActiveUsers() (int, error)
}
