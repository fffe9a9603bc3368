package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App  AppConfig
	DB   DBConfig
	JWT  JWTConfig
	HTTP HTTPConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	Version string
}

// DBConfig configuração do banco SQLite.
// DatabaseURL aceita o formato herdado "sqlite:///./optica.db" ou um caminho de arquivo direto.
type DBConfig struct {
	DatabaseURL string
}

// Path devolve o caminho do arquivo SQLite, removendo o prefixo "sqlite://" se presente.
func (c DBConfig) Path() string {
	p := strings.TrimPrefix(c.DatabaseURL, "sqlite:///")
	return strings.TrimPrefix(p, "sqlite://")
}

// JWTConfig configuração de JWT.
type JWTConfig struct {
	Secret         string
	ExpirationDays int
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: SECRET_KEY, DATABASE_URL, ENVIRONMENT, PORT.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "ENVIRONMENT", "production"),
			Name:    getString(v, "APP_NAME", "Sistema Ótica - API"),
			Version: getString(v, "APP_VERSION", "1.0.0"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", "sqlite:///./optica.db"),
		},
		JWT: JWTConfig{
			Secret:         getString(v, "SECRET_KEY", "optica-secret-key-2026"),
			ExpirationDays: getInt(v, "JWT_EXPIRATION_DAYS", 7),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "PORT", 8001),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
