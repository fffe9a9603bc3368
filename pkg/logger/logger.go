package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opções para o logger.
type Config struct {
	Env   string // development -> console legível; qualquer outro -> JSON
	Level string // trace, debug, info, warn, error (default: info)
}

// Logger envolve zerolog para concentrar a configuração num único lugar.
type Logger struct {
	zl zerolog.Logger
}

// New monta o logger estruturado do processo. Em development escreve em
// console legível; fora dele, JSON em stdout.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	zl := zerolog.New(w).Level(level(cfg.Level)).With().Timestamp().Logger()

	// Bibliotecas que usam o logger global de zerolog escrevem na mesma saída.
	log.Logger = zl

	return &Logger{zl: zl}
}

// level traduz o nível configurado; valores desconhecidos ou vazios caem em info.
func level(s string) zerolog.Level {
	lv, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || lv == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lv
}

// Delegados de nível usados pela aplicação.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// WithComponent devolve um sublogger com o campo component fixo.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}
