package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, level("debug"))
	assert.Equal(t, zerolog.WarnLevel, level("WARN"), "nível é case-insensitive")
	assert.Equal(t, zerolog.InfoLevel, level(""), "vazio cai em info")
	assert.Equal(t, zerolog.InfoLevel, level("verboso"), "desconhecido cai em info")
}

func TestNew_ConfiguraNivel(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	require.NotNil(t, l)
	assert.Equal(t, zerolog.WarnLevel, l.zl.GetLevel())
}

func TestWithComponent(t *testing.T) {
	l := New(Config{Env: "production", Level: "info"})
	sub := l.WithComponent("bootstrap")
	require.NotNil(t, sub)
	assert.Equal(t, l.zl.GetLevel(), sub.zl.GetLevel())
}
