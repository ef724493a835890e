package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit_SetsGlobalLevel(t *testing.T) {
	Init("debug", "test-service")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Init("warn", "test-service")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	Init("not-a-real-level", "test-service")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
