package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	t.Setenv("DIARY_LOG_LEVEL", "")
	log := New("diary-test")
	if log.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", log.GetLevel())
	}
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv("DIARY_LOG_LEVEL", "debug")
	log := New("diary-test")
	if log.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", log.GetLevel())
	}
}
