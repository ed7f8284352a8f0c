package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dodgey/internal/audio"
	"github.com/vovakirdan/dodgey/internal/config"
)

func TestLoadConfigPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	tests := []struct {
		difficulty string
		initial    int
		wantErr    bool
	}{
		{"", 6, false},
		{"normal", 6, false},
		{"easy", 4, false},
		{"hard", 8, false},
		{"nightmare", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.difficulty, func(t *testing.T) {
			flagDifficulty, flagConfig = tc.difficulty, ""
			cfg, err := loadConfig()
			if tc.wantErr {
				if !errors.Is(err, config.ErrInvalid) {
					t.Errorf("err = %v, expected ErrInvalid", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if cfg.Population.Initial != tc.initial {
				t.Errorf("initial = %d, expected %d", cfg.Population.Initial, tc.initial)
			}
		})
	}
	flagDifficulty = ""
}

func TestLoadConfigCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  destroy_award: 250\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig, flagDifficulty = path, ""
	defer func() { flagConfig = "" }()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Scoring.DestroyAward != 250 {
		t.Errorf("award = %d, expected 250", cfg.Scoring.DestroyAward)
	}
}

func TestNewLogger(t *testing.T) {
	flagLogLevel, flagLogFile = "loud", ""
	if _, _, err := newLogger(true); err == nil {
		t.Error("expected an error for an unknown level")
	}

	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "dodgey.log")
	defer func() { flagLogLevel, flagLogFile = "info", "" }()

	logger, closeLog, err := newLogger(true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hello", "n", 1)
	closeLog()

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file should not be empty")
	}
}

func TestOpenAudioMuted(t *testing.T) {
	p, err := openAudio("", true, 1, nil)
	if err != nil {
		t.Fatalf("openAudio: %v", err)
	}
	if _, ok := p.(audio.Nop); !ok {
		t.Errorf("muted player = %T, expected audio.Nop", p)
	}
}

func TestOpenAudioMissingSounds(t *testing.T) {
	if _, err := openAudio(t.TempDir(), false, 1, nil); err == nil {
		t.Error("a sound directory without WAV files should fail")
	}
}

func TestResolveSeed(t *testing.T) {
	flagSeed = 42
	if got := resolveSeed(); got != 42 {
		t.Errorf("resolveSeed() = %d, expected 42", got)
	}
	flagSeed = 0
	if resolveSeed() == 0 {
		t.Error("time-based seed should not be 0")
	}
}
