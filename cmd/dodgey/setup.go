package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodgey/internal/audio"
	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/storage"
)

// loadConfig loads tuning from --config and applies --difficulty.
func loadConfig() (config.DodgeyConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DodgeyConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DodgeyConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.DodgeyConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Full-screen commands pass quiet so
// nothing is written to the terminal unless --log-file is set.
// The returned closer releases the log file.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closer = func() { f.Close() }
	case quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodgey",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the run history. Failure is a warning: the game still works.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history, runs will not be saved", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		return nil
	}
	return store
}

// resolveSeed returns --seed, or a time-based seed when it is 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// playerName returns the local login name.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// openAudio builds the cue player. With a sound directory the WAV files and
// the device are required; otherwise cues are synthesized and a missing
// device only silences the game.
func openAudio(soundDir string, mute bool, volume float64, logger *log.Logger) (audio.Player, error) {
	if mute {
		return audio.Nop{}, nil
	}

	bank := audio.NewSynthBank(audio.DefaultSampleRate)
	if soundDir != "" {
		loaded, err := audio.LoadBank(soundDir, audio.DefaultSampleRate)
		if err != nil {
			return nil, err
		}
		bank = loaded
	}

	player, err := audio.NewBeepPlayer(bank, volume, logger)
	if err != nil {
		if soundDir != "" {
			return nil, err
		}
		logger.Warn("no audio device, playing without sound", "err", err)
		return audio.Nop{}, nil
	}
	return player, nil
}
