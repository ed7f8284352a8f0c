package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *DodgeyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.MaxSpeed = max(cfg.Obstacles.MinSpeed, cfg.Obstacles.MaxSpeed-1)
		cfg.Population.Initial = 4
		cfg.Population.MinCount = 6
		cfg.Population.TopUp = 3
	case DifficultyHard:
		cfg.Obstacles.MaxSpeed++
		cfg.Population.Initial = 8
		cfg.Population.MinCount = 14
		cfg.Population.TopUp = 6
	}
}
