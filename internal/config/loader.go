package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<file> -> ./configs/<file> -> embedded default.
// Files are decoded over the hardcoded defaults so partial files keep the
// remaining values.
func load[T any](file, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(file); userCfgPath != "" {
		if cfg, ok := decodeFile(userCfgPath, defaults); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := decodeFile(filepath.Join("configs", file), defaults); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFile[T any](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// LoadBlock loads Block Game configuration.
// Search order: customPath -> ~/.arcade/configs/blockgame.yaml -> ./configs/blockgame.yaml -> embedded default
func LoadBlock(customPath string) (BlockConfig, error) {
	return load("blockgame.yaml", customPath, defaultBlockYAML, DefaultBlockConfig)
}

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.arcade/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong.yaml", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadTennis loads Tennis configuration.
// Search order: customPath -> ~/.arcade/configs/tennis.yaml -> ./configs/tennis.yaml -> embedded default
func LoadTennis(customPath string) (TennisConfig, error) {
	return load("tennis.yaml", customPath, defaultTennisYAML, DefaultTennisConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBlockPreset modifies the config based on a difficulty preset.
func ApplyBlockPreset(cfg *BlockConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Size = 96
		cfg.Paddle.Speed = 2500
		cfg.Ball.Acceleration = 15
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Size = 40
		cfg.Paddle.Speed = 1600
		cfg.Ball.Acceleration = 40
	}
}

// ApplyVersusPreset modifies a Pong or Tennis config based on a difficulty
// preset. Only the paddles of human seats are adjusted.
func ApplyVersusPreset(cfg *VersusConfig, preset DifficultyPreset) {
	size, speed, accel := 0, 0, 0
	switch preset {
	case DifficultyEasy:
		size, speed, accel = 80, 2500, 15
	case DifficultyHard:
		size, speed, accel = 40, 1600, 40
	default:
		return
	}

	cfg.Ball.Acceleration = accel
	if cfg.Players.Player1 != "ai" {
		cfg.Paddle1.Size, cfg.Paddle1.Speed = size, speed
	}
	if cfg.Players.Player2 != "ai" {
		cfg.Paddle2.Size, cfg.Paddle2.Speed = size, speed
	}
}
