// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

// WorldConfig is the playfield size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig tunes the ball.
type BallConfig struct {
	Acceleration    int     `yaml:"acceleration"`      // Ramp rate, 1-100
	Size            int     `yaml:"size"`              // 8-32
	Color           string  `yaml:"color"`             // Hex or ANSI code
	SpeedCap        float64 `yaml:"speed_cap"`         // Upper bound of the speed factor
	RampDivisor     float64 `yaml:"ramp_divisor"`      // K in factor += factor * accel / K
	DeadBand        float64 `yaml:"dead_band"`         // Anti-stall band half-width
	Jitter          float64 `yaml:"jitter"`            // Random component range
	BaseSpeedFactor float64 `yaml:"base_speed_factor"` // Factor after reset
	ServeSpeed      float64 `yaml:"serve_speed"`       // Serve or launch speed
	MaxVelocity     float64 `yaml:"max_velocity"`      // Per-component clamp
}

// PaddleConfig tunes a paddle.
type PaddleConfig struct {
	Friction  int    `yaml:"friction"`  // 1-100
	Speed     int    `yaml:"speed"`     // 100-10000
	Size      int    `yaml:"size"`      // 1-255
	Thickness int    `yaml:"thickness"` // Extent across the movement axis
	Color     string `yaml:"color"`
}

// PlayersConfig selects who drives each seat: player1, player2 or ai.
type PlayersConfig struct {
	Player1 string `yaml:"player1"`
	Player2 string `yaml:"player2"`
}

// GameplayConfig holds round rules.
type GameplayConfig struct {
	Lives         int     `yaml:"lives"`          // Block game only
	MaxScore      int     `yaml:"max_score"`      // Round ends when a seat reaches it
	GameTime      int     `yaml:"game_time"`      // Countdown in seconds
	BannerSeconds float64 `yaml:"banner_seconds"` // Game-over banner before reset
	ServeDelay    float64 `yaml:"serve_delay"`    // Seconds before auto launch
}

// LevelsConfig lists block layouts in play order.
// An empty entry means a random layout.
type LevelsConfig struct {
	Width           int      `yaml:"width"`
	List            []string `yaml:"list"`
	RandomAfterLast bool     `yaml:"random_after_last"`
}

// BlockConfig contains all configuration for the Block Game.
type BlockConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Players    PlayersConfig    `yaml:"players"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Levels     LevelsConfig     `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// VersusConfig contains all configuration for Pong and Tennis.
type VersusConfig struct {
	World    WorldConfig    `yaml:"world"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle1  PaddleConfig   `yaml:"paddle1"`
	Paddle2  PaddleConfig   `yaml:"paddle2"`
	Players  PlayersConfig  `yaml:"players"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// PongConfig contains all configuration for Pong.
type PongConfig = VersusConfig

// TennisConfig contains all configuration for Tennis.
type TennisConfig = VersusConfig

// DifficultyConfig defines how the block game speeds up as levels are cleared.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "levels", or "none"
	MaxAt int    `yaml:"max_at"` // Score/levels at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to serve speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
