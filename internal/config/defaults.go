package config

import (
	_ "embed"
)

//go:embed defaults/blockgame.yaml
var defaultBlockYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/tennis.yaml
var defaultTennisYAML []byte

// defaultBall returns the ball tuning shared by the versus games.
func defaultBall() BallConfig {
	return BallConfig{
		Acceleration:    25,
		Size:            8,
		Color:           "#ffffff",
		SpeedCap:        0.8,
		RampDivisor:     200,
		DeadBand:        256,
		Jitter:          512,
		BaseSpeedFactor: 0.05,
		ServeSpeed:      8000,
		MaxVelocity:     12000,
	}
}

func defaultPaddle(color string) PaddleConfig {
	return PaddleConfig{
		Friction:  25,
		Speed:     2000,
		Size:      64,
		Thickness: 24,
		Color:     color,
	}
}

// DefaultBlockConfig returns the default Block Game configuration.
func DefaultBlockConfig() BlockConfig {
	b := defaultBall()
	b.ServeSpeed = 6000
	b.MaxVelocity = 8000

	p := defaultPaddle("#00ffff")
	p.Thickness = 8

	return BlockConfig{
		World:   WorldConfig{Width: 440, Height: 352},
		Ball:    b,
		Paddle:  p,
		Players: PlayersConfig{Player1: "player1"},
		Gameplay: GameplayConfig{
			Lives:         3,
			GameTime:      9999,
			BannerSeconds: 3,
			ServeDelay:    1.5,
		},
		Levels: LevelsConfig{
			Width:           20,
			List:            []string{""},
			RandomAfterLast: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "levels",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return VersusConfig{
		World:   WorldConfig{Width: 960, Height: 352},
		Ball:    defaultBall(),
		Paddle1: defaultPaddle("#ff5555"),
		Paddle2: defaultPaddle("#5555ff"),
		Players: PlayersConfig{Player1: "player1", Player2: "ai"},
		Gameplay: GameplayConfig{
			MaxScore:      11,
			GameTime:      300,
			BannerSeconds: 6,
			ServeDelay:    1,
		},
	}
}

// DefaultTennisConfig returns the default Tennis configuration.
func DefaultTennisConfig() TennisConfig {
	b := defaultBall()
	b.Color = "#ffff55"
	b.SpeedCap = 1.2
	b.DeadBand = 128

	p1 := defaultPaddle("#55ff55")
	p1.Speed, p1.Size = 2500, 48
	p2 := defaultPaddle("#ff55ff")
	p2.Speed, p2.Size = 2500, 48

	return VersusConfig{
		World:   WorldConfig{Width: 960, Height: 352},
		Ball:    b,
		Paddle1: p1,
		Paddle2: p2,
		Players: PlayersConfig{Player1: "player1", Player2: "player2"},
		Gameplay: GameplayConfig{
			MaxScore:      7,
			GameTime:      180,
			BannerSeconds: 6,
			ServeDelay:    1,
		},
	}
}
