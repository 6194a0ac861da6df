package versus

import (
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/control"
	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// GameStart holds the options applied when a round starts. Zero sizes,
// speeds and colors keep the current value.
type GameStart struct {
	Players      [2]control.PlayerType
	BallSize     int
	BallColor    core.Color
	PaddleSizes  [2]int
	PaddleSpeeds [2]int
	PaddleColors [2]core.Color
	GameTime     int // Seconds; 0 disables the countdown
	MaxScore     int // 0 disables the score limit
}

// StartFromConfig builds round options from a game config.
func StartFromConfig(cfg config.VersusConfig) (GameStart, error) {
	p1, err := control.ParsePlayerType(cfg.Players.Player1)
	if err != nil {
		return GameStart{}, err
	}
	p2, err := control.ParsePlayerType(cfg.Players.Player2)
	if err != nil {
		return GameStart{}, err
	}

	return GameStart{
		Players:      [2]control.PlayerType{p1, p2},
		BallSize:     cfg.Ball.Size,
		BallColor:    core.ParseColor(cfg.Ball.Color),
		PaddleSizes:  [2]int{cfg.Paddle1.Size, cfg.Paddle2.Size},
		PaddleSpeeds: [2]int{cfg.Paddle1.Speed, cfg.Paddle2.Speed},
		PaddleColors: [2]core.Color{core.ParseColor(cfg.Paddle1.Color), core.ParseColor(cfg.Paddle2.Color)},
		GameTime:     cfg.Gameplay.GameTime,
		MaxScore:     cfg.Gameplay.MaxScore,
	}, nil
}
