package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/blackjack.yaml
var defaultBlackjackYAML []byte

// DefaultRunnerConfig returns the default Tectra Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:        800,
			Height:       300,
			GroundOffset: 50,
		},
		Player: RunnerPlayer{
			X:           50,
			Width:       60,
			Height:      80,
			Gravity:     0.5,
			JumpImpulse: 12,
			BreatheStep: 0.05,
		},
		Obstacles: RunnerObstacles{
			StartWidth:    45,
			WidthStep:     3,
			MaxWidth:      70,
			MinHeight:     50,
			MinHeightStep: 2,
			MinHeightCap:  60,
			MaxHeight:     100,
			MaxHeightStep: 5,
			MaxHeightCap:  140,
			MinGap:        450,
			MaxGap:        750,
			SpawnTimerMS:  60,
		},
		Coins: RunnerCoins{
			Size:           30,
			MinAboveGround: 50,
			MaxAboveGround: 150,
			IntervalFactor: 1200,
			ScoreBonus:     5,
			SpawnTimerMS:   100,
		},
		Difficulty: RunnerDifficulty{
			StartSpeed: 5,
			IntervalMS: 10000,
			SpeedStep:  0.3,
		},
		Frequency: RunnerFrequency{
			StartOffsetMS: 1800,
			IntervalMS:    4000,
			StepMS:        150,
			FloorMS:       400,
		},
		Score: RunnerScore{
			Rate:         0.1,
			SpeedDivisor: 4,
		},
	}
}

// DefaultBlackjackConfig returns the default Tectra Blackjack configuration.
func DefaultBlackjackConfig() BlackjackConfig {
	return BlackjackConfig{
		MinBet:       10,
		BetStep:      10,
		StarterCoins: 100,
		DealerStand:  17,
		WinMultiple:  2,
	}
}
