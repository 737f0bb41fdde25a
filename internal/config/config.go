// Package config provides YAML-based game configuration loading for the
// Tectra arcade. Every tunable in the simulations lives here so that physics
// and difficulty can be adjusted without touching engine code.
package config

// RunnerConfig contains all configuration for the Tectra Runner game.
type RunnerConfig struct {
	World      RunnerWorld      `yaml:"world"`
	Player     RunnerPlayer     `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Coins      RunnerCoins      `yaml:"coins"`
	Difficulty RunnerDifficulty `yaml:"difficulty"`
	Frequency  RunnerFrequency  `yaml:"frequency"`
	Score      RunnerScore      `yaml:"score"`
}

// RunnerWorld defines the simulated world dimensions, in world units.
// The renderer scales this down to the character grid.
type RunnerWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Ground line distance from the bottom
}

// RunnerPlayer defines player parameters for Tectra Runner.
type RunnerPlayer struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	BreatheStep float64 `yaml:"breathe_step"` // Breathing animation increment per tick
}

// RunnerObstacles defines building-obstacle parameters.
type RunnerObstacles struct {
	StartWidth    float64 `yaml:"start_width"`
	WidthStep     float64 `yaml:"width_step"` // Width increase per difficulty level
	MaxWidth      float64 `yaml:"max_width"`
	MinHeight     float64 `yaml:"min_height"`
	MinHeightStep float64 `yaml:"min_height_step"`
	MinHeightCap  float64 `yaml:"min_height_cap"`
	MaxHeight     float64 `yaml:"max_height"`
	MaxHeightStep float64 `yaml:"max_height_step"`
	MaxHeightCap  float64 `yaml:"max_height_cap"`
	MinGap        float64 `yaml:"min_gap"` // Randomized spawn gap bounds, world units
	MaxGap        float64 `yaml:"max_gap"`
	SpawnTimerMS  float64 `yaml:"spawn_timer_ms"` // Initial spawn countdown
}

// RunnerCoins defines collectible parameters.
type RunnerCoins struct {
	Size           float64 `yaml:"size"`
	MinAboveGround float64 `yaml:"min_above_ground"`
	MaxAboveGround float64 `yaml:"max_above_ground"`
	IntervalFactor float64 `yaml:"interval_factor"` // Countdown reset = factor / speed
	ScoreBonus     float64 `yaml:"score_bonus"`
	SpawnTimerMS   float64 `yaml:"spawn_timer_ms"` // Initial spawn countdown
}

// RunnerDifficulty defines the 10-second difficulty ramp.
// All increases are monotonic and clamped at the configured caps.
type RunnerDifficulty struct {
	StartSpeed float64 `yaml:"start_speed"`
	IntervalMS float64 `yaml:"interval_ms"`
	SpeedStep  float64 `yaml:"speed_step"`
}

// RunnerFrequency defines the 4-second obstacle frequency ramp.
// The offset is added to every spawn countdown; lower means denser obstacles.
type RunnerFrequency struct {
	StartOffsetMS float64 `yaml:"start_offset_ms"`
	IntervalMS    float64 `yaml:"interval_ms"`
	StepMS        float64 `yaml:"step_ms"`
	FloorMS       float64 `yaml:"floor_ms"`
}

// RunnerScore defines score accumulation: per tick the score grows by
// Rate * (speed / SpeedDivisor), so faster play scores faster.
type RunnerScore struct {
	Rate         float64 `yaml:"rate"`
	SpeedDivisor float64 `yaml:"speed_divisor"`
}

// BlackjackConfig contains all configuration for Tectra Blackjack.
type BlackjackConfig struct {
	MinBet       int `yaml:"min_bet"`
	BetStep      int `yaml:"bet_step"`
	StarterCoins int `yaml:"starter_coins"` // One-time grant for wallets with zero coins
	DealerStand  int `yaml:"dealer_stand"`  // Dealer draws while below this score
	WinMultiple  int `yaml:"win_multiple"`  // Payout = bet * WinMultiple on a win
}
