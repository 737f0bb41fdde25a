package runner

import "github.com/tectra-games/tectra-arcade/internal/core"

// Snapshot is a read-only view of the simulation in world units. It exists
// for inspection (debug overlays, tests) without exposing mutable engine
// state.
type Snapshot struct {
	Player  core.Rect
	Jumping bool
	Breathe float64

	Buildings []core.Rect
	Coins     []core.Rect

	Speed          float64
	Level          int
	FrequencyLevel int
	FrequencyMS    float64
	BuildingWidth  float64
	MinHeight      float64
	MaxHeight      float64

	Score          float64
	CoinsCollected int
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Player:         g.playerRect(),
		Jumping:        g.jumping,
		Breathe:        g.breathe,
		Speed:          g.speed,
		Level:          g.level,
		FrequencyLevel: g.frequencyLevel,
		FrequencyMS:    g.frequencyMS,
		BuildingWidth:  g.buildingWidth,
		MinHeight:      g.minHeight,
		MaxHeight:      g.maxHeight,
		Score:          g.score,
		CoinsCollected: g.coinsCollected,
	}
	for _, b := range g.buildings {
		snap.Buildings = append(snap.Buildings, b.Rect)
	}
	for _, c := range g.coins {
		snap.Coins = append(snap.Coins, c.Rect)
	}
	return snap
}
