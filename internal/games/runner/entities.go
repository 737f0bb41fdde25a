package runner

import "github.com/tectra-games/tectra-arcade/internal/core"

// Building is a rooftop obstacle the player must jump over.
type Building struct {
	core.Rect
}

// Coin is a collectible worth a score bonus and one persistent wallet coin.
type Coin struct {
	core.Rect
}

// advanceBuildings moves every building left by speed and filters out the
// ones that have fully left the world.
func advanceBuildings(bs []Building, speed float64) []Building {
	valid := bs[:0]
	for i := range bs {
		bs[i].X -= speed
		if bs[i].Right() > 0 {
			valid = append(valid, bs[i])
		}
	}
	return valid
}

// advanceCoins moves every coin left by speed and filters out the ones that
// have fully left the world.
func advanceCoins(cs []Coin, speed float64) []Coin {
	valid := cs[:0]
	for i := range cs {
		cs[i].X -= speed
		if cs[i].Right() > 0 {
			valid = append(valid, cs[i])
		}
	}
	return valid
}
