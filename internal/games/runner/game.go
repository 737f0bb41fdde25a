// Package runner implements Tectra Runner, a side-scrolling endless runner.
// The player jumps over rooftop buildings while collecting coins; speed and
// obstacle density ramp up on fixed timers. The simulation runs in a
// fractional-pixel world that is scaled down to the character grid only at
// render time.
package runner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tectra-games/tectra-arcade/internal/config"
	"github.com/tectra-games/tectra-arcade/internal/core"
	"github.com/tectra-games/tectra-arcade/internal/registry"
	"github.com/tectra-games/tectra-arcade/internal/wallet"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlayerHead   = '◆'
	BuildingChar = '▓'
	WindowChar   = '▪'
	CoinChar     = '◉'
	GroundChar   = '═'
)

// Game implements the Tectra Runner simulation.
type Game struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	dt      float64 // Milliseconds per tick

	// Player state. playerY is the top edge; the player rests with its
	// bottom edge on the ground line.
	playerY   float64
	jumping   bool
	jumpForce float64

	// Breathing animation, oscillates in [-1, 1].
	breathe    float64
	breatheDir float64

	buildings []Building
	coins     []Coin

	// Ramp state. Difficulty raises speed and building size every
	// difficulty interval; frequency lowers the spawn offset every
	// frequency interval so buildings arrive denser over time.
	speed          float64
	level          int
	frequencyLevel int
	frequencyMS    float64
	buildingWidth  float64
	minHeight      float64
	maxHeight      float64

	// Countdown timers in milliseconds.
	difficultyTimer float64
	frequencyTimer  float64
	spawnTimer      float64
	coinTimer       float64

	score          float64
	coinsCollected int
	gameOver       bool
	paused         bool
	persisted      bool

	store    *wallet.Store
	walletID string
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Tectra Runner game instance.
func New() *Game {
	return &Game{}
}

// SetWallet attaches a wallet-scoped store so finished runs persist their
// high score and coin total. Without it (or with an empty walletID) runs are
// ephemeral.
func (g *Game) SetWallet(store *wallet.Store, walletID string) {
	g.store = store
	g.walletID = walletID
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tectra Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	g.cfg = cfg

	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
		g.runtime.TickRate = runtime.TickRate
	}
	g.dt = 1000.0 / float64(runtime.TickRate)

	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.playerY = g.groundY() - cfg.Player.Height
	g.jumping = false
	g.jumpForce = 0
	g.breathe = 0
	g.breatheDir = 1

	g.buildings = g.buildings[:0]
	g.coins = g.coins[:0]

	g.speed = cfg.Difficulty.StartSpeed
	g.level = 1
	g.frequencyLevel = 1
	g.frequencyMS = cfg.Frequency.StartOffsetMS
	g.buildingWidth = cfg.Obstacles.StartWidth
	g.minHeight = cfg.Obstacles.MinHeight
	g.maxHeight = cfg.Obstacles.MaxHeight

	g.difficultyTimer = 0
	g.frequencyTimer = 0
	g.spawnTimer = cfg.Obstacles.SpawnTimerMS
	g.coinTimer = cfg.Coins.SpawnTimerMS

	g.score = 0
	g.coinsCollected = 0
	g.gameOver = false
	g.paused = false
	g.persisted = false
}

// groundY returns the y-coordinate of the ground line in world units.
func (g *Game) groundY() float64 {
	return g.cfg.World.Height - g.cfg.World.GroundOffset
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Handle jump input (only when not already airborne)
	if in.Has(core.ActionJump) && !g.jumping {
		g.jumping = true
		g.jumpForce = g.cfg.Player.JumpImpulse
	}

	g.updatePlayer()
	g.updateBreathing()
	g.updateDifficulty()
	g.updateFrequency()
	g.updateSpawns()

	g.buildings = advanceBuildings(g.buildings, g.speed)
	g.coins = advanceCoins(g.coins, g.speed)

	g.checkCollisions()
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Score grows faster at higher speed
	g.score += g.cfg.Score.Rate * (g.speed / g.cfg.Score.SpeedDivisor)

	return core.StepResult{State: g.State()}
}

// updatePlayer applies jump ballistics. The jump force starts at the impulse
// and decays by gravity each tick, carrying the player up then back down.
func (g *Game) updatePlayer() {
	if !g.jumping {
		return
	}
	g.playerY -= g.jumpForce
	g.jumpForce -= g.cfg.Player.Gravity

	floor := g.groundY() - g.cfg.Player.Height
	if g.playerY >= floor {
		g.playerY = floor
		g.jumping = false
		g.jumpForce = 0
	}
}

// updateBreathing oscillates the idle-breathing amount between -1 and 1.
func (g *Game) updateBreathing() {
	g.breathe += g.breatheDir * g.cfg.Player.BreatheStep
	if g.breathe >= 1 {
		g.breatheDir = -1
	} else if g.breathe <= -1 {
		g.breatheDir = 1
	}
}

// updateDifficulty advances the difficulty ramp: every interval the speed
// rises and buildings grow wider and taller, clamped at the configured caps.
func (g *Game) updateDifficulty() {
	g.difficultyTimer += g.dt
	if g.difficultyTimer <= g.cfg.Difficulty.IntervalMS {
		return
	}
	g.level++
	g.speed += g.cfg.Difficulty.SpeedStep
	g.buildingWidth = core.MinF(g.cfg.Obstacles.MaxWidth, g.buildingWidth+g.cfg.Obstacles.WidthStep)
	g.maxHeight = core.MinF(g.cfg.Obstacles.MaxHeightCap, g.maxHeight+g.cfg.Obstacles.MaxHeightStep)
	g.minHeight = core.MinF(g.cfg.Obstacles.MinHeightCap, g.minHeight+g.cfg.Obstacles.MinHeightStep)
	g.difficultyTimer = 0
}

// updateFrequency advances the spawn-frequency ramp: every interval the
// spawn offset shrinks toward its floor, so buildings arrive more often.
func (g *Game) updateFrequency() {
	g.frequencyTimer += g.dt
	if g.frequencyTimer <= g.cfg.Frequency.IntervalMS {
		return
	}
	g.frequencyLevel++
	g.frequencyMS = core.MaxF(g.cfg.Frequency.FloorMS, g.frequencyMS-g.cfg.Frequency.StepMS)
	g.frequencyTimer = 0
}

// updateSpawns counts the spawn timers down and emits new buildings and
// coins at the right edge of the world when they expire.
func (g *Game) updateSpawns() {
	g.spawnTimer -= g.dt
	if g.spawnTimer <= 0 {
		g.spawnBuilding()
	}

	g.coinTimer -= g.dt
	if g.coinTimer <= 0 {
		g.spawnCoin()
	}
}

// spawnBuilding emits a building with randomized height and resets the
// spawn countdown from the randomized gap and the current frequency offset.
func (g *Game) spawnBuilding() {
	o := g.cfg.Obstacles

	gap := o.MinGap
	if span := int(o.MaxGap - o.MinGap); span > 0 {
		gap += float64(g.rng.Intn(span + 1))
	}

	height := g.minHeight
	if span := int(g.maxHeight - g.minHeight); span > 0 {
		height += float64(g.rng.Intn(span + 1))
	}

	g.buildings = append(g.buildings, Building{core.NewRect(
		g.cfg.World.Width,
		g.groundY()-height,
		g.buildingWidth,
		height,
	)})

	g.spawnTimer = gap/g.speed + g.frequencyMS
}

// spawnCoin emits a coin at a randomized height above the ground and resets
// the coin countdown; faster play spawns coins sooner.
func (g *Game) spawnCoin() {
	c := g.cfg.Coins

	above := c.MinAboveGround
	if span := int(c.MaxAboveGround - c.MinAboveGround); span > 0 {
		above += float64(g.rng.Intn(span + 1))
	}

	g.coins = append(g.coins, Coin{core.NewRect(
		g.cfg.World.Width,
		g.groundY()-above,
		c.Size,
		c.Size,
	)})

	g.coinTimer = c.IntervalFactor / g.speed
}

// playerRect returns the player's collision rectangle in world units.
func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.cfg.Player.X, g.playerY, g.cfg.Player.Width, g.cfg.Player.Height)
}

// checkCollisions resolves building hits (fatal) and coin pickups. Every
// overlapping coin in the tick is collected; a building hit ends the run.
func (g *Game) checkCollisions() {
	player := g.playerRect()

	for _, b := range g.buildings {
		if player.Intersects(b.Rect) {
			g.finish()
			return
		}
	}

	remaining := g.coins[:0]
	for _, c := range g.coins {
		if player.Intersects(c.Rect) {
			g.score += g.cfg.Coins.ScoreBonus
			g.coinsCollected++
			continue
		}
		remaining = append(remaining, c)
	}
	g.coins = remaining
}

// finish ends the run and persists the results exactly once. The high score
// only ever moves up; collected coins are added to the stored total.
func (g *Game) finish() {
	g.gameOver = true
	if g.persisted || g.store == nil || g.walletID == "" {
		return
	}
	g.persisted = true

	final := int(math.Floor(g.score))
	if final > g.store.GetInt(g.walletID, wallet.KeyHighScore, 0) {
		g.store.SetInt(g.walletID, wallet.KeyHighScore, final)
	}

	total := g.store.GetInt(g.walletID, wallet.KeyTotalCoins, 0)
	g.store.SetInt(g.walletID, wallet.KeyTotalCoins, total+g.coinsCollected)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height
	groundRow := int(g.groundY() * sy)

	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, b := range g.buildings {
		g.drawBuilding(dst, b, sx, sy)
	}
	for _, c := range g.coins {
		x := int((c.X + c.W/2) * sx)
		y := int((c.Y + c.H/2) * sy)
		dst.SetCell(x, y, CoinChar, core.ColorYellow)
	}

	g.drawPlayer(dst, sx, sy)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", int(math.Floor(g.score))))
	dst.DrawText(2, 1, fmt.Sprintf(" Coins: %d ", g.coinsCollected))
	levelText := fmt.Sprintf(" Lvl: %d  Freq: %d  Spd: %.1f ", g.level, g.frequencyLevel, g.speed)
	dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Coins: %d  |  Press R to restart", int(math.Floor(g.score)), g.coinsCollected))
	}
}

// drawPlayer renders the runner as a small colored column with a head. The
// breathing amount nudges the head row for a subtle idle animation.
func (g *Game) drawPlayer(dst *core.Screen, sx, sy float64) {
	p := g.playerRect()
	x := int(p.X * sx)
	y := int(p.Y * sy)
	w := core.Max(1, int(p.W*sx))
	h := core.Max(2, int(p.H*sy))

	headY := y
	if !g.jumping && g.breathe > 0.5 {
		headY++
	}

	dst.SetCell(x+w/2, headY, PlayerHead, core.ColorCyan)
	for dy := 1; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetCell(x+dx, y+dy, PlayerChar, core.ColorCyan)
		}
	}
}

// drawBuilding renders a building with lit windows.
func (g *Game) drawBuilding(dst *core.Screen, b Building, sx, sy float64) {
	x := int(b.X * sx)
	y := int(b.Y * sy)
	w := core.Max(1, int(b.W*sx))
	h := core.Max(1, int(b.H*sy))

	dst.DrawRect(x, y, w, h, BuildingChar, core.ColorMagenta)
	for wy := y + 1; wy < y+h-1; wy += 2 {
		for wx := x + 1; wx < x+w-1; wx += 2 {
			dst.SetCell(wx, wy, WindowChar, core.ColorYellow)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(math.Floor(g.score)),
		Coins:    g.coinsCollected,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
