package runner

import (
	"math"
	"strings"
	"testing"

	"github.com/tectra-games/tectra-arcade/internal/core"
	"github.com/tectra-games/tectra-arcade/internal/wallet"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func stepN(g *Game, n int) {
	empty := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(empty)
	}
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestResetInitialState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	snap := g.Snapshot()
	if snap.Speed != 5 {
		t.Errorf("initial speed = %v, want 5", snap.Speed)
	}
	if snap.Level != 1 || snap.FrequencyLevel != 1 {
		t.Errorf("initial levels = %d/%d, want 1/1", snap.Level, snap.FrequencyLevel)
	}
	if snap.FrequencyMS != 1800 {
		t.Errorf("initial frequency offset = %v, want 1800", snap.FrequencyMS)
	}
	if len(snap.Buildings) != 0 || len(snap.Coins) != 0 {
		t.Errorf("initial entities = %d buildings, %d coins, want none", len(snap.Buildings), len(snap.Coins))
	}

	// Player rests with its bottom edge on the ground line.
	if got := snap.Player.Bottom(); got != 250 {
		t.Errorf("player bottom = %v, want ground line 250", got)
	}
	if snap.Jumping {
		t.Error("player starts airborne, want grounded")
	}
}

func TestJumpBallistics(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	groundTop := g.Snapshot().Player.Y

	g.Step(jumpFrame())
	snap := g.Snapshot()
	if !snap.Jumping {
		t.Fatal("jump input ignored while grounded")
	}
	if snap.Player.Y >= groundTop {
		t.Errorf("player did not rise: y = %v, ground top = %v", snap.Player.Y, groundTop)
	}

	// A second jump mid-air must not re-impulse.
	before := g.Snapshot()
	g.Step(jumpFrame())
	after := g.Snapshot()
	wantY := before.Player.Y - (12 - 0.5) // One tick of decayed impulse
	if math.Abs(after.Player.Y-wantY) > 1e-9 {
		t.Errorf("mid-air jump changed ballistics: y = %v, want %v", after.Player.Y, wantY)
	}

	// Full arc: impulse 12 decaying by 0.5 per tick returns to ground in
	// under a second of simulation.
	stepN(g, 60)
	snap = g.Snapshot()
	if snap.Jumping {
		t.Error("player still airborne after full arc")
	}
	if snap.Player.Y != groundTop {
		t.Errorf("player landed at y = %v, want %v", snap.Player.Y, groundTop)
	}
}

func TestDifficultyRamp(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// 11 seconds at 60 ticks/sec crosses one difficulty interval (10s)
	// and two frequency intervals (4s, 8s).
	stepN(g, 660)

	snap := g.Snapshot()
	if snap.Level != 2 {
		t.Errorf("difficulty level = %d, want 2", snap.Level)
	}
	if math.Abs(snap.Speed-5.3) > 1e-9 {
		t.Errorf("speed = %v, want 5.3", snap.Speed)
	}
	if snap.BuildingWidth != 48 {
		t.Errorf("building width = %v, want 48", snap.BuildingWidth)
	}
	if snap.MinHeight != 52 || snap.MaxHeight != 105 {
		t.Errorf("height range = %v-%v, want 52-105", snap.MinHeight, snap.MaxHeight)
	}

	if snap.FrequencyLevel != 3 {
		t.Errorf("frequency level = %d, want 3", snap.FrequencyLevel)
	}
	if snap.FrequencyMS != 1500 {
		t.Errorf("frequency offset = %v, want 1500", snap.FrequencyMS)
	}
}

func TestFrequencyFloor(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// Drive the ramp far past the point where the offset reaches its
	// floor. 1800 - n*150 hits 400 after 10 intervals (40 seconds).
	for i := 0; i < 15; i++ {
		g.frequencyTimer = g.cfg.Frequency.IntervalMS + 1
		g.updateFrequency()
	}
	if got := g.Snapshot().FrequencyMS; got != 400 {
		t.Errorf("frequency offset = %v, want floor 400", got)
	}
}

func TestDifficultyCaps(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	for i := 0; i < 30; i++ {
		g.difficultyTimer = g.cfg.Difficulty.IntervalMS + 1
		g.updateDifficulty()
	}
	snap := g.Snapshot()
	if snap.BuildingWidth != 70 {
		t.Errorf("building width = %v, want cap 70", snap.BuildingWidth)
	}
	if snap.MinHeight != 60 {
		t.Errorf("min height = %v, want cap 60", snap.MinHeight)
	}
	if snap.MaxHeight != 140 {
		t.Errorf("max height = %v, want cap 140", snap.MaxHeight)
	}
}

func TestBuildingsSpawnAndScroll(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	stepN(g, 10)
	snap := g.Snapshot()
	if len(snap.Buildings) == 0 {
		t.Fatal("no building spawned after initial countdown")
	}

	b := snap.Buildings[0]
	if b.W != 45 {
		t.Errorf("building width = %v, want 45", b.W)
	}
	if b.H < 50 || b.H > 100 {
		t.Errorf("building height = %v, want within [50, 100]", b.H)
	}
	if b.Bottom() != 250 {
		t.Errorf("building bottom = %v, want ground line 250", b.Bottom())
	}

	// Buildings scroll left and are dropped once fully off the world.
	x := b.X
	g.Step(core.NewInputFrame())
	moved := g.Snapshot().Buildings[0]
	if moved.X != x-snap.Speed {
		t.Errorf("building moved to x = %v, want %v", moved.X, x-snap.Speed)
	}

	g.buildings[0].X = -g.buildings[0].W - 1
	g.Step(core.NewInputFrame())
	for _, rb := range g.Snapshot().Buildings {
		if rb.Right() <= 0 {
			t.Errorf("off-world building at x = %v was not removed", rb.X)
		}
	}
}

func TestBuildingCollisionEndsRun(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// Place a building directly on the player.
	g.buildings = append(g.buildings, Building{core.NewRect(40, 150, 45, 100)})
	g.Step(core.NewInputFrame())

	if !g.State().GameOver {
		t.Fatal("overlap with a building did not end the run")
	}

	// Further steps are inert.
	before := g.Snapshot().Score
	stepN(g, 10)
	if got := g.Snapshot().Score; got != before {
		t.Errorf("score advanced after game over: %v -> %v", before, got)
	}
}

func TestCoinCollection(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// Two coins overlapping the player are both collected in one tick.
	g.coins = append(g.coins,
		Coin{core.NewRect(60, 200, 30, 30)},
		Coin{core.NewRect(70, 180, 30, 30)},
	)
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.CoinsCollected != 2 {
		t.Errorf("coins collected = %d, want 2", snap.CoinsCollected)
	}
	if snap.Score < 10 {
		t.Errorf("score = %v, want at least the 2x coin bonus of 10", snap.Score)
	}
	if len(snap.Coins) != 0 {
		t.Errorf("%d coins remain after collection, want 0", len(snap.Coins))
	}
}

func TestScoreMonotonicWhileAlive(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	prev := 0.0
	for i := 0; i < 120 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
		score := g.Snapshot().Score
		if score <= prev {
			t.Fatalf("score not strictly increasing at tick %d: %v -> %v", i, prev, score)
		}
		prev = score
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime(42))
		for i := 0; i < 300; i++ {
			if i%50 == 0 {
				g.Step(jumpFrame())
			} else {
				g.Step(core.NewInputFrame())
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.CoinsCollected != b.CoinsCollected {
		t.Errorf("same seed diverged: score %v/%v, coins %d/%d", a.Score, b.Score, a.CoinsCollected, b.CoinsCollected)
	}
	if len(a.Buildings) != len(b.Buildings) {
		t.Fatalf("same seed diverged: %d vs %d buildings", len(a.Buildings), len(b.Buildings))
	}
	for i := range a.Buildings {
		if a.Buildings[i] != b.Buildings[i] {
			t.Errorf("building %d diverged: %+v vs %+v", i, a.Buildings[i], b.Buildings[i])
		}
	}
}

func TestFinishPersistsHighScoreAndCoins(t *testing.T) {
	store := wallet.New(nil, nil)
	g := New()
	g.SetWallet(store, "0xabc")

	g.Reset(testRuntime(1))
	g.score = 123.9
	g.coinsCollected = 4
	g.finish()

	if got := store.GetInt("0xabc", wallet.KeyHighScore, 0); got != 123 {
		t.Errorf("stored high score = %d, want floored 123", got)
	}
	if got := store.GetInt("0xabc", wallet.KeyTotalCoins, 0); got != 4 {
		t.Errorf("stored coin total = %d, want 4", got)
	}

	// A worse second run keeps the high score but still adds its coins.
	g.Reset(testRuntime(1))
	g.score = 50
	g.coinsCollected = 2
	g.finish()

	if got := store.GetInt("0xabc", wallet.KeyHighScore, 0); got != 123 {
		t.Errorf("high score after worse run = %d, want unchanged 123", got)
	}
	if got := store.GetInt("0xabc", wallet.KeyTotalCoins, 0); got != 6 {
		t.Errorf("coin total after second run = %d, want 6", got)
	}

	// Finishing twice within one run must not double-count.
	g.finish()
	if got := store.GetInt("0xabc", wallet.KeyTotalCoins, 0); got != 6 {
		t.Errorf("coin total after repeated finish = %d, want still 6", got)
	}
}

func TestFinishWithoutWalletIsEphemeral(t *testing.T) {
	store := wallet.New(nil, nil)
	g := New()
	g.SetWallet(store, "")

	g.Reset(testRuntime(1))
	g.score = 99
	g.finish()

	if got := store.GetInt("0xabc", wallet.KeyHighScore, -1); got != -1 {
		t.Errorf("walletless run persisted a high score: %d", got)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	stepN(g, 5)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause input did not pause")
	}

	before := g.Snapshot()
	stepN(g, 30)
	after := g.Snapshot()
	if before.Score != after.Score || len(before.Buildings) != len(after.Buildings) {
		t.Error("simulation advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause input did not resume")
	}
}

func TestRenderDrawsHUDAndGround(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	stepN(g, 10)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "Score:") {
		t.Errorf("HUD row missing score: %q", row)
	}

	groundRow := int(250.0 * 24.0 / 300.0)
	found := false
	for x := 0; x < 80; x++ {
		if screen.Get(x, groundRow) == GroundChar {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("ground line not drawn at row %d", groundRow)
	}
}
