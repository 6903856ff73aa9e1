package runner

import (
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

func TestIdleRun(t *testing.T) {
	r := quietRun(upgrades.Levels{})

	for i := 0; i < 60; i++ {
		res := r.Tick(idle(), upgrades.Levels{})
		if res.Ended {
			t.Fatalf("run ended at tick %d", i)
		}
	}

	st := r.State()
	if st.Score != 60 || st.Coins != 0 {
		t.Errorf("score=%d coins=%d, expected 60 and 0", st.Score, st.Coins)
	}
	p := r.Player()
	if !p.OnGround || p.Y != float64(350-p.H) {
		t.Errorf("player should rest on the ground, y=%f onGround=%v", p.Y, p.OnGround)
	}
}

func TestScoreMultiplier(t *testing.T) {
	tests := []struct {
		level  int
		factor int
	}{
		{0, 1},
		{1, 10},
		{2, 100},
		{3, 1000},
	}

	for _, tc := range tests {
		levels := upgrades.Levels{ScoreMultiplier: tc.level}
		r := quietRun(levels)
		for i := 0; i < 10; i++ {
			res := r.Tick(idle(), levels)
			if res.ScoreDelta != tc.factor {
				t.Fatalf("level %d: ScoreDelta = %d, expected %d", tc.level, res.ScoreDelta, tc.factor)
			}
		}
		st := r.State()
		if st.Score != st.BaseScore*tc.factor || st.BaseScore != 10 {
			t.Errorf("level %d: score %d, base %d", tc.level, st.Score, st.BaseScore)
		}
	}
}

func TestPassedObstacleEarnsCoinsOnce(t *testing.T) {
	levels := upgrades.Levels{CoinMultiplier: 2}
	r := quietRun(levels)
	r.field.obstacles = append(r.field.obstacles, groundCactus(30))

	res := r.Tick(idle(), levels)
	if res.Coins != 3 {
		t.Fatalf("expected 3 coins for one pass, got %d", res.Coins)
	}

	for i := 0; i < 20; i++ {
		if res := r.Tick(idle(), levels); res.Coins != 0 {
			t.Fatalf("obstacle paid out again on tick %d", i)
		}
	}

	st := r.State()
	if st.Passed != 1 || st.Coins != 3 {
		t.Errorf("passed=%d coins=%d, expected 1 and 3", st.Passed, st.Coins)
	}
}

func TestFatalHitEndsRun(t *testing.T) {
	r := quietRun(upgrades.Levels{})
	r.field.obstacles = append(r.field.obstacles, groundCactus(110))

	res := r.Tick(idle(), upgrades.Levels{})
	if !res.Ended || !res.Hit {
		t.Fatalf("expected fatal hit, got %+v", res)
	}
	if len(r.Field().Obstacles()) != 0 {
		t.Error("the hitting obstacle should be consumed")
	}

	ticks := r.State().Ticks
	res = r.Tick(idle(), upgrades.Levels{})
	if !res.Ended || r.State().Ticks != ticks {
		t.Error("ticking an ended run should do nothing")
	}
}

func TestBonusHealthRunContinues(t *testing.T) {
	levels := upgrades.Levels{BonusHealth: 1}
	r := quietRun(levels)
	r.field.obstacles = append(r.field.obstacles, groundCactus(110))

	res := r.Tick(idle(), levels)
	if res.Ended || !res.Hit {
		t.Fatalf("expected non-fatal hit, got %+v", res)
	}

	p := r.Player()
	if p.Health != 1 || p.Invulnerable != 120 {
		t.Errorf("health=%d invulnerable=%d, expected 1 and 120", p.Health, p.Invulnerable)
	}

	// The consumed obstacle never pays out as passed
	for i := 0; i < 100; i++ {
		r.Tick(idle(), levels)
	}
	if st := r.State(); st.Passed != 0 || st.HitsTaken != 1 {
		t.Errorf("passed=%d hits=%d, expected 0 and 1", st.Passed, st.HitsTaken)
	}
}

func TestShieldBlocksHit(t *testing.T) {
	levels := upgrades.Levels{Shield: 1}
	r := quietRun(levels)

	r.Tick(press(core.ActionShield), levels)
	r.field.obstacles = append(r.field.obstacles, groundCactus(110))

	res := r.Tick(idle(), levels)
	if res.Hit || res.Ended {
		t.Fatalf("shield should block the hit, got %+v", res)
	}
	if r.Player().Health != 1 {
		t.Errorf("health = %d, expected 1", r.Player().Health)
	}
	if len(r.Field().Obstacles()) != 1 {
		t.Error("a blocked obstacle stays in the field")
	}
}

func TestDashDestroysObstacles(t *testing.T) {
	levels := upgrades.Levels{AirDash: 1}
	r := quietRun(levels)

	r.Tick(press(core.ActionJump), levels)
	r.Tick(press(core.ActionDash), levels)
	if !r.Player().IsDashing() {
		t.Fatal("player should be dashing")
	}

	tall := Obstacle{Shape: ShapeTall, Y: 350 - 64, W: 24, H: 64}
	a, b := tall, tall
	a.X, b.X = 126, 146
	r.field.obstacles = append(r.field.obstacles, a, b)

	res := r.Tick(idle(), levels)
	if res.DestroyedByDash != 2 || res.Hit || res.Ended {
		t.Fatalf("expected 2 dash kills and no damage, got %+v", res)
	}
	if r.State().DestroyedByDash != 2 || r.Field().DestroyedByDash() != 2 {
		t.Errorf("destroyed counters = %d/%d, expected 2", r.State().DestroyedByDash, r.Field().DestroyedByDash())
	}
	if r.Player().Health != 1 {
		t.Error("dash kills should not cost health")
	}
}

func TestDodgeConsumesObstacle(t *testing.T) {
	levels := upgrades.Levels{DodgeChance: 5}
	r := NewRun(config.DefaultDinoConfig(), levels, fixedRNG(0))
	r.field.spawnTimer = -1 << 20
	r.field.obstacles = append(r.field.obstacles, groundCactus(110))

	res := r.Tick(idle(), levels)
	if !res.Dodged || res.Hit || res.Ended {
		t.Fatalf("expected dodge, got %+v", res)
	}
	if r.State().Dodges != 1 || len(r.Field().Obstacles()) != 0 {
		t.Errorf("dodges=%d obstacles=%d, expected 1 and 0", r.State().Dodges, len(r.Field().Obstacles()))
	}
}

func TestRunDeterminism(t *testing.T) {
	levels := upgrades.Levels{AirJump: 1, DodgeChance: 2, BonusHealth: 2}
	play := func() RunState {
		r := NewRun(config.DefaultDinoConfig(), levels, NewRNG(2024))
		for i := 0; i < 5000; i++ {
			in := idle()
			if i%45 == 0 || i%45 == 8 {
				in.Set(core.ActionJump)
			}
			if r.Tick(in, levels).Ended {
				break
			}
		}
		return r.State()
	}

	a, b := play(), play()
	if a != b {
		t.Errorf("runs with the same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestRunStats(t *testing.T) {
	r := quietRun(upgrades.Levels{})
	for i := 0; i < 5; i++ {
		r.Tick(idle(), upgrades.Levels{})
	}
	if s := r.Stats(); s.Ticks != 5 || s.HitsTaken != 0 {
		t.Errorf("Stats() = %+v", s)
	}
}
