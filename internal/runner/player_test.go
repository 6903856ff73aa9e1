package runner

import (
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

func newTestPlayer(levels upgrades.Levels, rng RNG) *Player {
	return NewPlayer(config.DefaultDinoConfig(), levels, 4, rng)
}

func TestPlayerStartsOnGround(t *testing.T) {
	p := newTestPlayer(upgrades.Levels{}, NewRNG(1))

	if !p.OnGround || p.Y != 350-96 {
		t.Errorf("expected on ground at y=254, got y=%f onGround=%v", p.Y, p.OnGround)
	}
	if p.W != 64 || p.H != 96 {
		t.Errorf("size = %dx%d, expected 64x96", p.W, p.H)
	}
	if p.Health != 1 || p.MaxHealth != 1 {
		t.Errorf("health = %d/%d, expected 1/1", p.Health, p.MaxHealth)
	}
}

func TestPlayerJump(t *testing.T) {
	p := newTestPlayer(upgrades.Levels{}, NewRNG(1))

	p.Update(press(core.ActionJump), upgrades.Levels{}, 6)

	if p.VelY != -15 {
		t.Errorf("VelY = %f, expected -15", p.VelY)
	}
	if p.OnGround {
		t.Error("player should leave the ground immediately")
	}

	p.Update(idle(), upgrades.Levels{}, 6)
	if p.Y >= 254 {
		t.Errorf("player should rise, y = %f", p.Y)
	}
}

func TestJumpBoost(t *testing.T) {
	tests := []struct {
		level    int
		expected float64
	}{
		{0, -15},
		{1, -15.6},
		{5, -18},
	}

	p := newTestPlayer(upgrades.Levels{}, NewRNG(1))
	for _, tc := range tests {
		if got := p.JumpForce(upgrades.Levels{JumpBoost: tc.level}); !approx(got, tc.expected) {
			t.Errorf("JumpForce at level %d = %f, expected %f", tc.level, got, tc.expected)
		}
	}
}

func TestPlayerLands(t *testing.T) {
	p := newTestPlayer(upgrades.Levels{}, NewRNG(1))
	p.Update(press(core.ActionJump), upgrades.Levels{}, 6)

	for i := 0; i < 100 && !p.OnGround; i++ {
		p.Update(idle(), upgrades.Levels{}, 6)
	}

	if !p.OnGround || p.Y != 254 || p.VelY != 0 {
		t.Errorf("expected landed at rest, got y=%f vel=%f onGround=%v", p.Y, p.VelY, p.OnGround)
	}
}

func TestAirJump(t *testing.T) {
	levels := upgrades.Levels{AirJump: 1}
	p := newTestPlayer(levels, NewRNG(1))

	p.Update(press(core.ActionJump), levels, 6)
	p.Update(idle(), levels, 6)
	p.Update(press(core.ActionJump), levels, 6)

	if p.VelY != -8 || !p.AirJumpUsed {
		t.Fatalf("expected air jump with VelY -8, got %f used=%v", p.VelY, p.AirJumpUsed)
	}

	// Only once per airborne phase
	p.Update(idle(), levels, 6)
	p.Update(press(core.ActionJump), levels, 6)
	if p.VelY == -8 {
		t.Error("second air jump should be refused")
	}
}

func TestHeldJumpDoesNotAirJump(t *testing.T) {
	levels := upgrades.Levels{AirJump: 1}
	p := newTestPlayer(levels, NewRNG(1))

	p.Update(press(core.ActionJump), levels, 6)
	p.Update(press(core.ActionJump), levels, 6)

	if p.AirJumpUsed {
		t.Error("holding jump should not trigger an air jump")
	}
	if !approx(p.VelY, -14.2) {
		t.Errorf("VelY = %f, expected -14.2", p.VelY)
	}
}

func TestAirJumpNeedsUpgrade(t *testing.T) {
	p := newTestPlayer(upgrades.Levels{}, NewRNG(1))

	p.Update(press(core.ActionJump), upgrades.Levels{}, 6)
	p.Update(idle(), upgrades.Levels{}, 6)
	p.Update(press(core.ActionJump), upgrades.Levels{}, 6)

	if p.AirJumpUsed {
		t.Error("air jump should need the upgrade")
	}
}

func TestShieldWindow(t *testing.T) {
	s := NewShield(120, 900)
	if !s.Activate() {
		t.Fatal("fresh shield should activate")
	}

	active := 0
	for s.Active {
		active++
		s.Tick()
	}
	if active != 120 {
		t.Errorf("shield active for %d ticks, expected 120", active)
	}

	if s.Activate() {
		t.Error("re-activation should be blocked by cooldown")
	}
	for s.Cooldown > 0 {
		s.Tick()
	}
	if !s.Activate() {
		t.Error("shield should activate after cooldown")
	}
}

func TestShieldUpgradeTimings(t *testing.T) {
	tests := []struct {
		level    int
		duration int
		cooldown int
	}{
		{0, 120, 900},
		{1, 150, 750},
		{2, 180, 600},
	}

	for _, tc := range tests {
		p := newTestPlayer(upgrades.Levels{Shield: 1, ShieldUpgrade: tc.level}, NewRNG(1))
		if p.Shield.MaxDuration != tc.duration || p.Shield.MaxCooldown != tc.cooldown {
			t.Errorf("level %d: shield %d/%d, expected %d/%d", tc.level,
				p.Shield.MaxDuration, p.Shield.MaxCooldown, tc.duration, tc.cooldown)
		}
	}
}

func TestShieldStage(t *testing.T) {
	tests := []struct {
		duration int
		expected ShieldStage
	}{
		{120, ShieldIntact},
		{100, ShieldIntact},
		{60, ShieldCracked},
		{30, ShieldShattering},
		{0, ShieldShattering},
	}

	for _, tc := range tests {
		s := Shield{Duration: tc.duration, MaxDuration: 120}
		if got := s.Stage(); got != tc.expected {
			t.Errorf("Stage() at %d = %d, expected %d", tc.duration, got, tc.expected)
		}
	}
}

func TestShieldInputNeedsUpgrade(t *testing.T) {
	p := newTestPlayer(upgrades.Levels{}, NewRNG(1))
	p.Update(press(core.ActionShield), upgrades.Levels{}, 6)
	if p.Shield.Active {
		t.Error("shield should need the upgrade")
	}

	levels := upgrades.Levels{Shield: 1}
	p = newTestPlayer(levels, NewRNG(1))
	p.Update(press(core.ActionShield), levels, 6)
	if !p.Shield.Active || !p.IsImmune() {
		t.Error("shield should be active and grant immunity")
	}
}

func TestAirDash(t *testing.T) {
	levels := upgrades.Levels{AirDash: 1}
	p := newTestPlayer(levels, NewRNG(1))

	// Dash on the ground is refused
	p.Update(press(core.ActionDash), levels, 6)
	if p.IsDashing() {
		t.Fatal("dash should need the player airborne")
	}

	p.Update(press(core.ActionJump), levels, 6)
	p.Update(press(core.ActionDash), levels, 6)
	if !p.IsDashing() || p.Dash.Velocity != 12 || p.Dash.Cooldown != 300 {
		t.Fatalf("expected dash at 12px/tick, got %+v", p.Dash)
	}

	for p.IsDashing() {
		p.Update(idle(), levels, 6)
	}
	if p.X != 100+15*12 {
		t.Errorf("dash ended at x=%f, expected 280", p.X)
	}
	if !p.Dash.Returning {
		t.Fatal("player should return to start after the dash")
	}

	for i := 0; i < 100 && p.Dash.Returning; i++ {
		p.Update(idle(), levels, 6)
	}
	if p.X != p.StartX || p.Dash.Returning {
		t.Errorf("expected back at start, got x=%f returning=%v", p.X, p.Dash.Returning)
	}
}

func TestDashClampedToMaxX(t *testing.T) {
	levels := upgrades.Levels{AirDash: 1, DashDistance: 3}
	p := newTestPlayer(levels, NewRNG(1))

	p.Update(press(core.ActionJump), levels, 6)
	p.Update(press(core.ActionDash), levels, 6)
	if p.Dash.Velocity != 21 {
		t.Errorf("dash velocity = %f, expected 21", p.Dash.Velocity)
	}

	p.X = 740
	p.Update(idle(), levels, 6)
	if p.X != 750 {
		t.Errorf("x = %f, expected clamp at 750", p.X)
	}
}

func TestCollisionRect(t *testing.T) {
	p := newTestPlayer(upgrades.Levels{}, NewRNG(1))

	expected := core.NewRect(104, 258, 56, 88)
	if got := p.CollisionRect(); got != expected {
		t.Errorf("CollisionRect() = %+v, expected %+v", got, expected)
	}
}

func TestTakeDamageWithoutDodge(t *testing.T) {
	p := newTestPlayer(upgrades.Levels{}, NewRNG(99))

	for i := 0; i < 1000; i++ {
		p.Health, p.Invulnerable = p.MaxHealth, 0
		if d := p.TakeDamage(upgrades.Levels{}); d != DamageFatal {
			t.Fatalf("call %d: expected fatal damage, got %s", i, d)
		}
	}
}

func TestDodgeRate(t *testing.T) {
	levels := upgrades.Levels{DodgeChance: 5}
	p := newTestPlayer(levels, NewRNG(42))

	const n = 20000
	dodged := 0
	for i := 0; i < n; i++ {
		p.Health, p.Invulnerable = p.MaxHealth, 0
		if p.TakeDamage(levels) == DamageDodged {
			dodged++
		}
	}

	rate := float64(dodged) / n
	if rate < 0.23 || rate > 0.27 {
		t.Errorf("dodge rate = %.3f, expected about 0.25", rate)
	}
}

func TestDodgeRollBoundary(t *testing.T) {
	levels := upgrades.Levels{DodgeChance: 1}

	// Roll is Intn(100)+1, so 4 means 5 which is inside a 5% chance
	p := newTestPlayer(levels, fixedRNG(4))
	if d := p.TakeDamage(levels); d != DamageDodged {
		t.Errorf("roll 5 against 5%% should dodge, got %s", d)
	}

	p = newTestPlayer(levels, fixedRNG(5))
	if d := p.TakeDamage(levels); d != DamageFatal {
		t.Errorf("roll 6 against 5%% should hit, got %s", d)
	}
}

func TestTakeDamageImmune(t *testing.T) {
	p := newTestPlayer(upgrades.Levels{}, NewRNG(1))

	p.Invulnerable = 10
	if d := p.TakeDamage(upgrades.Levels{}); d != DamageImmune {
		t.Errorf("invulnerable player took %s", d)
	}

	p.Invulnerable = 0
	p.Shield.Active = true
	if d := p.TakeDamage(upgrades.Levels{}); d != DamageImmune {
		t.Errorf("shielded player took %s", d)
	}

	p.Shield.Active = false
	p.Dash.Duration = 3
	if d := p.TakeDamage(upgrades.Levels{}); d != DamageImmune {
		t.Errorf("dashing player took %s", d)
	}
	if p.Health != 1 {
		t.Errorf("immune hits should not change health, got %d", p.Health)
	}
}

func TestBonusHealthSurvivesHit(t *testing.T) {
	levels := upgrades.Levels{BonusHealth: 1}
	p := newTestPlayer(levels, NewRNG(1))

	d := p.TakeDamage(levels)
	if d != DamageTaken || d.Fatal() {
		t.Fatalf("expected non-fatal hit, got %s", d)
	}
	if p.Health != 1 || p.MaxHealth != 2 {
		t.Errorf("health = %d/%d, expected 1/2", p.Health, p.MaxHealth)
	}
	if p.Invulnerable != 120 {
		t.Errorf("invulnerable = %d, expected 120", p.Invulnerable)
	}
}

func TestCeilingClamp(t *testing.T) {
	tests := []struct {
		name        string
		levels      upgrades.Levels
		wantCeiling bool
	}{
		{"plain jump stays below", upgrades.Levels{AirJump: 1}, false},
		{"boosted jump and air jump", upgrades.Levels{JumpBoost: 5, AirJump: 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer(tc.levels, NewRNG(1))
			p.Update(press(core.ActionJump), tc.levels, 6)
			for p.VelY < 0 {
				p.Update(idle(), tc.levels, 6)
			}
			p.Update(press(core.ActionJump), tc.levels, 6)
			if !p.AirJumpUsed {
				t.Fatal("expected an air jump at the apex")
			}

			top := p.Y
			for i := 0; i < 200 && !p.OnGround; i++ {
				p.Update(idle(), tc.levels, 6)
				if p.Y < 50 {
					t.Fatalf("y = %f went above the ceiling", p.Y)
				}
				top = min(top, p.Y)
			}
			if reached := top == 50; reached != tc.wantCeiling {
				t.Errorf("highest y = %f, expected ceiling reached = %v", top, tc.wantCeiling)
			}
		})
	}
}

func TestAirDashOncePerAirbornePhase(t *testing.T) {
	levels := upgrades.Levels{AirDash: 1}
	p := newTestPlayer(levels, NewRNG(1))

	steps := []struct {
		name     string
		in       core.InputFrame
		wantDash bool
	}{
		{"jump", press(core.ActionJump), false},
		{"first dash", press(core.ActionDash), true},
		{"second dash in the same jump", press(core.ActionDash), false},
	}
	for _, st := range steps {
		p.Update(idle(), levels, 6)
		p.Dash = Dash{} // Rule out duration and cooldown
		p.Update(st.in, levels, 6)
		if p.IsDashing() != st.wantDash {
			t.Fatalf("%s: dashing = %v, expected %v", st.name, p.IsDashing(), st.wantDash)
		}
	}
	if !p.AirDashUsed {
		t.Fatal("AirDashUsed should stay set while airborne")
	}

	for i := 0; i < 100 && !p.OnGround; i++ {
		p.Update(idle(), levels, 6)
	}
	if !p.OnGround || p.AirDashUsed {
		t.Fatalf("landing should reset AirDashUsed, onGround=%v used=%v", p.OnGround, p.AirDashUsed)
	}

	p.Dash = Dash{}
	p.Update(press(core.ActionJump), levels, 6)
	p.Update(press(core.ActionDash), levels, 6)
	if !p.IsDashing() {
		t.Error("a new jump should allow another dash")
	}
}

func TestDashCooldown(t *testing.T) {
	tests := []struct {
		name     string
		after    int // Ticks between the two dash presses
		wantDash bool
	}{
		{"well inside cooldown", 60, false},
		{"one tick early", 299, false},
		{"cooldown elapsed", 300, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			levels := upgrades.Levels{AirDash: 1}
			p := newTestPlayer(levels, NewRNG(1))

			p.Update(press(core.ActionJump), levels, 6)
			p.Update(press(core.ActionDash), levels, 6)
			if !p.IsDashing() {
				t.Fatal("first dash should start")
			}

			for range tc.after - 2 {
				p.Update(idle(), levels, 6)
			}
			if !p.OnGround {
				t.Fatal("expected the player back on the ground before the second jump")
			}
			p.Update(press(core.ActionJump), levels, 6)
			p.Update(press(core.ActionDash), levels, 6)

			if p.IsDashing() != tc.wantDash {
				t.Errorf("second dash after %d ticks: dashing = %v, expected %v (cooldown %d)",
					tc.after, p.IsDashing(), tc.wantDash, p.Dash.Cooldown)
			}
		})
	}
}
