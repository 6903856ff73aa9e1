// Package upgrades defines the purchasable upgrade levels that feed into a run.
// Levels is a flat snapshot: the simulation only reads it, the shop and the
// profile storage are the only writers.
package upgrades

import "fmt"

// Key identifies a single upgrade.
type Key string

// Upgrade keys, in shop order.
const (
	JumpBoost        Key = "jump_boost"
	CoinMultiplier   Key = "coin_multiplier"
	SpeedBoost       Key = "speed_boost"
	Shield           Key = "shield"
	SlowMotion       Key = "slow_motion"
	ShieldUpgrade    Key = "shield_upgrade"
	SlowAcceleration Key = "slow_acceleration"
	AirJump          Key = "air_jump"
	AirDash          Key = "air_dash"
	DashDistance     Key = "dash_distance"
	DodgeChance      Key = "dodge_chance"
	BonusHealth      Key = "bonus_health"
	ScoreMultiplier  Key = "score_multiplier"
)

// Keys returns every upgrade key in shop order.
func Keys() []Key {
	return []Key{
		JumpBoost,
		CoinMultiplier,
		SpeedBoost,
		Shield,
		SlowMotion,
		ShieldUpgrade,
		SlowAcceleration,
		AirJump,
		AirDash,
		DashDistance,
		DodgeChance,
		BonusHealth,
		ScoreMultiplier,
	}
}

// Valid reports whether k is a known upgrade key.
func (k Key) Valid() bool {
	_, ok := catalog[k]
	return ok
}

// Levels holds the purchased level of every upgrade.
// The zero value means nothing has been bought.
type Levels struct {
	JumpBoost        int
	CoinMultiplier   int
	SpeedBoost       int
	Shield           int
	SlowMotion       int
	ShieldUpgrade    int
	SlowAcceleration int
	AirJump          int
	AirDash          int
	DashDistance     int
	DodgeChance      int
	BonusHealth      int
	ScoreMultiplier  int
}

// field returns a pointer to the level for key k, or nil for unknown keys.
func (l *Levels) field(k Key) *int {
	switch k {
	case JumpBoost:
		return &l.JumpBoost
	case CoinMultiplier:
		return &l.CoinMultiplier
	case SpeedBoost:
		return &l.SpeedBoost
	case Shield:
		return &l.Shield
	case SlowMotion:
		return &l.SlowMotion
	case ShieldUpgrade:
		return &l.ShieldUpgrade
	case SlowAcceleration:
		return &l.SlowAcceleration
	case AirJump:
		return &l.AirJump
	case AirDash:
		return &l.AirDash
	case DashDistance:
		return &l.DashDistance
	case DodgeChance:
		return &l.DodgeChance
	case BonusHealth:
		return &l.BonusHealth
	case ScoreMultiplier:
		return &l.ScoreMultiplier
	}
	return nil
}

// Get returns the level for key k. Unknown keys are level 0.
func (l Levels) Get(k Key) int {
	if p := l.field(k); p != nil {
		return *p
	}
	return 0
}

// Set assigns the level for key k. Unknown keys are ignored.
func (l *Levels) Set(k Key, level int) {
	if p := l.field(k); p != nil {
		*p = level
	}
}

// FromMap builds Levels from stored key/level pairs.
// Keys missing from m stay at 0; unknown keys are dropped.
func FromMap(m map[string]int) Levels {
	var l Levels
	for name, level := range m {
		l.Set(Key(name), level)
	}
	return l
}

// Map returns the levels keyed by upgrade name.
func (l Levels) Map() map[string]int {
	m := make(map[string]int, len(catalog))
	for _, k := range Keys() {
		m[string(k)] = l.Get(k)
	}
	return m
}

// Validate returns an error for the first level that is negative or above
// its catalog maximum.
func (l Levels) Validate() error {
	for _, k := range Keys() {
		level := l.Get(k)
		if level < 0 {
			return fmt.Errorf("upgrades: %s level %d is negative", k, level)
		}
		if limit := catalog[k].MaxLevel; level > limit {
			return fmt.Errorf("upgrades: %s level %d exceeds max %d", k, level, limit)
		}
	}
	return nil
}

// Clamp returns a copy with every level forced into [0, max].
func (l Levels) Clamp() Levels {
	out := l
	for _, k := range Keys() {
		level := out.Get(k)
		if level < 0 {
			level = 0
		}
		if limit := catalog[k].MaxLevel; level > limit {
			level = limit
		}
		out.Set(k, level)
	}
	return out
}

// Owned returns the keys with a level above zero, in shop order.
func (l Levels) Owned() []Key {
	var owned []Key
	for _, k := range Keys() {
		if l.Get(k) > 0 {
			owned = append(owned, k)
		}
	}
	return owned
}

// ScoreMultiplierFactor maps the score_multiplier tier to its factor.
func (l Levels) ScoreMultiplierFactor() int {
	switch l.ScoreMultiplier {
	case 1:
		return 10
	case 2:
		return 100
	case 3:
		return 1000
	default:
		return 1
	}
}

// CoinsPerObstacle returns the coin reward for passing one obstacle.
func (l Levels) CoinsPerObstacle() int {
	return 1 + l.CoinMultiplier
}

// MaxHealth returns the run's starting and maximum health.
func (l Levels) MaxHealth() int {
	return 1 + l.BonusHealth
}
