package runner

// ShieldStage is the cosmetic wear of an active shield.
type ShieldStage int

const (
	ShieldIntact ShieldStage = iota
	ShieldCracked
	ShieldShattering
)

// Shield is a timed immunity with its own cooldown.
type Shield struct {
	Active      bool
	Duration    int // Ticks of protection left
	Cooldown    int // Ticks until it can be raised again
	MaxDuration int
	MaxCooldown int
}

// NewShield creates an idle shield.
func NewShield(maxDuration, maxCooldown int) Shield {
	return Shield{MaxDuration: maxDuration, MaxCooldown: maxCooldown}
}

// Ready reports whether the shield can be raised.
func (s Shield) Ready() bool {
	return s.Cooldown == 0
}

// Activate raises the shield. It returns false while on cooldown.
func (s *Shield) Activate() bool {
	if !s.Ready() {
		return false
	}
	s.Duration = s.MaxDuration
	s.Cooldown = s.MaxCooldown
	s.Active = s.Duration > 0
	return true
}

// Tick advances both timers by one tick.
func (s *Shield) Tick() {
	if s.Duration > 0 {
		s.Duration--
	}
	s.Active = s.Duration > 0
	if s.Cooldown > 0 {
		s.Cooldown--
	}
}

// Stage returns the wear stage from the remaining duration.
func (s Shield) Stage() ShieldStage {
	if s.MaxDuration <= 0 {
		return ShieldShattering
	}
	ratio := float64(s.Duration) / float64(s.MaxDuration)
	switch {
	case ratio > 0.66:
		return ShieldIntact
	case ratio > 0.33:
		return ShieldCracked
	default:
		return ShieldShattering
	}
}
