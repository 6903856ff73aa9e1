package upgrades

// Item describes one shop entry.
type Item struct {
	Key         Key
	Name        string
	Description string
	BaseCost    int
	UnlockScore int // High score needed before the item can be bought
	MaxLevel    int
	Requires    Key // Upgrade that must be owned first, empty if none
}

// Cost returns the price of buying the next level when currently at level.
func (it Item) Cost(level int) int {
	return it.BaseCost + level*it.BaseCost/2
}

// Unlocked reports whether a profile with the given high score may buy it.
func (it Item) Unlocked(highScore int) bool {
	return highScore >= it.UnlockScore
}

// Maxed reports whether level is already at the cap.
func (it Item) Maxed(level int) bool {
	return level >= it.MaxLevel
}

var catalog = map[Key]Item{
	JumpBoost:        {Key: JumpBoost, Name: "Jump Boost", Description: "Higher jumps", BaseCost: 10, UnlockScore: 0, MaxLevel: 5},
	CoinMultiplier:   {Key: CoinMultiplier, Name: "Coin Multiplier", Description: "More coins per cactus", BaseCost: 25, UnlockScore: 100, MaxLevel: 3},
	SpeedBoost:       {Key: SpeedBoost, Name: "Speed Boost", Description: "Faster run, bigger thrill", BaseCost: 20, UnlockScore: 200, MaxLevel: 3},
	Shield:           {Key: Shield, Name: "Shield", Description: "Raise a shield that blocks hits", BaseCost: 50, UnlockScore: 500, MaxLevel: 1},
	SlowMotion:       {Key: SlowMotion, Name: "Slow Motion", Description: "Slower obstacles", BaseCost: 75, UnlockScore: 750, MaxLevel: 4},
	ShieldUpgrade:    {Key: ShieldUpgrade, Name: "Shield Upgrade", Description: "Longer shield, shorter cooldown", BaseCost: 60, UnlockScore: 1000, MaxLevel: 2, Requires: Shield},
	SlowAcceleration: {Key: SlowAcceleration, Name: "Slow Acceleration", Description: "Speed ramps up slower", BaseCost: 40, UnlockScore: 1500, MaxLevel: 4},
	AirJump:          {Key: AirJump, Name: "Air Jump", Description: "Jump once more mid-air", BaseCost: 100, UnlockScore: 2000, MaxLevel: 1},
	AirDash:          {Key: AirDash, Name: "Air Dash", Description: "Dash forward mid-air, through cacti", BaseCost: 120, UnlockScore: 3000, MaxLevel: 1},
	DashDistance:     {Key: DashDistance, Name: "Dash Distance", Description: "Longer dashes", BaseCost: 50, UnlockScore: 4000, MaxLevel: 3, Requires: AirDash},
	DodgeChance:      {Key: DodgeChance, Name: "Dodge Chance", Description: "5% per level to shrug off a hit", BaseCost: 30, UnlockScore: 5000, MaxLevel: 5},
	BonusHealth:      {Key: BonusHealth, Name: "Bonus Health", Description: "One extra hit per level", BaseCost: 150, UnlockScore: 7500, MaxLevel: 3},
	ScoreMultiplier:  {Key: ScoreMultiplier, Name: "Score Multiplier", Description: "x10 score per tier", BaseCost: 200, UnlockScore: 10000, MaxLevel: 3},
}

// Lookup returns the catalog item for k.
func Lookup(k Key) (Item, bool) {
	it, ok := catalog[k]
	return it, ok
}

// Catalog returns every item in shop order.
func Catalog() []Item {
	items := make([]Item, 0, len(catalog))
	for _, k := range Keys() {
		items = append(items, catalog[k])
	}
	return items
}
