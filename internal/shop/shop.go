// Package shop sells upgrades for coins earned in runs.
package shop

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-dash/internal/storage"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

// Purchase errors.
var (
	ErrUnknownUpgrade = errors.New("shop: unknown upgrade")
	ErrLocked         = errors.New("shop: upgrade is locked")
	ErrMaxed          = errors.New("shop: upgrade is at max level")
	ErrRequires       = errors.New("shop: upgrade requires another upgrade")
	ErrNotEnoughCoins = errors.New("shop: not enough coins")
)

// Store is the persistence the shop needs. *storage.Store satisfies it.
type Store interface {
	Profile() (storage.Profile, error)
	UpgradeLevels() (upgrades.Levels, error)
	BuyUpgrade(key upgrades.Key, fromLevel, cost int) (int, error)
}

// Status describes whether an offer can be bought right now.
type Status int

const (
	StatusAvailable Status = iota
	StatusTooExpensive
	StatusLocked
	StatusNeedsParent
	StatusMaxed
)

// String returns a short label for the status.
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "buy"
	case StatusTooExpensive:
		return "need coins"
	case StatusLocked:
		return "locked"
	case StatusNeedsParent:
		return "needs parent"
	case StatusMaxed:
		return "max"
	default:
		return "unknown"
	}
}

// Offer is one catalog item as seen by the current profile.
type Offer struct {
	Item   upgrades.Item
	Level  int
	Cost   int // Price of the next level, 0 when maxed
	Status Status
}

// Receipt describes a completed purchase.
type Receipt struct {
	Key       upgrades.Key
	Level     int // Level after the purchase
	Cost      int
	CoinsLeft int
}

// Shop applies the purchase rules on top of a Store.
type Shop struct {
	store  Store
	logger *log.Logger
}

// New creates a shop. A nil logger discards log output.
func New(store Store, logger *log.Logger) *Shop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shop{store: store, logger: logger}
}

// Offers lists every catalog item in shop order.
func (s *Shop) Offers() ([]Offer, storage.Profile, error) {
	profile, levels, err := s.load()
	if err != nil {
		return nil, storage.Profile{}, err
	}

	items := upgrades.Catalog()
	offers := make([]Offer, 0, len(items))
	for _, it := range items {
		offers = append(offers, offer(it, profile, levels))
	}
	return offers, profile, nil
}

func offer(it upgrades.Item, profile storage.Profile, levels upgrades.Levels) Offer {
	level := levels.Get(it.Key)
	o := Offer{Item: it, Level: level, Cost: it.Cost(level)}

	switch {
	case it.Maxed(level):
		o.Status = StatusMaxed
		o.Cost = 0
	case !it.Unlocked(profile.HighScore):
		o.Status = StatusLocked
	case it.Requires != "" && levels.Get(it.Requires) == 0:
		o.Status = StatusNeedsParent
	case profile.Coins < o.Cost:
		o.Status = StatusTooExpensive
	default:
		o.Status = StatusAvailable
	}
	return o
}

// Buy purchases the next level of key.
func (s *Shop) Buy(key upgrades.Key) (Receipt, error) {
	it, ok := upgrades.Lookup(key)
	if !ok {
		return Receipt{}, fmt.Errorf("%w: %q", ErrUnknownUpgrade, key)
	}

	profile, levels, err := s.load()
	if err != nil {
		return Receipt{}, err
	}

	o := offer(it, profile, levels)
	switch o.Status {
	case StatusMaxed:
		return Receipt{}, fmt.Errorf("%w: %s level %d", ErrMaxed, key, o.Level)
	case StatusLocked:
		return Receipt{}, fmt.Errorf("%w: %s unlocks at high score %d", ErrLocked, key, it.UnlockScore)
	case StatusNeedsParent:
		return Receipt{}, fmt.Errorf("%w: %s needs %s", ErrRequires, key, it.Requires)
	case StatusTooExpensive:
		return Receipt{}, fmt.Errorf("%w: %s costs %d, have %d", ErrNotEnoughCoins, key, o.Cost, profile.Coins)
	}

	left, err := s.store.BuyUpgrade(key, o.Level, o.Cost)
	if errors.Is(err, storage.ErrInsufficientCoins) {
		return Receipt{}, fmt.Errorf("%w: %s costs %d", ErrNotEnoughCoins, key, o.Cost)
	}
	if err != nil {
		return Receipt{}, fmt.Errorf("shop: cannot buy %s: %w", key, err)
	}

	r := Receipt{Key: key, Level: o.Level + 1, Cost: o.Cost, CoinsLeft: left}
	s.logger.Info("upgrade bought", "key", key, "level", r.Level, "cost", r.Cost, "coins", r.CoinsLeft)
	return r, nil
}

func (s *Shop) load() (storage.Profile, upgrades.Levels, error) {
	profile, err := s.store.Profile()
	if err != nil {
		return storage.Profile{}, upgrades.Levels{}, fmt.Errorf("shop: %w", err)
	}
	levels, err := s.store.UpgradeLevels()
	if err != nil {
		return storage.Profile{}, upgrades.Levels{}, fmt.Errorf("shop: %w", err)
	}
	return profile, levels, nil
}
