package shop

import (
	"errors"
	"testing"

	"github.com/vovakirdan/dino-dash/internal/storage"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

// memStore is an in-memory Store.
type memStore struct {
	profile storage.Profile
	levels  upgrades.Levels
	failErr error
}

func (m *memStore) Profile() (storage.Profile, error) {
	return m.profile, m.failErr
}

func (m *memStore) UpgradeLevels() (upgrades.Levels, error) {
	return m.levels, m.failErr
}

func (m *memStore) BuyUpgrade(key upgrades.Key, fromLevel, cost int) (int, error) {
	if m.profile.Coins < cost {
		return 0, storage.ErrInsufficientCoins
	}
	if m.levels.Get(key) != fromLevel {
		return 0, storage.ErrStaleLevel
	}
	m.profile.Coins -= cost
	m.levels.Set(key, fromLevel+1)
	return m.profile.Coins, nil
}

func TestBuy(t *testing.T) {
	store := &memStore{profile: storage.Profile{Coins: 100, HighScore: 150}}
	s := New(store, nil)

	r, err := s.Buy(upgrades.CoinMultiplier)
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if r.Level != 1 || r.Cost != 25 || r.CoinsLeft != 75 {
		t.Errorf("receipt = %+v", r)
	}

	// Second level costs base + base/2
	r, err = s.Buy(upgrades.CoinMultiplier)
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if r.Cost != 37 || store.levels.CoinMultiplier != 2 {
		t.Errorf("second purchase = %+v, level %d", r, store.levels.CoinMultiplier)
	}
}

func TestBuyRules(t *testing.T) {
	tests := []struct {
		name    string
		store   *memStore
		key     upgrades.Key
		wantErr error
	}{
		{
			name:    "unknown",
			store:   &memStore{},
			key:     "teleport",
			wantErr: ErrUnknownUpgrade,
		},
		{
			name:    "locked",
			store:   &memStore{profile: storage.Profile{Coins: 1000, HighScore: 499}},
			key:     upgrades.Shield,
			wantErr: ErrLocked,
		},
		{
			name:    "maxed",
			store:   &memStore{profile: storage.Profile{Coins: 1000, HighScore: 1000}, levels: upgrades.Levels{Shield: 1}},
			key:     upgrades.Shield,
			wantErr: ErrMaxed,
		},
		{
			name:    "needs parent",
			store:   &memStore{profile: storage.Profile{Coins: 1000, HighScore: 5000}},
			key:     upgrades.DashDistance,
			wantErr: ErrRequires,
		},
		{
			name:    "not enough coins",
			store:   &memStore{profile: storage.Profile{Coins: 9}},
			key:     upgrades.JumpBoost,
			wantErr: ErrNotEnoughCoins,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := *tc.store
			_, err := New(tc.store, nil).Buy(tc.key)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Buy() error = %v, expected %v", err, tc.wantErr)
			}
			if tc.store.profile != before.profile || tc.store.levels != before.levels {
				t.Error("failed purchase should not change the store")
			}
		})
	}
}

func TestBuyStoreRace(t *testing.T) {
	// The store reports a shortfall the shop did not see
	store := &raceStore{memStore{profile: storage.Profile{Coins: 50}}}
	_, err := New(store, nil).Buy(upgrades.JumpBoost)
	if !errors.Is(err, ErrNotEnoughCoins) {
		t.Errorf("expected ErrNotEnoughCoins, got %v", err)
	}
}

type raceStore struct{ memStore }

func (r *raceStore) BuyUpgrade(upgrades.Key, int, int) (int, error) {
	return 0, storage.ErrInsufficientCoins
}

func TestBuyStoreError(t *testing.T) {
	store := &memStore{failErr: errors.New("disk gone")}
	if _, err := New(store, nil).Buy(upgrades.JumpBoost); err == nil {
		t.Error("store failure should surface")
	}
}

func TestOffers(t *testing.T) {
	store := &memStore{
		profile: storage.Profile{Coins: 60, HighScore: 3000},
		levels:  upgrades.Levels{JumpBoost: 5, AirDash: 1},
	}

	offers, profile, err := New(store, nil).Offers()
	if err != nil {
		t.Fatalf("Offers() failed: %v", err)
	}
	if profile.Coins != 60 {
		t.Errorf("profile coins = %d", profile.Coins)
	}
	if len(offers) != len(upgrades.Keys()) {
		t.Fatalf("got %d offers, expected %d", len(offers), len(upgrades.Keys()))
	}

	expected := map[upgrades.Key]Status{
		upgrades.JumpBoost:      StatusMaxed,
		upgrades.CoinMultiplier: StatusAvailable,
		upgrades.SlowMotion:     StatusTooExpensive,
		upgrades.ShieldUpgrade:  StatusNeedsParent,
		upgrades.AirJump:        StatusTooExpensive,
		upgrades.DashDistance:   StatusLocked,
	}
	for _, o := range offers {
		want, ok := expected[o.Item.Key]
		if !ok {
			continue
		}
		if o.Status != want {
			t.Errorf("%s status = %s, expected %s", o.Item.Key, o.Status, want)
		}
	}
}
