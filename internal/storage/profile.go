package storage

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

// Purchase failures detected inside the transaction.
var (
	ErrInsufficientCoins = errors.New("storage: insufficient coins")
	ErrStaleLevel        = errors.New("storage: upgrade level changed")
)

// Profile is the persistent player wallet and best score.
type Profile struct {
	Coins     int
	HighScore int
}

// Profile returns the current profile.
func (s *Store) Profile() (Profile, error) {
	var p Profile
	err := s.db.QueryRow("SELECT coins, high_score FROM profile WHERE id = 1").Scan(&p.Coins, &p.HighScore)
	if err != nil {
		return Profile{}, fmt.Errorf("storage: cannot read profile: %w", err)
	}
	return p, nil
}

// AddCoins credits (or with a negative amount, debits) the wallet.
// The balance never goes below zero.
func (s *Store) AddCoins(amount int) error {
	res, err := s.db.Exec(
		"UPDATE profile SET coins = coins + ? WHERE id = 1 AND coins + ? >= 0",
		amount, amount,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot add coins: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrInsufficientCoins
	}
	return nil
}

// UpgradeLevels loads every purchased level. Stored values outside the
// catalog range are clamped so the simulation always gets valid levels.
func (s *Store) UpgradeLevels() (upgrades.Levels, error) {
	rows, err := s.db.Query("SELECT key, level FROM upgrades")
	if err != nil {
		return upgrades.Levels{}, fmt.Errorf("storage: cannot query upgrades: %w", err)
	}
	defer rows.Close()

	m := make(map[string]int)
	for rows.Next() {
		var key string
		var level int
		if err := rows.Scan(&key, &level); err != nil {
			return upgrades.Levels{}, fmt.Errorf("storage: cannot scan upgrade: %w", err)
		}
		m[key] = level
	}
	if err := rows.Err(); err != nil {
		return upgrades.Levels{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return upgrades.FromMap(m).Clamp(), nil
}

// SetUpgradeLevel writes a level directly, without charging coins.
func (s *Store) SetUpgradeLevel(key upgrades.Key, level int) error {
	if !key.Valid() {
		return fmt.Errorf("storage: unknown upgrade %q", key)
	}
	_, err := s.db.Exec(
		`INSERT INTO upgrades (key, level) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET level = excluded.level`,
		string(key), level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set upgrade %s: %w", key, err)
	}
	return nil
}

// BuyUpgrade spends cost coins and raises key from level fromLevel to
// fromLevel+1 in one transaction. It returns the remaining coins.
func (s *Store) BuyUpgrade(key upgrades.Key, fromLevel, cost int) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("UPDATE profile SET coins = coins - ? WHERE id = 1 AND coins >= ?", cost, cost)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot spend coins: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, ErrInsufficientCoins
	}

	if _, err := tx.Exec("INSERT OR IGNORE INTO upgrades (key, level) VALUES (?, 0)", string(key)); err != nil {
		return 0, fmt.Errorf("storage: cannot add upgrade %s: %w", key, err)
	}
	res, err = tx.Exec("UPDATE upgrades SET level = level + 1 WHERE key = ? AND level = ?", string(key), fromLevel)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot raise upgrade %s: %w", key, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, ErrStaleLevel
	}

	var coins int
	if err := tx.QueryRow("SELECT coins FROM profile WHERE id = 1").Scan(&coins); err != nil {
		return 0, fmt.Errorf("storage: cannot read profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit purchase: %w", err)
	}
	return coins, nil
}

// ResetProfile clears coins, high score and every upgrade. Runs are kept.
func (s *Store) ResetProfile() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"UPDATE profile SET coins = 0, high_score = 0 WHERE id = 1",
		"DELETE FROM upgrades",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("storage: cannot reset profile: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}
