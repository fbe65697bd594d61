package entities

import (
	"time"
)

// Defaults applied to a fresh or reset wallet
const (
	DefaultCredits int64 = 50
	DefaultStreak  int64 = 1
)

// Kind identifies a paid content flow
type Kind string

const (
	KindTarot  Kind = "tarot"
	KindDream  Kind = "dream"
	KindAstral Kind = "astral"
)

// Kinds lists every content kind in display order
var Kinds = []Kind{KindTarot, KindDream, KindAstral}

// Valid reports whether k is a known content kind
func (k Kind) Valid() bool {
	switch k {
	case KindTarot, KindDream, KindAstral:
		return true
	}
	return false
}

// WalletState is the persisted root object for one installation
type WalletState struct {
	Credits         int64          `json:"credits"`
	Streak          int64          `json:"streak"`
	LastBonusAt     *time.Time     `json:"lastDailyBonus,omitempty"`
	SoundEnabled    bool           `json:"soundEnabled"`
	HapticEnabled   bool           `json:"hapticEnabled"`
	HasSeenTutorial bool           `json:"hasSeenTutorial"`
	History         []HistoryEntry `json:"history"`
}

// NewWalletState returns a wallet populated with the documented defaults
func NewWalletState() *WalletState {
	return &WalletState{
		Credits:       DefaultCredits,
		Streak:        DefaultStreak,
		SoundEnabled:  true,
		HapticEnabled: true,
		History:       []HistoryEntry{},
	}
}

// Clone returns a deep copy so callers never share the ledger's backing arrays
func (w *WalletState) Clone() *WalletState {
	c := *w
	if w.LastBonusAt != nil {
		t := *w.LastBonusAt
		c.LastBonusAt = &t
	}
	c.History = make([]HistoryEntry, len(w.History))
	copy(c.History, w.History)
	return &c
}

// HistoryEntry records one completed, paid generation. Entries are never mutated.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"date"`
	Kind      Kind      `json:"type"`
	Summary   string    `json:"summary"`
}
