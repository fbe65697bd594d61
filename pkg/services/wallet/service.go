package wallet

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/fadedpez/aetheria/internal/logging"
	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/storage"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrBalanceOverflow   = errors.New("balance would exceed the maximum")
)

// DefaultDailyBonus is granted once per calendar day
const DefaultDailyBonus int64 = 10

// BonusResult describes a daily bonus evaluation
type BonusResult struct {
	Eligible bool
	Amount   int64
	Streak   int64
	Balance  int64
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithDailyBonus sets the daily bonus amount
func WithDailyBonus(amount int64) Option {
	return func(s *Service) {
		if amount > 0 {
			s.dailyBonus = amount
		}
	}
}

// Service is the single owner of the wallet state. Every mutation happens
// under mu and is followed by a snapshot write before the lock is released.
type Service struct {
	mu         sync.Mutex
	store      storage.Store
	state      *entities.WalletState
	logger     *logging.Logger
	dailyBonus int64
	persistErr error
}

// NewService hydrates the wallet from store, falling back to defaults when
// the slot is empty, corrupt, or unreadable
func NewService(ctx context.Context, store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:      store,
		logger:     logging.Discard(),
		dailyBonus: DefaultDailyBonus,
	}
	for _, opt := range opts {
		opt(s)
	}

	state, err := store.Load(ctx)
	switch {
	case err == nil:
		s.state = state
		s.logger.Debug("[WALLET] Hydrated wallet: credits=%d streak=%d history=%d", state.Credits, state.Streak, len(state.History))
	case errors.Is(err, storage.ErrNotFound):
		s.state = entities.NewWalletState()
		s.logger.Info("[WALLET] No saved wallet, starting with %d credits", s.state.Credits)
	default:
		s.state = entities.NewWalletState()
		s.logger.Warn("[WALLET] Could not load wallet, using defaults: %v", err)
	}

	if s.state.Credits < 0 {
		s.logger.Warn("[WALLET] Stored balance %d was negative, clamping to zero", s.state.Credits)
		s.state.Credits = 0
	}
	if s.state.Streak < entities.DefaultStreak {
		s.state.Streak = entities.DefaultStreak
	}

	return s
}

// Snapshot returns a copy of the current state
func (s *Service) Snapshot() *entities.WalletState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Balance returns the spendable credits
func (s *Service) Balance() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Credits
}

// CanAfford reports whether cost can be debited right now
func (s *Service) CanAfford(cost int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cost > 0 && s.state.Credits >= cost
}

// Debit removes cost credits. It either fully succeeds or changes nothing.
func (s *Service) Debit(ctx context.Context, cost int64) (int64, error) {
	if cost <= 0 {
		return 0, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Credits < cost {
		s.logger.Info("[WALLET] Debit of %d refused, balance is %d", cost, s.state.Credits)
		return s.state.Credits, ErrInsufficientFunds
	}

	s.state.Credits -= cost
	s.logger.Debug("[WALLET] Debited %d, balance now %d", cost, s.state.Credits)
	s.persistLocked(ctx)

	return s.state.Credits, nil
}

// Credit adds amount credits; used for refunds, purchases and bonuses
func (s *Service) Credit(ctx context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fitsLocked(amount) {
		s.logger.Warn("[WALLET] Credit of %d refused, balance is %d", amount, s.state.Credits)
		return s.state.Credits, ErrBalanceOverflow
	}

	s.state.Credits += amount
	s.logger.Debug("[WALLET] Credited %d, balance now %d", amount, s.state.Credits)
	s.persistLocked(ctx)

	return s.state.Credits, nil
}

// CheckDailyBonus reports eligibility at now without claiming
func (s *Service) CheckDailyBonus(now time.Time) BonusResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return BonusResult{
		Eligible: s.bonusEligibleLocked(now),
		Amount:   s.dailyBonus,
		Streak:   s.state.Streak,
		Balance:  s.state.Credits,
	}
}

// EvaluateDailyBonus claims the daily bonus if the last claim fell on a
// different calendar day than now (in now's location). A claim bumps the
// streak by one; a skipped day does not reset it.
func (s *Service) EvaluateDailyBonus(ctx context.Context, now time.Time) (BonusResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.bonusEligibleLocked(now) {
		return BonusResult{Amount: s.dailyBonus, Streak: s.state.Streak, Balance: s.state.Credits}, nil
	}

	if !s.fitsLocked(s.dailyBonus) {
		s.logger.Warn("[WALLET] Daily bonus of %d refused, balance is %d", s.dailyBonus, s.state.Credits)
		return BonusResult{Amount: s.dailyBonus, Streak: s.state.Streak, Balance: s.state.Credits}, ErrBalanceOverflow
	}

	claimedAt := now
	s.state.Credits += s.dailyBonus
	s.state.Streak++
	s.state.LastBonusAt = &claimedAt
	s.logger.Info("[WALLET] Daily bonus of %d granted, streak %d", s.dailyBonus, s.state.Streak)
	s.persistLocked(ctx)

	return BonusResult{
		Eligible: true,
		Amount:   s.dailyBonus,
		Streak:   s.state.Streak,
		Balance:  s.state.Credits,
	}, nil
}

// fitsLocked reports whether amount can be added without overflowing the balance
func (s *Service) fitsLocked(amount int64) bool {
	return amount <= math.MaxInt64-s.state.Credits
}

func (s *Service) bonusEligibleLocked(now time.Time) bool {
	if s.state.LastBonusAt == nil {
		return true
	}
	return !sameCalendarDay(*s.state.LastBonusAt, now)
}

func sameCalendarDay(a, b time.Time) bool {
	y1, m1, d1 := a.In(b.Location()).Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AppendHistory adds entry to the end of the history
func (s *Service) AppendHistory(ctx context.Context, entry entities.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.History = append(s.state.History, entry)
	s.persistLocked(ctx)
	return nil
}

// History returns a copy of all entries in insertion order
func (s *Service) History() []entities.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.HistoryEntry, len(s.state.History))
	copy(out, s.state.History)
	return out
}

// Toggles returns the sound and haptic settings
func (s *Service) Toggles() (sound, haptic bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SoundEnabled, s.state.HapticEnabled
}

// SetSoundEnabled toggles sound cues
func (s *Service) SetSoundEnabled(ctx context.Context, enabled bool) {
	s.update(ctx, func(w *entities.WalletState) { w.SoundEnabled = enabled })
}

// SetHapticEnabled toggles haptic cues
func (s *Service) SetHapticEnabled(ctx context.Context, enabled bool) {
	s.update(ctx, func(w *entities.WalletState) { w.HapticEnabled = enabled })
}

// MarkTutorialSeen records that the onboarding was shown
func (s *Service) MarkTutorialSeen(ctx context.Context) {
	s.update(ctx, func(w *entities.WalletState) { w.HasSeenTutorial = true })
}

// Reset restores every field to its default and drops the history
func (s *Service) Reset(ctx context.Context) {
	s.update(ctx, func(w *entities.WalletState) { *w = *entities.NewWalletState() })
	s.logger.Info("[WALLET] Wallet reset to defaults")
}

func (s *Service) update(ctx context.Context, fn func(*entities.WalletState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.state)
	s.persistLocked(ctx)
}

// PersistenceError returns the last snapshot write failure, or nil once a write succeeds again
func (s *Service) PersistenceError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistErr
}

// persistLocked writes the snapshot. A failed write leaves the in-memory
// state authoritative for the session. Callers hold mu.
func (s *Service) persistLocked(ctx context.Context) {
	err := s.store.Save(context.WithoutCancel(ctx), s.state.Clone())
	if err != nil {
		if s.persistErr == nil {
			s.logger.Warn("[WALLET] Persistence unavailable, continuing in memory: %v", err)
		}
		s.persistErr = err
		return
	}
	if s.persistErr != nil {
		s.logger.Info("[WALLET] Persistence restored")
	}
	s.persistErr = nil
}
