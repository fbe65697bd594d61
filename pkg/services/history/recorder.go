package history

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fadedpez/aetheria/internal/logging"
	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/google/uuid"
)

const (
	// DefaultRecent is how many entries the profile view shows
	DefaultRecent = 5
	// MaxKeywordMatches caps symbol cross-reference results
	MaxKeywordMatches = 3
)

// ErrNoMirror is returned by SyncMirror when no mirror is configured
var ErrNoMirror = errors.New("no history mirror configured")

// Ledger stores the entries; the wallet owns them
type Ledger interface {
	AppendHistory(ctx context.Context, entry entities.HistoryEntry) error
	History() []entities.HistoryEntry
}

// Mirror receives a best-effort copy of every entry
type Mirror interface {
	IndexEntry(ctx context.Context, entry entities.HistoryEntry) error
	Clear(ctx context.Context) error
}

// Recorder appends completed actions and answers read queries over them
type Recorder struct {
	ledger Ledger
	mirror Mirror
	logger *logging.Logger
	now    func() time.Time
}

// NewRecorder creates a recorder; mirror may be nil
func NewRecorder(ledger Ledger, mirror Mirror, logger *logging.Logger) *Recorder {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Recorder{
		ledger: ledger,
		mirror: mirror,
		logger: logger,
		now:    time.Now,
	}
}

// Record builds a new entry for kind and appends it
func (r *Recorder) Record(ctx context.Context, kind entities.Kind, summary string) (entities.HistoryEntry, error) {
	entry := entities.HistoryEntry{
		ID:        newID(),
		Timestamp: r.now(),
		Kind:      kind,
		Summary:   summary,
	}
	if err := r.Append(ctx, entry); err != nil {
		return entities.HistoryEntry{}, err
	}
	return entry, nil
}

// Append adds entry to the end of the history
func (r *Recorder) Append(ctx context.Context, entry entities.HistoryEntry) error {
	if err := r.ledger.AppendHistory(ctx, entry); err != nil {
		return err
	}

	if r.mirror != nil {
		if err := r.mirror.IndexEntry(ctx, entry); err != nil {
			r.logger.Warn("[HISTORY] Failed to mirror entry %s: %v", entry.ID, err)
		}
	}
	return nil
}

// Recent returns at most n entries, newest first
func (r *Recorder) Recent(n int) []entities.HistoryEntry {
	all := r.ledger.History()
	if n <= 0 {
		return []entities.HistoryEntry{}
	}
	if n > len(all) {
		n = len(all)
	}

	out := make([]entities.HistoryEntry, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		out = append(out, all[i])
	}
	return out
}

// FindByKeyword returns entries of kind whose summary contains substring,
// case-insensitively, in chronological order and capped to MaxKeywordMatches
func (r *Recorder) FindByKeyword(kind entities.Kind, substring string) []entities.HistoryEntry {
	needle := strings.ToLower(strings.TrimSpace(substring))
	out := []entities.HistoryEntry{}
	if needle == "" {
		return out
	}

	for _, entry := range r.ledger.History() {
		if entry.Kind != kind {
			continue
		}
		if strings.Contains(strings.ToLower(entry.Summary), needle) {
			out = append(out, entry)
			if len(out) == MaxKeywordMatches {
				break
			}
		}
	}
	return out
}

// ClearMirror drops mirrored entries after a wallet reset
func (r *Recorder) ClearMirror(ctx context.Context) {
	if r.mirror == nil {
		return
	}
	if err := r.mirror.Clear(ctx); err != nil {
		r.logger.Warn("[HISTORY] Failed to clear mirror: %v", err)
	}
}

// SyncMirror re-indexes every entry, for a mirror that was offline or newly
// configured. Entries keep their IDs so repeated syncs do not duplicate. It
// keeps going past individual failures and returns how many entries landed.
func (r *Recorder) SyncMirror(ctx context.Context) (int, error) {
	if r.mirror == nil {
		return 0, ErrNoMirror
	}

	var (
		synced  int
		lastErr error
	)
	for _, entry := range r.ledger.History() {
		if err := r.mirror.IndexEntry(ctx, entry); err != nil {
			r.logger.Warn("[HISTORY] Failed to sync entry %s: %v", entry.ID, err)
			lastErr = err
			continue
		}
		synced++
	}
	r.logger.Info("[HISTORY] Synced %d entries to mirror", synced)
	return synced, lastErr
}

// newID returns a time-ordered UUID so later entries sort after earlier ones
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
