package feedback

import (
	"fmt"
	"io"
	"sync"

	"github.com/fadedpez/aetheria/internal/logging"
)

// Terminal renders cues on a text terminal: sounds ring the bell, haptics are logged
type Terminal struct {
	mu       sync.Mutex
	out      io.Writer
	logger   *logging.Logger
	ambience bool
}

// NewTerminal creates a terminal player writing bells to out
func NewTerminal(out io.Writer, logger *logging.Logger) *Terminal {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Terminal{out: out, logger: logger}
}

// PlaySound rings the bell for audible cues and tracks the ambience loop
func (t *Terminal) PlaySound(s Sound) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch s {
	case SoundAmbienceStart:
		t.ambience = true
	case SoundAmbienceStop:
		t.ambience = false
	case SoundCompletion, SoundPurchase:
		fmt.Fprint(t.out, "\a")
	}
	t.logger.Debug("[FEEDBACK] sound %s", s)
}

// Pulse logs the vibration pattern
func (t *Terminal) Pulse(h Haptic) {
	t.logger.Debug("[FEEDBACK] haptic %s %v", h, Pattern(h))
}

// AmbiencePlaying reports whether the ambience loop is running
func (t *Terminal) AmbiencePlaying() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ambience
}
