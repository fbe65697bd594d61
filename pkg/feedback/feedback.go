// Package feedback delivers fire-and-forget sound and haptic cues.
// Cue delivery must never influence the economy, so every call is
// isolated from panics in the underlying player.
package feedback

import (
	"time"
)

// Sound is a synthesized audio cue
type Sound string

const (
	SoundSpend         Sound = "spend"
	SoundCompletion    Sound = "completion"
	SoundPurchase      Sound = "purchase"
	SoundAmbienceStart Sound = "ambience-start"
	SoundAmbienceStop  Sound = "ambience-stop"
)

// Haptic is a vibration pulse
type Haptic string

const (
	HapticLight   Haptic = "light"
	HapticMedium  Haptic = "medium"
	HapticHeavy   Haptic = "heavy"
	HapticSuccess Haptic = "success"
	HapticError   Haptic = "error"
)

// Pattern returns the alternating on/off vibration durations for h
func Pattern(h Haptic) []time.Duration {
	ms := time.Millisecond
	switch h {
	case HapticLight:
		return []time.Duration{10 * ms}
	case HapticMedium:
		return []time.Duration{30 * ms}
	case HapticHeavy:
		return []time.Duration{60 * ms}
	case HapticSuccess:
		return []time.Duration{10 * ms, 50 * ms, 20 * ms}
	case HapticError:
		return []time.Duration{50 * ms, 30 * ms, 50 * ms, 30 * ms}
	}
	return nil
}

// Player plays cues
type Player interface {
	PlaySound(s Sound)
	Pulse(h Haptic)
}

// Settings exposes the user's feedback toggles
type Settings interface {
	Toggles() (sound, haptic bool)
}

// Noop ignores every cue
type Noop struct{}

func (Noop) PlaySound(Sound) {}
func (Noop) Pulse(Haptic)    {}

// Gated forwards cues only when the matching toggle is on
type Gated struct {
	player   Player
	settings Settings
}

// NewGated wraps player so cues respect settings
func NewGated(player Player, settings Settings) *Gated {
	if player == nil {
		player = Noop{}
	}
	return &Gated{player: player, settings: settings}
}

// PlaySound plays s if sound is enabled
func (g *Gated) PlaySound(s Sound) {
	defer func() { recover() }()
	if sound, _ := g.toggles(); sound {
		g.player.PlaySound(s)
	}
}

// Pulse triggers h if haptics are enabled
func (g *Gated) Pulse(h Haptic) {
	defer func() { recover() }()
	if _, haptic := g.toggles(); haptic {
		g.player.Pulse(h)
	}
}

func (g *Gated) toggles() (bool, bool) {
	if g.settings == nil {
		return true, true
	}
	return g.settings.Toggles()
}
