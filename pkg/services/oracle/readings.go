package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/feedback"
	"github.com/fadedpez/aetheria/pkg/generator"
)

// Dream spends DreamCost credits on a dream interpretation
func (o *Orchestrator) Dream(ctx context.Context, text string) (*entities.DreamReading, Outcome, error) {
	return execute(o, ctx, entities.KindDream, text, o.generator.Dream, validateDream,
		func(input string, _ *entities.DreamReading) string { return input })
}

func validateDream(r *entities.DreamReading) error {
	if r == nil || strings.TrimSpace(r.Interpretation) == "" {
		return generator.ErrEmptyResponse
	}
	if len(r.Themes) == 0 {
		return fmt.Errorf("dream reading has no themes")
	}
	if strings.TrimSpace(r.PsychologicalNote) == "" {
		return fmt.Errorf("dream reading has no psychological note")
	}
	if len(r.LuckyNumbers) != entities.LuckyNumberCount {
		return fmt.Errorf("expected %d lucky numbers, got %d", entities.LuckyNumberCount, len(r.LuckyNumbers))
	}
	return nil
}

// Astral spends AstralCost credits on projection guidance. The ambience loop
// plays while the request is outstanding.
func (o *Orchestrator) Astral(ctx context.Context, question string) (*entities.AstralReading, Outcome, error) {
	o.feedback.PlaySound(feedback.SoundAmbienceStart)
	defer o.feedback.PlaySound(feedback.SoundAmbienceStop)

	return execute(o, ctx, entities.KindAstral, question, o.generator.Astral, validateAstral,
		func(input string, r *entities.AstralReading) string {
			if r.Plane == "" {
				return input
			}
			return r.Plane + ": " + input
		})
}

func validateAstral(r *entities.AstralReading) error {
	if r == nil || strings.TrimSpace(r.Guidance) == "" {
		return generator.ErrEmptyResponse
	}
	switch {
	case strings.TrimSpace(r.Technique) == "":
		return fmt.Errorf("astral reading has no technique")
	case strings.TrimSpace(r.SafetyTip) == "":
		return fmt.Errorf("astral reading has no safety tip")
	case strings.TrimSpace(r.Plane) == "":
		return fmt.Errorf("astral reading has no plane")
	}
	return nil
}

// Symbol fallback texts
const (
	SymbolObscured    = "The mists obscure this symbol's meaning."
	SymbolUnavailable = "Meaning cannot be retrieved at this time."
)

// SymbolInsight explains a dream symbol and links it to past dreams
type SymbolInsight struct {
	Word    string
	Meaning string
	Related []entities.HistoryEntry
}

// Symbol looks up a dream symbol. It is free and never fails: lookup errors
// degrade to a fallback text.
func (o *Orchestrator) Symbol(ctx context.Context, word string) SymbolInsight {
	word = strings.TrimSpace(word)
	insight := SymbolInsight{Word: word, Related: o.recorder.FindByKeyword(entities.KindDream, word)}
	if word == "" {
		insight.Meaning = SymbolObscured
		return insight
	}

	meaning, err := o.generator.Symbol(ctx, word)
	switch {
	case err == nil && strings.TrimSpace(meaning) != "":
		insight.Meaning = strings.TrimSpace(meaning)
	case err == nil, errors.Is(err, generator.ErrEmptyResponse):
		insight.Meaning = SymbolObscured
	default:
		o.logger.Warn("[ORACLE] symbol lookup for %q failed: %v", word, err)
		insight.Meaning = SymbolUnavailable
	}
	return insight
}
