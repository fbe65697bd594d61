// Package generator defines the external content generator the oracle consumes.
package generator

import (
	"context"
	"errors"

	"github.com/fadedpez/aetheria/pkg/entities"
)

// ErrEmptyResponse is returned when the provider answered without content
var ErrEmptyResponse = errors.New("empty response from generator")

//go:generate mockgen -source=$GOFILE -destination=mock/generator.go -package=mock
type Generator interface {
	// Tarot performs a three-card Past/Present/Future spread for question
	Tarot(ctx context.Context, question string) (*entities.TarotReading, error)

	// Dream interprets a dream description
	Dream(ctx context.Context, text string) (*entities.DreamReading, error)

	// Astral gives astral projection guidance for question
	Astral(ctx context.Context, question string) (*entities.AstralReading, error)

	// Illustration renders a card image from its visual cue
	Illustration(ctx context.Context, visualCue string) (*entities.Illustration, error)

	// Symbol explains a dream symbol in a sentence or two
	Symbol(ctx context.Context, word string) (string, error)
}
