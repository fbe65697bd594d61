package oracle

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fadedpez/aetheria/internal/types"
	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/generator"
)

// TarotResult is a completed reading plus its card illustrations, which keep
// arriving after the result is returned
type TarotResult struct {
	Reading       *entities.TarotReading
	Outcome       Outcome
	Illustrations *IllustrationSet
}

// Tarot spends TarotCost credits on a three-card reading. On success the
// illustration requests are already running; use Illustrations to follow them.
func (o *Orchestrator) Tarot(ctx context.Context, question string) (*TarotResult, error) {
	reading, outcome, err := execute(o, ctx, entities.KindTarot, question,
		o.generator.Tarot, validateTarot, summarizeTarot)
	if err != nil {
		return nil, err
	}

	return &TarotResult{
		Reading:       reading,
		Outcome:       outcome,
		Illustrations: startIllustrations(ctx, o.generator, reading.Cards, o.logger.Warn),
	}, nil
}

func validateTarot(r *entities.TarotReading) error {
	if r == nil {
		return generator.ErrEmptyResponse
	}
	if len(r.Cards) != entities.SpreadSize {
		return fmt.Errorf("expected %d cards, got %d", entities.SpreadSize, len(r.Cards))
	}
	for i, card := range r.Cards {
		if strings.TrimSpace(card.Name) == "" {
			return fmt.Errorf("card %d has no name", i)
		}
	}
	if strings.TrimSpace(r.Summary) == "" {
		return fmt.Errorf("reading has no summary")
	}
	return nil
}

func summarizeTarot(question string, r *entities.TarotReading) string {
	names := make([]string, 0, len(r.Cards))
	for _, card := range r.Cards {
		names = append(names, card.Name)
	}
	return fmt.Sprintf("%s: %s", question, strings.Join(names, ", "))
}

// IllustrationSlot is the outcome for one card. A nil Image with a non-nil
// Err means the card is shown with a placeholder.
type IllustrationSlot struct {
	Index int
	Card  entities.TarotCard
	Image *entities.Illustration
	Err   error
}

// Placeholder reports whether the card has no illustration
func (s IllustrationSlot) Placeholder() bool {
	return s.Image == nil
}

// IllustrationSet tracks one independent illustration request per card.
// Failures never cancel siblings and never touch the wallet.
type IllustrationSet struct {
	mu      sync.Mutex
	slots   []IllustrationSlot
	updates chan IllustrationSlot
	done    chan struct{}
}

func startIllustrations(ctx context.Context, gen generator.Generator, cards []entities.TarotCard, warn func(string, ...interface{})) *IllustrationSet {
	set := &IllustrationSet{
		slots:   make([]IllustrationSlot, len(cards)),
		updates: make(chan IllustrationSlot, len(cards)),
		done:    make(chan struct{}),
	}

	var wg sync.WaitGroup
	for i, card := range cards {
		set.slots[i] = IllustrationSlot{Index: i, Card: card}
		wg.Add(1)
		go func(i int, card entities.TarotCard) {
			defer wg.Done()

			img, err := gen.Illustration(ctx, card.VisualCue)
			if err == nil && (img == nil || len(img.Data) == 0) {
				err = generator.ErrEmptyResponse
			}
			if err != nil {
				warn("[ORACLE] illustration for card %d (%s) failed: %v", i, card.Name, err)
				err = types.WrapError(types.ErrIllustrationFailed, "No illustration available for this card.", err)
				img = nil
			}
			set.publish(i, img, err)
		}(i, card)
	}

	go func() {
		wg.Wait()
		close(set.updates)
		close(set.done)
	}()

	return set
}

func (s *IllustrationSet) publish(i int, img *entities.Illustration, err error) {
	s.mu.Lock()
	s.slots[i].Image = img
	s.slots[i].Err = err
	slot := s.slots[i]
	s.mu.Unlock()

	s.updates <- slot
}

// Updates yields each slot as its request resolves and closes when all are done
func (s *IllustrationSet) Updates() <-chan IllustrationSlot {
	return s.updates
}

// Done is closed once every request has resolved
func (s *IllustrationSet) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until every request resolves or ctx ends, then returns the slots by card index
func (s *IllustrationSet) Wait(ctx context.Context) ([]IllustrationSlot, error) {
	select {
	case <-s.done:
	case <-ctx.Done():
		return s.Slots(), ctx.Err()
	}
	return s.Slots(), nil
}

// Slots returns a snapshot of every slot
func (s *IllustrationSet) Slots() []IllustrationSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]IllustrationSlot, len(s.slots))
	copy(out, s.slots)
	return out
}
