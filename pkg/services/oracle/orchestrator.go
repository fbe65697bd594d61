package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fadedpez/aetheria/internal/logging"
	"github.com/fadedpez/aetheria/internal/types"
	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/feedback"
	"github.com/fadedpez/aetheria/pkg/generator"
	"github.com/fadedpez/aetheria/pkg/services/wallet"
)

var (
	ErrEmptyInput = errors.New("input text is empty")
	ErrBusy       = errors.New("a request of this kind is already in flight")
)

// Messages shown when a generation is refunded
var failureMessages = map[entities.Kind]string{
	entities.KindTarot:  "The spirits are silent. Please try again.",
	entities.KindDream:  "Could not decipher the dream realm.",
	entities.KindAstral: "The astral cord is unreachable.",
}

const summaryLimit = 140

// Ledger is the part of the wallet the orchestrator spends against
type Ledger interface {
	Debit(ctx context.Context, cost int64) (int64, error)
	Credit(ctx context.Context, amount int64) (int64, error)
}

// Recorder stores completed actions
type Recorder interface {
	Record(ctx context.Context, kind entities.Kind, summary string) (entities.HistoryEntry, error)
	FindByKeyword(kind entities.Kind, substring string) []entities.HistoryEntry
}

// Outcome describes a completed, paid action
type Outcome struct {
	Kind    entities.Kind
	Cost    int64
	Balance int64
	Entry   entities.HistoryEntry
}

// Orchestrator runs spend, generate, then commit or refund for each content kind
type Orchestrator struct {
	ledger    Ledger
	generator generator.Generator
	recorder  Recorder
	feedback  feedback.Player
	logger    *logging.Logger

	mu      sync.Mutex
	pending map[entities.Kind]*PendingAction
}

// NewOrchestrator wires an orchestrator; feedback and logger may be nil
func NewOrchestrator(ledger Ledger, gen generator.Generator, recorder Recorder, player feedback.Player, logger *logging.Logger) *Orchestrator {
	if player == nil {
		player = feedback.Noop{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Orchestrator{
		ledger:    ledger,
		generator: gen,
		recorder:  recorder,
		feedback:  player,
		logger:    logger,
		pending:   make(map[entities.Kind]*PendingAction),
	}
}

// State returns the current lifecycle step of kind
func (o *Orchestrator) State(kind entities.Kind) State {
	o.mu.Lock()
	defer o.mu.Unlock()

	if p, ok := o.pending[kind]; ok {
		return p.Status
	}
	return StateIdle
}

// Pending returns a copy of the in-flight action for kind, if any
func (o *Orchestrator) Pending(kind entities.Kind) (PendingAction, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, ok := o.pending[kind]
	if !ok || !p.Status.InFlight() {
		return PendingAction{}, false
	}
	return *p, true
}

func (o *Orchestrator) begin(kind entities.Kind, input string) (*PendingAction, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if p, ok := o.pending[kind]; ok && p.Status.InFlight() {
		return nil, ErrBusy
	}

	p := &PendingAction{Kind: kind, Cost: Cost(kind), Input: input, Status: StateSpending}
	o.pending[kind] = p
	return p, nil
}

func (o *Orchestrator) transition(p *PendingAction, next State) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.logger.Debug("[ORACLE] %s: %s -> %s", p.Kind, p.Status, next)
	p.Status = next
	if next == StateIdle || next == StateCompleted {
		delete(o.pending, p.Kind)
	}
}

// execute drives one action through the state machine. call must return a
// result that passes validate, otherwise the debit is refunded in full.
func execute[T any](
	o *Orchestrator,
	ctx context.Context,
	kind entities.Kind,
	rawInput string,
	call func(context.Context, string) (T, error),
	validate func(T) error,
	summarize func(input string, result T) string,
) (T, Outcome, error) {
	var zero T

	input := strings.TrimSpace(rawInput)
	if input == "" {
		return zero, Outcome{}, types.WrapError(types.ErrInvalidArgument, "Please share what is on your mind first.", ErrEmptyInput)
	}

	p, err := o.begin(kind, input)
	if err != nil {
		return zero, Outcome{}, types.WrapError(types.ErrActionInProgress, "The oracle is still answering your last question.", err)
	}

	// Spending
	balance, err := o.ledger.Debit(ctx, p.Cost)
	if err != nil {
		o.transition(p, StateIdle)
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			o.feedback.Pulse(feedback.HapticError)
			return zero, Outcome{Kind: kind, Cost: p.Cost, Balance: balance},
				types.WrapError(types.ErrInsufficientFunds, fmt.Sprintf("You need %d credits for this, you have %d.", p.Cost, balance), err)
		}
		return zero, Outcome{}, types.WrapError(types.ErrInternalError, "Could not spend credits.", err)
	}
	o.feedback.PlaySound(feedback.SoundSpend)
	o.feedback.Pulse(feedback.HapticHeavy)
	o.logger.Info("[ORACLE] %s: debited %d, balance %d", kind, p.Cost, balance)

	// Requesting
	o.transition(p, StateRequesting)
	result, err := call(ctx, input)
	if err == nil {
		err = validate(result)
	}

	// The ledger mutation must land even if the caller walked away
	settleCtx := context.WithoutCancel(ctx)

	if err != nil {
		o.transition(p, StateRefunding)
		refunded, creditErr := o.ledger.Credit(settleCtx, p.Cost)
		if creditErr != nil {
			o.logger.Error("[ORACLE] %s: refund of %d failed: %v", kind, p.Cost, creditErr)
		} else {
			o.logger.Info("[ORACLE] %s: generation failed, refunded %d, balance %d: %v", kind, p.Cost, refunded, err)
		}
		o.transition(p, StateIdle)
		o.feedback.Pulse(feedback.HapticError)
		return zero, Outcome{Kind: kind, Cost: p.Cost, Balance: refunded},
			types.WrapError(types.ErrGenerationFailed, failureMessages[kind], err)
	}

	entry, err := o.recorder.Record(settleCtx, kind, truncate(summarize(input, result), summaryLimit))
	if err != nil {
		o.logger.Warn("[ORACLE] %s: could not record history: %v", kind, err)
	}
	o.transition(p, StateCompleted)
	o.feedback.PlaySound(feedback.SoundCompletion)
	o.feedback.Pulse(feedback.HapticSuccess)

	return result, Outcome{Kind: kind, Cost: p.Cost, Balance: balance, Entry: entry}, nil
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
