package oracle

import "github.com/fadedpez/aetheria/pkg/entities"

// Costs per content kind
const (
	TarotCost  int64 = 20
	DreamCost  int64 = 15
	AstralCost int64 = 25
)

// Cost returns the price of kind
func Cost(kind entities.Kind) int64 {
	switch kind {
	case entities.KindTarot:
		return TarotCost
	case entities.KindDream:
		return DreamCost
	case entities.KindAstral:
		return AstralCost
	}
	return 0
}

// State is a step of an action's lifecycle
type State int

const (
	StateIdle State = iota
	StateSpending
	StateRequesting
	StateCompleted
	StateRefunding
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpending:
		return "spending"
	case StateRequesting:
		return "requesting"
	case StateCompleted:
		return "completed"
	case StateRefunding:
		return "refunding"
	}
	return "unknown"
}

// InFlight reports whether a new submission of the same kind must wait
func (s State) InFlight() bool {
	return s == StateSpending || s == StateRequesting || s == StateRefunding
}

// PendingAction is the ephemeral record of one submission
type PendingAction struct {
	Kind   entities.Kind
	Cost   int64
	Input  string
	Status State
}
