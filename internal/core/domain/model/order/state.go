package order

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"waiter/internal/pkg/errs"
)

// ErrStateIsNotConstructed is returned when validating a zero-value State.
var ErrStateIsNotConstructed = errors.New("State must be one of the predefined order states")

// State is a lifecycle state of an order. Every state carries an explicit rank and
// states compare by rank only. The zero value is not a valid state.
type State struct {
	code string
	rank int
}

var (
	Init      = State{code: "INIT", rank: 0}
	Paid      = State{code: "PAID", rank: 1}
	Brewing   = State{code: "BREWING", rank: 2}
	Brewed    = State{code: "BREWED", rank: 3}
	Taken     = State{code: "TAKEN", rank: 4}
	Cancelled = State{code: "CANCELLED", rank: 5}
)

// States returns all states in rank order.
func States() []State {
	return []State{Init, Paid, Brewing, Brewed, Taken, Cancelled}
}

// StateFromCode resolves a state by its name, e.g. "PAID" or "paid".
func StateFromCode(code string) (State, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, s := range States() {
		if s.code == normalized {
			return s, nil
		}
	}
	return State{}, errs.NewValueIsInvalidErrorWithCause(
		"state", fmt.Errorf("%q is not a valid order state", code))
}

// StateFromRank resolves a state by its persisted rank.
func StateFromRank(rank int) (State, error) {
	for _, s := range States() {
		if s.rank == rank {
			return s, nil
		}
	}
	return State{}, errs.NewValueIsOutOfRangeError("state rank", rank, Init.rank, Cancelled.rank)
}

func (s State) Validate() error {
	if s.code == "" {
		return ErrStateIsNotConstructed
	}
	return nil
}

func (s State) Code() string {
	return s.code
}

func (s State) Rank() int {
	return s.rank
}

func (s State) String() string {
	if s.code == "" {
		return "UNKNOWN"
	}
	return s.code
}

func (s State) IsEqual(other State) bool {
	return s.code == other.code
}

// Compare orders states by rank.
func (s State) Compare(other State) int {
	return cmp.Compare(s.rank, other.rank)
}

// IsAfter reports whether s ranks strictly higher than other.
func (s State) IsAfter(other State) bool {
	return s.Compare(other) > 0
}
