package order

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"
)

// State is the tagged order lifecycle state. The wire format stays the
// legacy free-text status string, so parsing and rendering live here and
// nothing else touches the raw text.
type State string

const (
	StatePending   State = "pending"
	StateConfirmed State = "confirmed"
	StateDelivered State = "delivered"
	StateCancelled State = "cancelled"
)

// Status pairs the state with the cancellation audit fields.
type Status struct {
	State     State
	Reason    string
	ActorRank auth.Rank
}

// Legacy wire literals the SPA sends and renders.
const (
	wirePending   = "Pending"
	wireConfirmed = "order confirmed"
	wireDelivered = "order delivered"
)

var cancelPattern = regexp.MustCompile(`(?i)cancel\s*\((.*)\)\s*by\s*(master|admin|user)`)

// Substring classifiers, kept verbatim for behavioral parity with the SPA.
// They are not mutually exclusive: a cancel reason containing "deliver"
// matches both, so callers must check cancelled first. Classify below does.
func IsPending(status string) bool   { return containsFold(status, "pending") }
func IsConfirmed(status string) bool { return containsFold(status, "confirm") }
func IsDelivered(status string) bool { return containsFold(status, "deliver") }
func IsCancelled(status string) bool { return containsFold(status, "cancel") }

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// Classify resolves a raw status string into a tagged Status. Cancelled
// takes precedence over every other match.
func Classify(raw string) (Status, bool) {
	switch {
	case IsCancelled(raw):
		st := Status{State: StateCancelled}
		if m := cancelPattern.FindStringSubmatch(raw); m != nil {
			st.Reason = strings.TrimSpace(m[1])
			st.ActorRank = auth.Rank(strings.ToLower(m[2]))
		}
		return st, true
	case IsDelivered(raw):
		return Status{State: StateDelivered}, true
	case IsConfirmed(raw):
		return Status{State: StateConfirmed}, true
	case IsPending(raw):
		return Status{State: StatePending}, true
	}
	return Status{}, false
}

// String renders the canonical legacy form, which always re-classifies to
// the same state.
func (s Status) String() string {
	switch s.State {
	case StateConfirmed:
		return wireConfirmed
	case StateDelivered:
		return wireDelivered
	case StateCancelled:
		return fmt.Sprintf("cancel (%s) by %s", s.Reason, s.ActorRank)
	default:
		return wirePending
	}
}

func (s Status) Terminal() bool {
	return s.State == StateDelivered || s.State == StateCancelled
}

// legalTransitions is enforced server-side. The old stack relied on the UI
// only offering valid actions; rejecting illegal transitions here is a
// deliberate hardening on top of that contract.
var legalTransitions = map[State][]State{
	StatePending:   {StateConfirmed, StateCancelled},
	StateConfirmed: {StateDelivered, StateCancelled},
}

func CanTransition(from, to State) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
