package domain

import "fmt"

// State is the relationship history between a Person and its counterpart.
type State uint8

const (
	FirstMeeting State = iota // No prior interaction recorded
	Acquainted                // At least one interaction has occurred

	stateCount = iota
)

var stateNames = [stateCount]string{
	FirstMeeting: "first_meeting",
	Acquainted:   "acquainted",
}

// InitialState is the state every Person starts in and returns to on reset.
const InitialState = FirstMeeting

// States lists every State in declaration order.
func States() []State {
	out := make([]State, 0, stateCount)
	for s := State(0); s < stateCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is a member of the closed State set.
func (s State) Valid() bool {
	return s < stateCount
}

func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", uint8(s))
	}
	return stateNames[s]
}

// ParseState maps a state name back to its State.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return State(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, uint8(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
