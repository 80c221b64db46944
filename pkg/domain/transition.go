package domain

import "fmt"

// Reaction is the outcome of handling one Action in one State.
type Reaction struct {
	// Template is a fmt format with a single %s verb for the person's name.
	Template string
	Next     State
}

// Render substitutes the name into the reaction's template.
func (r Reaction) Render(name fmt.Stringer) string {
	return fmt.Sprintf(r.Template, name)
}

// transitions is indexed [State][Action]. Every cell must be populated.
var transitions = [stateCount][actionCount]Reaction{
	FirstMeeting: {
		Greet:    {Template: "hi, never seen each other before, I'm %s", Next: Acquainted},
		Farewell: {Template: "bye, never seen each other before, I'm %s", Next: Acquainted},
	},
	Acquainted: {
		Greet:    {Template: "hi, met each other earlier, I'm %s", Next: Acquainted},
		Farewell: {Template: "bye, met each other earlier, I'm %s", Next: Acquainted},
	},
}

// Lookup returns the Reaction for the given cell of the transition table.
// It panics on values outside the closed sets; those cannot be produced by
// the exported constants or the Parse functions.
func Lookup(s State, a Action) Reaction {
	return transitions[s][a]
}

// Transition is one row of the flattened transition table.
type Transition struct {
	From     State
	Action   Action
	Reaction Reaction
}

// Transitions returns the whole table, states outer and actions inner.
func Transitions() []Transition {
	out := make([]Transition, 0, stateCount*actionCount)
	for _, s := range States() {
		for _, a := range Actions() {
			out = append(out, Transition{From: s, Action: a, Reaction: transitions[s][a]})
		}
	}
	return out
}
