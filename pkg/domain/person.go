package domain

import (
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultName is the display name given to a Person created without WithName.
const DefaultName = "Joe"

// Person is the entity whose replies depend on its relationship State.
// A Person is not safe for concurrent use; see session.Manager for that.
type Person struct {
	name  string
	state State
	out   io.Writer
	hooks Hooks
}

// Option configures a Person.
type Option func(*Person)

// WithName sets the display name.
func WithName(name string) Option {
	return func(p *Person) {
		p.name = name
	}
}

// WithOutput redirects emitted lines. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Person) {
		p.out = w
	}
}

// WithHooks registers observers.
func WithHooks(h Hooks) Option {
	return func(p *Person) {
		p.hooks = h
	}
}

// NewPerson creates a Person in the initial state.
func NewPerson(opts ...Option) *Person {
	p := &Person{
		name: DefaultName,
		out:  os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.state = InitialState
	return p
}

// Greet says hello according to the current state.
func (p *Person) Greet() {
	p.Act(Greet)
}

// Farewell says goodbye according to the current state.
func (p *Person) Farewell() {
	p.Act(Farewell)
}

// Act handles a single action and returns the emitted line.
// The line is rendered against the state at call time; the next state is
// committed before anything is written or observed.
func (p *Person) Act(a Action) string {
	from := p.state
	reaction := Lookup(from, a)
	msg := reaction.Render(p)
	p.state = reaction.Next

	fmt.Fprintln(p.out, msg)

	if p.hooks.OnAct != nil {
		p.hooks.OnAct(TransitionEvent{
			Timestamp: time.Now(),
			Name:      p.name,
			Action:    a,
			From:      from,
			To:        reaction.Next,
			Message:   msg,
		})
	}
	return msg
}

// ResetState forgets any previous interaction. Nothing is emitted.
func (p *Person) ResetState() {
	from := p.state
	p.state = InitialState

	if p.hooks.OnReset != nil {
		p.hooks.OnReset(ResetEvent{
			Timestamp: time.Now(),
			Name:      p.name,
			From:      from,
		})
	}
}

// State returns the current relationship state.
func (p *Person) State() State {
	return p.state
}

// Name returns the display name.
func (p *Person) Name() string {
	return p.name
}

// String renders the person as its name.
func (p *Person) String() string {
	return p.name
}

// Snapshot is the persistable view of a Person.
type Snapshot struct {
	Name  string `json:"name"`
	State State  `json:"state"`
}

// NewSnapshot returns the snapshot of a freshly created person with the given name.
func NewSnapshot(name string) Snapshot {
	return Snapshot{Name: name, State: InitialState}
}

// Snapshot captures the person's current name and state.
func (p *Person) Snapshot() Snapshot {
	return Snapshot{Name: p.name, State: p.state}
}

// Restore rebuilds a Person from a snapshot. Options are applied before the
// snapshot, so the snapshot's name and state win over WithName.
func Restore(s Snapshot, opts ...Option) (*Person, error) {
	if !s.State.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, uint8(s.State))
	}
	p := NewPerson(opts...)
	p.name = s.Name
	p.state = s.State
	return p, nil
}
