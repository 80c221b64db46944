package domain_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/rapport/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson_Defaults(t *testing.T) {
	p := domain.NewPerson(domain.WithOutput(&bytes.Buffer{}))
	assert.Equal(t, domain.FirstMeeting, p.State())
	assert.Equal(t, "Joe", p.Name())
	assert.Equal(t, "Joe", p.String())
}

func TestPerson_FirstActionAcquaints(t *testing.T) {
	for _, a := range domain.Actions() {
		t.Run(a.String(), func(t *testing.T) {
			p := domain.NewPerson(domain.WithOutput(&bytes.Buffer{}))
			p.Act(a)
			assert.Equal(t, domain.Acquainted, p.State())
		})
	}
}

func TestPerson_AcquaintedIsAbsorbing(t *testing.T) {
	p := domain.NewPerson(domain.WithOutput(&bytes.Buffer{}))
	p.Greet()
	for i := 0; i < 3; i++ {
		for _, a := range domain.Actions() {
			p.Act(a)
			assert.Equal(t, domain.Acquainted, p.State())
		}
	}
}

func TestPerson_ResetState(t *testing.T) {
	var out bytes.Buffer
	p := domain.NewPerson(domain.WithOutput(&out))

	p.ResetState()
	assert.Equal(t, domain.FirstMeeting, p.State())

	p.Farewell()
	before := out.Len()
	p.ResetState()
	assert.Equal(t, domain.FirstMeeting, p.State())
	assert.Equal(t, before, out.Len(), "reset must not emit anything")
}

func TestPerson_Scenario(t *testing.T) {
	var out bytes.Buffer
	p := domain.NewPerson(domain.WithOutput(&out))

	p.Greet()
	assert.Equal(t, domain.Acquainted, p.State())
	p.Farewell()
	p.Greet()
	p.ResetState()
	assert.Equal(t, domain.FirstMeeting, p.State())
	p.Farewell()
	assert.Equal(t, domain.Acquainted, p.State())
	p.Greet()

	want := []string{
		"hi, never seen each other before, I'm Joe",
		"bye, met each other earlier, I'm Joe",
		"hi, met each other earlier, I'm Joe",
		"bye, never seen each other before, I'm Joe",
		"hi, met each other earlier, I'm Joe",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"))
}

func TestPerson_ActReturnsEmittedLine(t *testing.T) {
	var out bytes.Buffer
	p := domain.NewPerson(domain.WithName("Mia"), domain.WithOutput(&out))

	msg := p.Act(domain.Farewell)
	assert.Equal(t, "bye, never seen each other before, I'm Mia", msg)
	assert.Equal(t, msg+"\n", out.String())
}

func TestPerson_Hooks(t *testing.T) {
	var events []domain.TransitionEvent
	var resets []domain.ResetEvent
	p := domain.NewPerson(
		domain.WithOutput(&bytes.Buffer{}),
		domain.WithHooks(domain.Hooks{
			OnAct: func(e domain.TransitionEvent) {
				events = append(events, e)
			},
			OnReset: func(e domain.ResetEvent) {
				resets = append(resets, e)
			},
		}),
	)

	p.Greet()
	p.Farewell()
	p.ResetState()

	require.Len(t, events, 2)
	assert.Equal(t, domain.Greet, events[0].Action)
	assert.Equal(t, domain.FirstMeeting, events[0].From)
	assert.Equal(t, domain.Acquainted, events[0].To)
	assert.Equal(t, "bye, met each other earlier, I'm Joe", events[1].Message)

	require.Len(t, resets, 1)
	assert.Equal(t, domain.Acquainted, resets[0].From)
}

func TestRestore(t *testing.T) {
	var out bytes.Buffer
	p, err := domain.Restore(domain.Snapshot{Name: "Eve", State: domain.Acquainted}, domain.WithOutput(&out))
	require.NoError(t, err)
	assert.Equal(t, "Eve", p.Name())
	assert.Equal(t, domain.Acquainted, p.State())
	assert.Equal(t, domain.Snapshot{Name: "Eve", State: domain.Acquainted}, p.Snapshot())

	_, err = domain.Restore(domain.Snapshot{Name: "Eve", State: domain.State(9)})
	assert.ErrorIs(t, err, domain.ErrUnknownState)
}

func TestChainHooks(t *testing.T) {
	var order []string
	h := domain.ChainHooks(
		domain.Hooks{OnAct: func(domain.TransitionEvent) { order = append(order, "a") }},
		domain.Hooks{},
		domain.Hooks{OnAct: func(domain.TransitionEvent) { order = append(order, "b") }},
	)

	h.OnAct(domain.TransitionEvent{})
	h.OnReset(domain.ResetEvent{})
	assert.Equal(t, []string{"a", "b"}, order)
}
