package domain

import "time"

// TransitionEvent describes one handled Action after its next State has been committed.
type TransitionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	Action    Action    `json:"action"`
	From      State     `json:"from"`
	To        State     `json:"to"`
	Message   string    `json:"message"`
}

// ResetEvent describes a ResetState call.
type ResetEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	From      State     `json:"from"`
}

// Hooks defines optional observers for a Person. They run synchronously.
type Hooks struct {
	OnAct   func(TransitionEvent)
	OnReset func(ResetEvent)
}

// ChainHooks combines hooks so every observer sees each event, in order.
func ChainHooks(hooks ...Hooks) Hooks {
	return Hooks{
		OnAct: func(e TransitionEvent) {
			for _, h := range hooks {
				if h.OnAct != nil {
					h.OnAct(e)
				}
			}
		},
		OnReset: func(e ResetEvent) {
			for _, h := range hooks {
				if h.OnReset != nil {
					h.OnReset(e)
				}
			}
		},
	}
}
