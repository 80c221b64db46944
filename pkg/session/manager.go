package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/rapport/internal/logging"
	"github.com/aretw0/rapport/pkg/domain"
	"github.com/aretw0/rapport/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Outcome is the result of one action applied through the Manager.
type Outcome struct {
	PersonID string        `json:"person_id"`
	Action   domain.Action `json:"action"`
	From     domain.State  `json:"from"`
	To       domain.State  `json:"to"`
	Message  string        `json:"message"`
}

// Manager serializes access to each person and persists every change.
type Manager struct {
	store ports.PersonStore

	mu    sync.Mutex            // guards locks
	locks map[string]*lockEntry // active per-person locks

	locker      ports.DistributedLocker
	lockTTL     time.Duration
	defaultName string
	out         io.Writer
	hooks       domain.Hooks
	logger      *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLocker enables distributed locking.
func WithLocker(locker ports.DistributedLocker, ttl time.Duration) Option {
	return func(m *Manager) {
		m.locker = locker
		m.lockTTL = ttl
	}
}

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithDefaultName sets the name given to people created on first use.
func WithDefaultName(name string) Option {
	return func(m *Manager) {
		m.defaultName = name
	}
}

// WithOutput sets where restored people write their lines. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(m *Manager) {
		m.out = w
	}
}

// WithHooks attaches observers to every person the Manager restores.
func WithHooks(h domain.Hooks) Option {
	return func(m *Manager) {
		m.hooks = h
	}
}

// NewManager creates a new Manager over the given store.
func NewManager(store ports.PersonStore, opts ...Option) *Manager {
	m := &Manager{
		store:       store,
		locks:       make(map[string]*lockEntry),
		lockTTL:     30 * time.Second,
		defaultName: domain.DefaultName,
		out:         io.Discard,
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
func (m *Manager) acquire(personID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[personID]
	if !exists {
		entry = &lockEntry{}
		m.locks[personID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(personID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[personID]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, personID)
	}
}

// WithLock executes fn while holding the lock for the person.
func (m *Manager) WithLock(ctx context.Context, personID string, fn func(context.Context) error) error {
	entry := m.acquire(personID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(personID)
	}()

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, personID, m.lockTTL)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				m.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"person_id", personID,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// pending collects what a restored person emitted until the store accepts the change.
type pending struct {
	out    bytes.Buffer
	acts   []domain.TransitionEvent
	resets []domain.ResetEvent
}

// flush writes buffered lines and fires hooks. Call only after a successful Save.
func (m *Manager) flush(p *pending) {
	if _, err := m.out.Write(p.out.Bytes()); err != nil {
		m.logger.Warn("Failed to write person output", "err", err)
	}
	for _, e := range p.acts {
		if m.hooks.OnAct != nil {
			m.hooks.OnAct(e)
		}
	}
	for _, e := range p.resets {
		if m.hooks.OnReset != nil {
			m.hooks.OnReset(e)
		}
	}
}

// loadOrNew must be called with the person's lock held. The returned person
// writes and reports into pend instead of the manager's output and hooks.
func (m *Manager) loadOrNew(ctx context.Context, personID string, pend *pending) (*domain.Person, error) {
	snap, err := m.store.Load(ctx, personID)
	if errors.Is(err, domain.ErrPersonNotFound) {
		m.logger.Debug("creating person", "person_id", personID, "name", m.defaultName)
		snap = domain.NewSnapshot(m.defaultName)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load person %q: %w", personID, err)
	}
	return domain.Restore(snap,
		domain.WithOutput(&pend.out),
		domain.WithHooks(domain.Hooks{
			OnAct: func(e domain.TransitionEvent) {
				pend.acts = append(pend.acts, e)
			},
			OnReset: func(e domain.ResetEvent) {
				pend.resets = append(pend.resets, e)
			},
		}),
	)
}

// Act applies an action to the person, creating it on first use.
func (m *Manager) Act(ctx context.Context, personID string, action domain.Action) (Outcome, error) {
	if !action.Valid() {
		return Outcome{}, fmt.Errorf("%w: %d", domain.ErrUnknownAction, uint8(action))
	}

	var out Outcome
	err := m.WithLock(ctx, personID, func(ctx context.Context) error {
		var pend pending
		p, err := m.loadOrNew(ctx, personID, &pend)
		if err != nil {
			return err
		}

		from := p.State()
		msg := p.Act(action)

		if err := m.store.Save(ctx, personID, p.Snapshot()); err != nil {
			return fmt.Errorf("failed to save person %q: %w", personID, err)
		}
		m.flush(&pend)

		out = Outcome{
			PersonID: personID,
			Action:   action,
			From:     from,
			To:       p.State(),
			Message:  msg,
		}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	m.logger.Debug("action applied",
		"person_id", personID,
		"action", action.String(),
		"from", out.From.String(),
		"to", out.To.String(),
	)
	return out, nil
}

// Reset returns the person to the initial state, creating it on first use.
func (m *Manager) Reset(ctx context.Context, personID string) (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := m.WithLock(ctx, personID, func(ctx context.Context) error {
		var pend pending
		p, err := m.loadOrNew(ctx, personID, &pend)
		if err != nil {
			return err
		}
		p.ResetState()
		if err := m.store.Save(ctx, personID, p.Snapshot()); err != nil {
			return fmt.Errorf("failed to save person %q: %w", personID, err)
		}
		m.flush(&pend)
		snap = p.Snapshot()
		return nil
	})
	return snap, err
}

// Get returns the stored snapshot without creating anything.
func (m *Manager) Get(ctx context.Context, personID string) (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := m.WithLock(ctx, personID, func(ctx context.Context) error {
		var err error
		snap, err = m.store.Load(ctx, personID)
		return err
	})
	return snap, err
}

// Delete removes the person from the store.
func (m *Manager) Delete(ctx context.Context, personID string) error {
	return m.WithLock(ctx, personID, func(ctx context.Context) error {
		return m.store.Delete(ctx, personID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}
