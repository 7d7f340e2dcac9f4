package view

import (
	"context"
	"errors"
	"sync"
)

// ErrInFlight rejects a repeated trigger while the same action is still running.
var ErrInFlight = errors.New("view: action already in progress")

const BusyNotice = "Permintaan sebelumnya masih diproses. Mohon tunggu."

// Outcome is the structured result of a mutation. Message is the success text.
type Outcome struct {
	Message string
	Err     error
}

func (o Outcome) OK() bool { return o.Err == nil }

// ErrorMessage returns the text to show for a failed outcome.
func (o Outcome) ErrorMessage(fallback string) string {
	if errors.Is(o.Err, ErrInFlight) {
		return BusyNotice
	}
	return fallback
}

// Mutations tracks in-flight actions by key.
type Mutations struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewMutations() *Mutations {
	return &Mutations{inFlight: make(map[string]struct{})}
}

// Run executes action unless one with the same key is already running.
func (m *Mutations) Run(ctx context.Context, key string, action func(ctx context.Context) (string, error)) Outcome {
	m.mu.Lock()
	if _, busy := m.inFlight[key]; busy {
		m.mu.Unlock()
		return Outcome{Err: ErrInFlight}
	}
	m.inFlight[key] = struct{}{}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		delete(m.inFlight, key)
		m.mu.Unlock()
	}()

	msg, err := action(ctx)
	if err != nil {
		return Outcome{Err: err}
	}
	return Outcome{Message: msg}
}
