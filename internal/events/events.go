package events

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Event Types for Interactive Rendering ---

// GuessEvent is published by the game for every accepted guess, so the CLI
// can echo the number and the resulting hint symbol.
type GuessEvent struct {
	Number int
	Symbol string
}

// --- Event Types for Benchmark Progress ---

// SuiteStartedEvent signals the start of a full benchmark run.
type SuiteStartedEvent struct {
	Strategies []string
	Ranges     int
	Trials     int
}

type StrategyStartedEvent struct {
	Strategy string
}

// RangeCompletedEvent reports one finished (strategy, range) cell.
// Converged is false when any trial exhausted its guess budget, in which
// case the whole series for this range is discarded.
type RangeCompletedEvent struct {
	Strategy  string
	RangeMin  int
	RangeMax  int
	RangeSize int
	Trials    int
	Converged bool
}

type SuiteCompletedEvent struct{}
