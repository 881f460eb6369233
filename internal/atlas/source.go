package atlas

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// State is the loading snapshot a grid renders from. IsLoading and IsError are
// mutually exclusive; both false with zero rows means the collection is
// genuinely empty.
type State[T any] struct {
	Rows      []T
	IsLoading bool
	IsError   bool
}

// DataMsg carries the result of an asynchronous list fetch back into a
// bubbletea update loop.
type DataMsg[T any] struct {
	Rows []T
	Err  error
}

// Source drives one list endpoint asynchronously: Load kicks off the fetch and
// flips state to loading, Apply folds the completed fetch back in.
type Source[T any] struct {
	fetch func(context.Context) ([]T, error)
	state State[T]
}

// NewSource wraps a list call, typically a bound Client method.
func NewSource[T any](fetch func(context.Context) ([]T, error)) *Source[T] {
	return &Source[T]{fetch: fetch}
}

// Load marks the source as loading and returns the command that performs the
// fetch off the update loop.
func (s *Source[T]) Load(ctx context.Context) tea.Cmd {
	s.state = State[T]{IsLoading: true}

	fetch := s.fetch
	return func() tea.Msg {
		if fetch == nil {
			return DataMsg[T]{}
		}
		rows, err := fetch(ctx)
		return DataMsg[T]{Rows: rows, Err: err}
	}
}

// Apply folds a completed fetch into the state. Fetch errors leave the rows
// empty and mark the state errored; they are not fatal to the UI.
func (s *Source[T]) Apply(msg DataMsg[T]) {
	if msg.Err != nil {
		s.state = State[T]{IsError: true}
		return
	}
	s.state = State[T]{Rows: msg.Rows}
}

// State returns the current loading snapshot.
func (s *Source[T]) State() State[T] {
	return s.state
}
