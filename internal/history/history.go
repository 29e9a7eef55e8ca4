package history

import (
	"sync"

	"github.com/swatchfile/swatch/internal/model"
)

// Manager tracks undo/redo history as bounded stacks of full before/after
// collection snapshots. The caller owns persistence: Undo and Redo hand
// back the action whose snapshot must be saved as the new collection.
type Manager struct {
	mu    sync.Mutex
	limit int
	undo  []model.HistoryAction
	redo  []model.HistoryAction
}

// NewManager creates a history manager bounded at limit entries per stack.
func NewManager(limit int) *Manager {
	if limit <= 0 {
		limit = model.DefaultHistoryDepth
	}
	return &Manager{limit: limit}
}

// Record pushes a completed mutation onto the undo stack and invalidates
// the redo stack. When the stack is full the oldest entry is dropped.
func (m *Manager) Record(action model.HistoryAction) {
	action.Previous = model.CloneRecords(action.Previous)
	action.Next = model.CloneRecords(action.Next)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.undo = append(m.undo, action)
	if len(m.undo) > m.limit {
		m.undo = m.undo[len(m.undo)-m.limit:]
	}
	m.redo = nil
}

// Undo pops the most recent action. The second return is false when there
// is nothing to undo; the collection is then left untouched.
func (m *Manager) Undo() (model.HistoryAction, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.undo) == 0 {
		return model.HistoryAction{}, false
	}

	action := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, action)
	return action, true
}

// Redo pops the most recently undone action.
func (m *Manager) Redo() (model.HistoryAction, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.redo) == 0 {
		return model.HistoryAction{}, false
	}

	action := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, action)
	return action, true
}

// CanUndo reports whether the undo stack is non-empty.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}
