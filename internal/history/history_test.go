package history

import (
	"fmt"
	"testing"

	"github.com/swatchfile/swatch/internal/color"
	"github.com/swatchfile/swatch/internal/model"
)

func actionNamed(desc string) model.HistoryAction {
	return model.HistoryAction{
		Type:        model.ActionAdd,
		Previous:    []model.ColorRecord{},
		Next:        []model.ColorRecord{{Index: 0, Name: desc, RGB: color.RGB{R: 1, G: 2, B: 3}}},
		Description: desc,
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	m := NewManager(10)

	if _, ok := m.Undo(); ok {
		t.Error("Undo on empty history succeeded")
	}
	if _, ok := m.Redo(); ok {
		t.Error("Redo on empty history succeeded")
	}
	if m.CanUndo() || m.CanRedo() {
		t.Error("empty history reports available actions")
	}
}

func TestRecordThenUndoThenRedo(t *testing.T) {
	m := NewManager(10)
	m.Record(actionNamed("first"))
	m.Record(actionNamed("second"))

	if !m.CanUndo() {
		t.Fatal("CanUndo false after Record")
	}

	action, ok := m.Undo()
	if !ok {
		t.Fatal("Undo failed")
	}
	if action.Description != "second" {
		t.Errorf("Undo returned %q, want most recent action", action.Description)
	}
	if !m.CanRedo() {
		t.Error("CanRedo false after Undo")
	}

	redone, ok := m.Redo()
	if !ok {
		t.Fatal("Redo failed")
	}
	if redone.Description != "second" {
		t.Errorf("Redo returned %q, want %q", redone.Description, "second")
	}
	if m.CanRedo() {
		t.Error("CanRedo true after redoing everything")
	}
}

func TestRecordClearsRedoStack(t *testing.T) {
	m := NewManager(10)
	m.Record(actionNamed("first"))
	m.Record(actionNamed("second"))

	if _, ok := m.Undo(); !ok {
		t.Fatal("Undo failed")
	}
	m.Record(actionNamed("third"))

	if m.CanRedo() {
		t.Error("redo stack survived a new Record")
	}
	if action, _ := m.Undo(); action.Description != "third" {
		t.Errorf("top of undo stack is %q, want %q", action.Description, "third")
	}
}

func TestUndoStackBounded(t *testing.T) {
	const limit = 5
	m := NewManager(limit)
	for i := 0; i < limit+3; i++ {
		m.Record(actionNamed(fmt.Sprintf("action-%d", i)))
	}

	var undone []string
	for {
		action, ok := m.Undo()
		if !ok {
			break
		}
		undone = append(undone, action.Description)
	}

	if len(undone) != limit {
		t.Fatalf("undid %d actions, want %d", len(undone), limit)
	}
	// Oldest entries were dropped; the newest survive.
	if undone[0] != "action-7" || undone[limit-1] != "action-3" {
		t.Errorf("unexpected undo order: %v", undone)
	}
}

func TestRecordSnapshotsAreIsolated(t *testing.T) {
	m := NewManager(10)
	next := []model.ColorRecord{{Index: 0, Name: "Original", RGB: color.RGB{R: 1}}}
	m.Record(model.HistoryAction{Type: model.ActionEdit, Next: next})

	next[0].Name = "Mutated"

	action, ok := m.Undo()
	if !ok {
		t.Fatal("Undo failed")
	}
	if action.Next[0].Name != "Original" {
		t.Errorf("recorded snapshot mutated through caller slice: %q", action.Next[0].Name)
	}
}

func TestZeroLimitFallsBackToDefault(t *testing.T) {
	m := NewManager(0)
	for i := 0; i < model.DefaultHistoryDepth+10; i++ {
		m.Record(actionNamed(fmt.Sprintf("action-%d", i)))
	}

	count := 0
	for {
		if _, ok := m.Undo(); !ok {
			break
		}
		count++
	}
	if count != model.DefaultHistoryDepth {
		t.Errorf("retained %d actions, want %d", count, model.DefaultHistoryDepth)
	}
}
