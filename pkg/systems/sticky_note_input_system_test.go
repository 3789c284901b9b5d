package systems

import (
	"testing"

	"github.com/gonewx/stickynote/pkg/components"
	"github.com/gonewx/stickynote/pkg/ecs"
	"github.com/gonewx/stickynote/pkg/entities"
)

func TestStickyNoteInputHit(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewStickyNoteInputSystem(em)
	id := entities.NewStickyNoteEntity(em, 100, 100, 200, 200, 10, 36)

	taps := 0
	NewTapSource(em, id).OnTap(func() { taps++ })

	if !system.HandleTap(150, 150) {
		t.Errorf("tap inside the note should hit")
	}
	if taps != 1 {
		t.Errorf("Expected 1 tap, got %d", taps)
	}

	if system.HandleTap(50, 50) {
		t.Errorf("tap outside the note should miss")
	}
	// 右下边界不包含
	if system.HandleTap(300, 300) {
		t.Errorf("tap on the bottom-right edge should miss")
	}
	if taps != 1 {
		t.Errorf("misses must not invoke callbacks, got %d taps", taps)
	}
}

func TestStickyNoteInputDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewStickyNoteInputSystem(em)
	id := entities.NewStickyNoteEntity(em, 0, 0, 100, 100, 10, 36)

	taps := 0
	NewTapSource(em, id).OnTap(func() { taps++ })

	clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
	clickable.IsEnabled = false

	if system.HandleTap(50, 50) {
		t.Errorf("disabled clickable should not be hit")
	}
	if taps != 0 {
		t.Errorf("disabled clickable must not invoke callbacks")
	}
}

func TestStickyNoteInputTopmostWins(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewStickyNoteInputSystem(em)

	bottom := entities.NewStickyNoteEntity(em, 0, 0, 100, 100, 10, 36)
	top := entities.NewStickyNoteEntity(em, 50, 50, 100, 100, 10, 36)

	var hits []string
	NewTapSource(em, bottom).OnTap(func() { hits = append(hits, "bottom") })
	NewTapSource(em, top).OnTap(func() { hits = append(hits, "top") })

	system.HandleTap(75, 75)
	if len(hits) != 1 || hits[0] != "top" {
		t.Errorf("Expected only the topmost note to be hit, got %v", hits)
	}

	system.HandleTap(25, 25)
	if len(hits) != 2 || hits[1] != "bottom" {
		t.Errorf("Expected bottom note hit outside the overlap, got %v", hits)
	}
}
