package entities

import (
	"testing"

	"github.com/gonewx/stickynote/pkg/components"
	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStickyNoteEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewStickyNoteEntity(em, 10, 20, 200, 150, 12, 36)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok, "entity should have PositionComponent")
	assert.Equal(t, 10.0, pos.X)
	assert.Equal(t, 20.0, pos.Y)

	note, ok := ecs.GetComponent[*components.StickyNoteComponent](em, id)
	require.True(t, ok, "entity should have StickyNoteComponent")
	assert.Equal(t, 200.0, note.Width)
	assert.Equal(t, 150.0, note.Height)
	assert.Equal(t, 12.0, note.Padding)

	surface, ok := ecs.GetComponent[*components.TextSurfaceComponent](em, id)
	require.True(t, ok, "entity should have TextSurfaceComponent")
	assert.Equal(t, 36, surface.FontSize)
	assert.Equal(t, config.TextColor, surface.FillColor)
	assert.False(t, surface.LayoutValid, "layout is only valid after the first render")

	bg, ok := ecs.GetComponent[*components.BackgroundComponent](em, id)
	require.True(t, ok, "entity should have BackgroundComponent")
	assert.Equal(t, config.PaletteColor(0), bg.BaseColor)

	clickable, ok := ecs.GetComponent[*components.ClickableComponent](em, id)
	require.True(t, ok, "entity should have ClickableComponent")
	assert.True(t, clickable.IsEnabled)
	assert.Equal(t, 200.0, clickable.Width)
	assert.Equal(t, 150.0, clickable.Height)
	assert.Empty(t, clickable.OnClick)
}

func TestNewDefaultStickyNoteEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultStickyNoteConfig()
	cfg.MaxFontSize = 48

	id := NewDefaultStickyNoteEntity(em, cfg)

	x, y := config.NoteOrigin()
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	assert.Equal(t, x, pos.X)
	assert.Equal(t, y, pos.Y)

	surface, _ := ecs.GetComponent[*components.TextSurfaceComponent](em, id)
	assert.Equal(t, 48, surface.FontSize)

	id2 := NewDefaultStickyNoteEntity(em, nil)
	surface2, _ := ecs.GetComponent[*components.TextSurfaceComponent](em, id2)
	assert.Equal(t, config.DefaultStickyNoteConfig().MaxFontSize, surface2.FontSize)
}
