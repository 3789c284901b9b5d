package main

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/stickynote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(typewriter bool) *config.StickyNoteConfig {
	cfg := config.DefaultStickyNoteConfig()
	cfg.EnableTypewriterEffect = typewriter
	cfg.TextOptions = []string{"Call mom", "Buy groceries"}
	return cfg
}

func TestTerminalNoteTypewriterSettles(t *testing.T) {
	note := newTerminalNote(testConfig(true), rand.New(rand.NewSource(1)))
	require.True(t, note.controller.IsTyping())
	assert.False(t, note.settled())

	require.True(t, note.runUntilSettled(exportStep, 10000))
	assert.Equal(t, stickynote.TypingSettled, note.controller.State())
	assert.Equal(t, config.DefaultNoteText, note.surface.Text())
}

func TestTerminalNoteTapCycles(t *testing.T) {
	note := newTerminalNote(testConfig(false), rand.New(rand.NewSource(1)))

	note.taps.tap()
	assert.Equal(t, "Call mom", note.surface.Text())
	note.taps.tap()
	assert.Equal(t, "Buy groceries", note.surface.Text())
	note.taps.tap()
	assert.Equal(t, config.DefaultNoteText, note.surface.Text())
}

func TestTerminalNoteFontFitsLayout(t *testing.T) {
	cfg := testConfig(false)
	cfg.MaxCharacters = 200
	note := newTerminalNote(cfg, rand.New(rand.NewSource(1)))
	// 120 个字符在 32 号字下估算面积超过 288x160 的文本区域
	note.controller.SetCustomText(strings.Repeat("Sticky note ", 10))
	require.True(t, note.runUntilSettled(exportStep, 100))

	size := note.surface.FontSize()
	assert.GreaterOrEqual(t, size, cfg.MinFontSize)
	assert.LessOrEqual(t, size, cfg.MaxFontSize)
	assert.Less(t, size, cfg.MaxFontSize, "long text should be shrunk below the maximum")
}

func TestTerminalNoteRandomColor(t *testing.T) {
	note := newTerminalNote(testConfig(false), rand.New(rand.NewSource(7)))

	bg, ok := note.controller.BackgroundColor()
	require.True(t, ok, "color should be randomized on start")
	assert.Equal(t, bg, note.background.base)
	assert.Contains(t, config.StickyNoteColors(), bg)
}

func TestHit(t *testing.T) {
	assert.True(t, hit(noteOffsetCols, noteOffsetRows))
	assert.True(t, hit(noteOffsetCols+noteCols-1, noteOffsetRows+noteRows-1))
	assert.False(t, hit(noteOffsetCols-1, noteOffsetRows))
	assert.False(t, hit(noteOffsetCols+noteCols, noteOffsetRows))
	assert.False(t, hit(noteOffsetCols, noteOffsetRows+noteRows))
}
