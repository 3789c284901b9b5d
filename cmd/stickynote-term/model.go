package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/snapshot"
)

// tickInterval 计时器驱动频率（约 30Hz）
const tickInterval = time.Second / 30

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

// model bubbletea 模型
type model struct {
	note          *terminalNote
	lastTick      time.Time
	status        string
	exportDir     string
	readClipboard func() (string, error)
}

func newModel(note *terminalNote) model {
	return model{
		note:          note,
		exportDir:     ".",
		readClipboard: clipboard.ReadAll,
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		dt := tickInterval.Seconds()
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds()
		}
		m.lastTick = now
		m.note.step(dt)
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Type == tea.MouseLeft && hit(msg.X, msg.Y) {
			m.note.taps.tap()
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.note.controller
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ", "enter":
		m.note.taps.tap()
	case "r":
		c.ResetText()
	case "c":
		c.RandomizeColor()
	case "t":
		c.SetTypewriterEffect(!c.TypewriterEnabled())
		m.status = fmt.Sprintf("typewriter %v", c.TypewriterEnabled())
	case "+", "=":
		c.SetTypingSpeed(c.TypingSpeed() - 0.01)
		m.status = fmt.Sprintf("speed %.2fs/char", c.TypingSpeed())
	case "-":
		c.SetTypingSpeed(c.TypingSpeed() + 0.01)
		m.status = fmt.Sprintf("speed %.2fs/char", c.TypingSpeed())
	case "ctrl+v", "v":
		m.paste()
	case "p":
		m.export()
	default:
		// 终端粘贴以一条多字符的 KeyRunes 消息到达
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
			c.SetTextFromExternalSource(string(msg.Runes))
		}
	}
	return m, nil
}

func (m *model) paste() {
	content, err := m.readClipboard()
	if err != nil {
		m.status = "clipboard unavailable"
		log.Printf("[StickyNoteTerm] Failed to read clipboard: %v", err)
		return
	}
	if content == "" {
		return
	}
	m.note.controller.SetTextFromExternalSource(content)
}

func (m *model) export() {
	name := fmt.Sprintf("stickynote-%s.png", time.Now().Format("20060102-150405"))
	path := filepath.Join(m.exportDir, name)
	snap := snapshot.FromController(m.note.controller)
	if err := snapshot.SavePNG(snap, int(config.NoteWidth), int(config.NoteHeight), path); err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.status = "saved " + path
}

func (m model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		lipgloss.NewStyle().MarginLeft(noteOffsetCols).Render(m.renderNote()),
		m.renderStatus(),
		helpStyle.Render("  space/click: next  r: reset  c: color  t: typewriter  +/-: speed  v: paste  p: png  q: quit"),
	)
}

// renderNote 用背景色和黑色文字绘制便利贴
func (m model) renderNote() string {
	style := lipgloss.NewStyle().
		Width(noteCols).
		Height(noteRows).
		Padding(notePadY, notePadX).
		Background(lipgloss.Color(hexOrDefault(m.note.background.base))).
		Foreground(lipgloss.Color(hexOrDefault(m.note.surface.fill)))
	return style.Render(m.note.surface.Text())
}

func (m model) renderStatus() string {
	c := m.note.controller
	revealed, total := c.TypingProgress()
	line := fmt.Sprintf("  %s %d/%d  font %dpt  option %d/%d",
		c.State(), revealed, total, c.FontSize(), c.CurrentIndex()+1, len(c.TextOptions()))
	if m.status != "" {
		line += "  " + m.status
	}
	return statusStyle.Render(line)
}

// hexOrDefault 颜色转 #rrggbb，nil 时使用调色板第一个颜色
func hexOrDefault(c color.Color) string {
	if c == nil {
		return config.ColorHex(config.PaletteColor(0))
	}
	return config.ColorHex(c)
}
