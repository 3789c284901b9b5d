package main

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/ecs"
	"github.com/gonewx/stickynote/pkg/stickynote"
	"github.com/gonewx/stickynote/pkg/systems"
)

// 终端单元格折算成的虚拟像素，用于字号自适应的面积估算
const (
	cellWidthPx  = 8.0
	cellHeightPx = 16.0
)

// 便利贴在终端中的尺寸（单元格，含内边距）
const (
	noteCols       = 40
	noteRows       = 12
	notePadX       = 2
	notePadY       = 1
	noteOffsetCols = 2 // 便利贴左侧留白
	noteOffsetRows = 1 // 便利贴上方留白
)

// cellSurface 终端文本表面
// 字号无法真正改变字符大小，只记录下来显示在状态栏
type cellSurface struct {
	text     string
	fontSize int
	fill     color.Color
	cols     int
	rows     int
}

func (s *cellSurface) SetText(text string) { s.text = text }
func (s *cellSurface) Text() string { return s.text }
func (s *cellSurface) SetFontSize(size int) { s.fontSize = size }
func (s *cellSurface) FontSize() int { return s.fontSize }
func (s *cellSurface) SetFillColor(c color.Color) { s.fill = c }

// LayoutRect 文本区域（虚拟像素）
func (s *cellSurface) LayoutRect() stickynote.Rect {
	return stickynote.Rect{
		Right:  float64(s.cols) * cellWidthPx,
		Bottom: float64(s.rows) * cellHeightPx,
	}
}

// cellBackground 终端背景表面
type cellBackground struct {
	base color.Color
}

func (b *cellBackground) SetBaseColor(c color.Color) { b.base = c }

// keyTapSource 由按键或鼠标触发的点击来源
type keyTapSource struct {
	handlers []func()
}

func (t *keyTapSource) OnTap(fn func()) { t.handlers = append(t.handlers, fn) }

func (t *keyTapSource) tap() {
	for _, fn := range t.handlers {
		fn()
	}
}

// terminalNote 终端宿主：一个便利贴控制器及其宿主服务
type terminalNote struct {
	entityManager *ecs.EntityManager
	scheduler     *systems.DelayedCallbackSystem
	surface       *cellSurface
	background    *cellBackground
	taps          *keyTapSource
	controller    *stickynote.Controller
}

// newTerminalNote 创建终端便利贴并激活控制器
// rng 为 nil 时使用当前时间作为种子
func newTerminalNote(cfg *config.StickyNoteConfig, rng stickynote.RandSource) *terminalNote {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	em := ecs.NewEntityManager()
	note := &terminalNote{
		entityManager: em,
		scheduler:     systems.NewDelayedCallbackSystem(em),
		surface: &cellSurface{
			fill: config.TextColor,
			cols: noteCols - 2*notePadX,
			rows: noteRows - 2*notePadY,
		},
		background: &cellBackground{base: config.PaletteColor(0)},
		taps:       &keyTapSource{},
	}

	note.controller = stickynote.NewController(stickynote.Host{
		Text:       note.surface,
		Background: note.background,
		Scheduler:  note.scheduler,
		Input:      note.taps,
		Rand:       rng,
	}, cfg)
	note.controller.Awake()

	return note
}

// step 推进计时器
func (n *terminalNote) step(dt float64) {
	n.scheduler.Update(dt)
	n.entityManager.RemoveMarkedEntities()
}

// settled 打字机动画已结束且没有待执行的字号调整
func (n *terminalNote) settled() bool {
	return !n.controller.IsTyping() && n.scheduler.Pending(stickynote.TimerFit) == 0
}

// runUntilSettled 以固定步长推进，直到动画结束或达到步数上限
func (n *terminalNote) runUntilSettled(dt float64, maxSteps int) bool {
	for i := 0; i < maxSteps; i++ {
		if n.settled() {
			return true
		}
		n.step(dt)
	}
	return n.settled()
}

// hit 终端坐标 (x, y) 是否落在便利贴内
func hit(x, y int) bool {
	return x >= noteOffsetCols && x < noteOffsetCols+noteCols &&
		y >= noteOffsetRows && y < noteOffsetRows+noteRows
}
