package stickynote_test

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/ecs"
	"github.com/gonewx/stickynote/pkg/stickynote"
	"github.com/gonewx/stickynote/pkg/systems"
)

// fakeText 记录所有写入的文本表面
type fakeText struct {
	text     string
	size     int
	fill     color.Color
	rect     stickynote.Rect
	history  []string
	fontSets []int
}

func (f *fakeText) SetText(s string) {
	f.text = s
	f.history = append(f.history, s)
}
func (f *fakeText) Text() string { return f.text }
func (f *fakeText) SetFontSize(size int) {
	f.size = size
	f.fontSets = append(f.fontSets, size)
}
func (f *fakeText) FontSize() int { return f.size }
func (f *fakeText) SetFillColor(c color.Color) { f.fill = c }
func (f *fakeText) LayoutRect() stickynote.Rect { return f.rect }

type fakeBackground struct {
	colors []color.Color
}

func (f *fakeBackground) SetBaseColor(c color.Color) { f.colors = append(f.colors, c) }

type fakeTap struct {
	handlers []func()
}

func (f *fakeTap) OnTap(fn func()) { f.handlers = append(f.handlers, fn) }

func (f *fakeTap) tap() {
	for _, fn := range f.handlers {
		fn()
	}
}

// fixedRand 总是返回同一个值
type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

// harness 使用真实的 DelayedCallbackSystem 驱动控制器
type harness struct {
	em        *ecs.EntityManager
	scheduler *systems.DelayedCallbackSystem
	text      *fakeText
	bg        *fakeBackground
	tap       *fakeTap
	c         *stickynote.Controller
}

func newHarness(t *testing.T, cfg *config.StickyNoteConfig) *harness {
	t.Helper()
	em := ecs.NewEntityManager()
	h := &harness{
		em:        em,
		scheduler: systems.NewDelayedCallbackSystem(em),
		text:      &fakeText{rect: stickynote.Rect{Right: 200, Bottom: 200}},
		bg:        &fakeBackground{},
		tap:       &fakeTap{},
	}
	h.c = stickynote.NewController(stickynote.Host{
		Text:       h.text,
		Background: h.bg,
		Scheduler:  h.scheduler,
		Input:      h.tap,
		Rand:       rand.New(rand.NewSource(42)),
	}, cfg)
	return h
}

// step 推进一帧
func (h *harness) step(dt float64) {
	h.scheduler.Update(dt)
	h.em.RemoveMarkedEntities()
}

// run 以 dt 为步长推进 seconds 秒
func (h *harness) run(seconds, dt float64) {
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		h.step(dt)
	}
}

// instantConfig 关闭打字机效果和随机颜色的配置
func instantConfig(options ...string) *config.StickyNoteConfig {
	cfg := config.DefaultStickyNoteConfig()
	cfg.EnableTypewriterEffect = false
	cfg.RandomizeColorOnStart = false
	if options != nil {
		cfg.TextOptions = options
	}
	return cfg
}

// typewriterConfig 打字机配置：每 0.05 秒一个字符，光标每 0.3 秒闪烁
func typewriterConfig(defaultText string) *config.StickyNoteConfig {
	cfg := config.DefaultStickyNoteConfig()
	cfg.EnableTypewriterEffect = true
	cfg.RandomizeColorOnStart = false
	cfg.TypingSpeedSeconds = 0.05
	cfg.CursorBlinkSpeed = 0.3
	cfg.DefaultText = defaultText
	return cfg
}
