package systems

import (
	"image/color"

	"github.com/gonewx/stickynote/pkg/components"
	"github.com/gonewx/stickynote/pkg/ecs"
	"github.com/gonewx/stickynote/pkg/stickynote"
)

// 适配器：把 ECS 组件包装成 stickynote 控制器需要的宿主接口。
// 组件保持纯数据，读写逻辑集中在这里。

// TextSurface 基于 TextSurfaceComponent 的 stickynote.TextSurface 实现
type TextSurface struct {
	entityManager *ecs.EntityManager
	entityID      ecs.EntityID
}

// NewTextSurface 创建文本表面适配器
// 实体必须携带 TextSurfaceComponent，否则返回 nil
func NewTextSurface(em *ecs.EntityManager, entityID ecs.EntityID) *TextSurface {
	if !ecs.HasComponent[*components.TextSurfaceComponent](em, entityID) {
		return nil
	}
	return &TextSurface{entityManager: em, entityID: entityID}
}

func (s *TextSurface) component() *components.TextSurfaceComponent {
	comp, ok := ecs.GetComponent[*components.TextSurfaceComponent](s.entityManager, s.entityID)
	if !ok {
		return nil
	}
	return comp
}

// SetText 设置显示文本
func (s *TextSurface) SetText(text string) {
	if comp := s.component(); comp != nil {
		comp.Text = text
	}
}

// Text 返回当前显示文本
func (s *TextSurface) Text() string {
	if comp := s.component(); comp != nil {
		return comp.Text
	}
	return ""
}

// SetFontSize 设置字号
func (s *TextSurface) SetFontSize(size int) {
	if comp := s.component(); comp != nil {
		comp.FontSize = size
	}
}

// FontSize 返回当前字号
func (s *TextSurface) FontSize() int {
	if comp := s.component(); comp != nil {
		return comp.FontSize
	}
	return 0
}

// SetFillColor 设置文本颜色
func (s *TextSurface) SetFillColor(c color.Color) {
	if comp := s.component(); comp != nil {
		comp.FillColor = c
	}
}

// LayoutRect 返回文本布局矩形（相对便利贴左上角）
// 尚未渲染时根据便利贴尺寸和内边距推算
func (s *TextSurface) LayoutRect() stickynote.Rect {
	comp := s.component()
	if comp == nil {
		return stickynote.Rect{}
	}

	if comp.LayoutValid {
		return stickynote.Rect{Right: comp.LayoutWidth, Bottom: comp.LayoutHeight}
	}

	note, ok := ecs.GetComponent[*components.StickyNoteComponent](s.entityManager, s.entityID)
	if !ok {
		return stickynote.Rect{}
	}
	w, h := noteTextArea(note)
	return stickynote.Rect{Right: w, Bottom: h}
}

// BackgroundSurface 基于 BackgroundComponent 的 stickynote.BackgroundSurface 实现
type BackgroundSurface struct {
	entityManager *ecs.EntityManager
	entityID      ecs.EntityID
}

// NewBackgroundSurface 创建背景表面适配器
// 实体没有 BackgroundComponent 时返回 nil
func NewBackgroundSurface(em *ecs.EntityManager, entityID ecs.EntityID) *BackgroundSurface {
	if !ecs.HasComponent[*components.BackgroundComponent](em, entityID) {
		return nil
	}
	return &BackgroundSurface{entityManager: em, entityID: entityID}
}

// SetBaseColor 设置背景基础色
func (s *BackgroundSurface) SetBaseColor(c color.Color) {
	if comp, ok := ecs.GetComponent[*components.BackgroundComponent](s.entityManager, s.entityID); ok {
		comp.BaseColor = c
	}
}

// TapSource 基于 ClickableComponent 的 stickynote.TapSource 实现
type TapSource struct {
	entityManager *ecs.EntityManager
	entityID      ecs.EntityID
}

// NewTapSource 创建点击来源适配器
func NewTapSource(em *ecs.EntityManager, entityID ecs.EntityID) *TapSource {
	if !ecs.HasComponent[*components.ClickableComponent](em, entityID) {
		return nil
	}
	return &TapSource{entityManager: em, entityID: entityID}
}

// OnTap 注册点击回调
func (s *TapSource) OnTap(fn func()) {
	if comp, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, s.entityID); ok {
		comp.OnClick = append(comp.OnClick, fn)
	}
}

// NewStickyNoteHost 为便利贴实体组装宿主服务
//
// 注意：适配器为 nil 时显式留空接口字段，避免 "非 nil 接口包装 nil 指针"
func NewStickyNoteHost(em *ecs.EntityManager, entityID ecs.EntityID, scheduler *DelayedCallbackSystem) stickynote.Host {
	host := stickynote.Host{}
	if scheduler != nil {
		host.Scheduler = scheduler
	}
	if ts := NewTextSurface(em, entityID); ts != nil {
		host.Text = ts
	}
	if bg := NewBackgroundSurface(em, entityID); bg != nil {
		host.Background = bg
	}
	if tap := NewTapSource(em, entityID); tap != nil {
		host.Input = tap
	}
	return host
}

// noteTextArea 便利贴的文本可用区域
func noteTextArea(note *components.StickyNoteComponent) (w, h float64) {
	w = max(0, note.Width-2*note.Padding)
	h = max(0, note.Height-2*note.Padding)
	return w, h
}
