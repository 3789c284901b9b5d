package systems

import (
	"image/color"
	"log"

	"github.com/gonewx/stickynote/pkg/components"
	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/ecs"
	"github.com/gonewx/stickynote/pkg/game"
	"github.com/gonewx/stickynote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	noteShadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 60}
	noteBorderColor = color.NRGBA{R: 0, G: 0, B: 0, A: 40}
)

// StickyNoteRenderSystem 便利贴渲染系统
//
// 绘制顺序：阴影 → 背景 → 边框 → 文本。
// 绘制文本后回写布局数据（LayoutWidth/LayoutHeight/LineCount），
// 控制器在下一帧读取这些数据完成字号自适应。
type StickyNoteRenderSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	fontName        string
}

// NewStickyNoteRenderSystem 创建便利贴渲染系统
// fontName 为空时使用内置字体
func NewStickyNoteRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager, fontName string) *StickyNoteRenderSystem {
	if fontName == "" {
		fontName = game.DefaultFontName
	}
	return &StickyNoteRenderSystem{
		entityManager:   em,
		resourceManager: rm,
		fontName:        fontName,
	}
}

// Draw 绘制所有便利贴
func (s *StickyNoteRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith3[
		*components.StickyNoteComponent,
		*components.PositionComponent,
		*components.TextSurfaceComponent,
	](s.entityManager)

	for _, entityID := range entities {
		note, _ := ecs.GetComponent[*components.StickyNoteComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		surface, _ := ecs.GetComponent[*components.TextSurfaceComponent](s.entityManager, entityID)

		s.drawBackground(screen, entityID, note, pos)

		lines, face := s.Layout(entityID)
		s.drawLines(screen, lines, face, surface, note, pos)
	}
}

// Layout 按当前字号对文本换行并回写布局数据
//
// 返回换行后的文本行和使用的字体；字体加载失败时返回 nil 字体，
// 此时布局数据保持无效。
func (s *StickyNoteRenderSystem) Layout(entityID ecs.EntityID) ([]string, *text.GoTextFace) {
	note, ok := ecs.GetComponent[*components.StickyNoteComponent](s.entityManager, entityID)
	if !ok {
		return nil, nil
	}
	surface, ok := ecs.GetComponent[*components.TextSurfaceComponent](s.entityManager, entityID)
	if !ok {
		return nil, nil
	}

	fontSize := max(1, surface.FontSize)
	face, err := s.resourceManager.LoadFont(s.fontName, float64(fontSize))
	if err != nil {
		log.Printf("[StickyNoteRenderSystem] Failed to load font %s: %v", s.fontName, err)
		return nil, nil
	}

	width, height := noteTextArea(note)
	lines := utils.WrapText(surface.Text, face, width)

	surface.LayoutWidth = width
	surface.LayoutHeight = height
	surface.LayoutValid = true
	surface.LineCount = len(lines)

	return lines, face
}

// drawBackground 绘制阴影、背景和边框
func (s *StickyNoteRenderSystem) drawBackground(screen *ebiten.Image, entityID ecs.EntityID, note *components.StickyNoteComponent, pos *components.PositionComponent) {
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(note.Width), float32(note.Height)
	offset := float32(config.NoteShadowOffset)

	vector.DrawFilledRect(screen, x+offset, y+offset, w, h, noteShadowColor, true)

	var base color.Color = config.PaletteColor(0)
	if bg, ok := ecs.GetComponent[*components.BackgroundComponent](s.entityManager, entityID); ok && bg.BaseColor != nil {
		base = bg.BaseColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, base, true)
	vector.StrokeRect(screen, x, y, w, h, 1, noteBorderColor, true)
}

// drawLines 从文本区域左上角开始逐行绘制
func (s *StickyNoteRenderSystem) drawLines(screen *ebiten.Image, lines []string, face *text.GoTextFace, surface *components.TextSurfaceComponent, note *components.StickyNoteComponent, pos *components.PositionComponent) {
	if face == nil || len(lines) == 0 {
		return
	}

	var fill color.Color = config.TextColor
	if surface.FillColor != nil {
		fill = surface.FillColor
	}

	lineHeight := face.Size * config.NoteLineSpacing
	textX := pos.X + note.Padding
	textY := pos.Y + note.Padding

	for i, line := range lines {
		if line == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(textX, textY+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(fill)
		op.PrimaryAlign = text.AlignStart
		op.SecondaryAlign = text.AlignStart
		text.Draw(screen, line, face, op)
	}
}
