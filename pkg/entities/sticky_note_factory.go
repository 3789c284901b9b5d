package entities

import (
	"github.com/gonewx/stickynote/pkg/components"
	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/ecs"
)

// NewStickyNoteEntity 创建便利贴实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 便利贴左上角（屏幕坐标）
//   - width, height: 便利贴尺寸
//   - padding: 文本区域内边距
//   - fontSize: 初始字号
//
// 返回：
//   - 便利贴实体ID
//
// 实体携带位置、便利贴、文本表面、背景和可点击组件；
// 背景色初始为调色板第一个颜色，文本为黑色。
func NewStickyNoteEntity(em *ecs.EntityManager, x, y, width, height, padding float64, fontSize int) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.StickyNoteComponent{
		Width:   width,
		Height:  height,
		Padding: padding,
	})

	ecs.AddComponent(em, entity, &components.TextSurfaceComponent{
		FontSize:  fontSize,
		FillColor: config.TextColor,
	})

	ecs.AddComponent(em, entity, &components.BackgroundComponent{
		BaseColor: config.PaletteColor(0),
	})

	// 整个便利贴都可点击
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Width:     width,
		Height:    height,
		IsEnabled: true,
	})

	return entity
}

// NewDefaultStickyNoteEntity 按默认布局创建居中的便利贴
func NewDefaultStickyNoteEntity(em *ecs.EntityManager, cfg *config.StickyNoteConfig) ecs.EntityID {
	x, y := config.NoteOrigin()
	fontSize := config.DefaultStickyNoteConfig().MaxFontSize
	if cfg != nil {
		fontSize = cfg.MaxFontSize
	}
	return NewStickyNoteEntity(em, x, y, config.NoteWidth, config.NoteHeight, config.NotePadding, fontSize)
}
