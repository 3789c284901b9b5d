package systems

import (
	"slices"

	"github.com/gonewx/stickynote/pkg/components"
	"github.com/gonewx/stickynote/pkg/ecs"
	"github.com/gonewx/stickynote/pkg/utils"
)

// StickyNoteInputSystem 处理便利贴的点击和触摸
type StickyNoteInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewStickyNoteInputSystem 创建便利贴输入系统
func NewStickyNoteInputSystem(em *ecs.EntityManager) *StickyNoteInputSystem {
	return &StickyNoteInputSystem{
		entityManager: em,
	}
}

// Update 检测本帧的点击或触摸
func (s *StickyNoteInputSystem) Update(deltaTime float64) {
	clicked, x, y := utils.IsJustTouchedOrClicked()
	if !clicked {
		return
	}
	s.HandleTap(float64(x), float64(y))
}

// HandleTap 处理屏幕坐标 (x, y) 处的一次点击
//
// 后创建的实体位于上层，优先命中；每次点击最多触发一个实体的回调。
// 返回是否命中了可点击实体。
func (s *StickyNoteInputSystem) HandleTap(x, y float64) bool {
	entities := ecs.GetEntitiesWith2[
		*components.ClickableComponent,
		*components.PositionComponent,
	](s.entityManager)
	slices.Reverse(entities)

	for _, entityID := range entities {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !clickable.IsEnabled {
			continue
		}
		if !utils.PointInRect(x, y, pos.X, pos.Y, clickable.Width, clickable.Height) {
			continue
		}

		// 回调列表在调用期间可能被追加，先复制
		for _, fn := range slices.Clone(clickable.OnClick) {
			if fn != nil {
				fn()
			}
		}
		return true
	}
	return false
}
