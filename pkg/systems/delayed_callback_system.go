package systems

import (
	"log"

	"github.com/gonewx/stickynote/pkg/components"
	"github.com/gonewx/stickynote/pkg/ecs"
	"github.com/gonewx/stickynote/pkg/stickynote"
)

// DelayedCallbackSystem 延迟回调系统
//
// 实现 stickynote.Scheduler。每个待触发的回调是一个实体，
// 携带 TimerComponent 和 CallbackComponent。
//
// 触发规则:
//   - Update(dt) 只推进调用开始时已存在的计时器
//   - 回调按创建顺序触发；回调中新建的计时器不会在同一次 Update 中触发
//   - 回调中取消的计时器即使已到时间也不会触发
//   - 触发或取消后实体被标记删除
type DelayedCallbackSystem struct {
	entityManager *ecs.EntityManager
}

// NewDelayedCallbackSystem 创建延迟回调系统
func NewDelayedCallbackSystem(em *ecs.EntityManager) *DelayedCallbackSystem {
	return &DelayedCallbackSystem{
		entityManager: em,
	}
}

// DelayedCallback 计时器句柄，实现 stickynote.Handle
type DelayedCallback struct {
	entityManager *ecs.EntityManager
	entityID      ecs.EntityID
	timer         *components.TimerComponent
}

// Cancel 取消尚未触发的回调
func (h *DelayedCallback) Cancel() {
	if h == nil || h.timer == nil || !h.timer.Enabled {
		return
	}
	h.timer.Enabled = false
	h.entityManager.DestroyEntity(h.entityID)
}

// Active 回调尚未触发且未被取消时返回 true
func (h *DelayedCallback) Active() bool {
	return h != nil && h.timer != nil && h.timer.Enabled && !h.timer.IsReady
}

// EntityID 返回计时器实体 ID
func (h *DelayedCallback) EntityID() ecs.EntityID {
	return h.entityID
}

// After 在 delaySeconds 秒后调用一次 fn
func (s *DelayedCallbackSystem) After(name string, delaySeconds float64, fn func()) stickynote.Handle {
	return s.schedule(name, max(0, delaySeconds), false, fn)
}

// NextFrame 在下一次 Update 时调用一次 fn
func (s *DelayedCallbackSystem) NextFrame(name string, fn func()) stickynote.Handle {
	return s.schedule(name, 0, true, fn)
}

func (s *DelayedCallbackSystem) schedule(name string, delay float64, nextFrame bool, fn func()) *DelayedCallback {
	entityID := s.entityManager.CreateEntity()

	timer := &components.TimerComponent{
		Name:       name,
		TargetTime: delay,
		Enabled:    true,
		NextFrame:  nextFrame,
	}
	ecs.AddComponent(s.entityManager, entityID, timer)
	ecs.AddComponent(s.entityManager, entityID, &components.CallbackComponent{Fn: fn})

	return &DelayedCallback{
		entityManager: s.entityManager,
		entityID:      entityID,
		timer:         timer,
	}
}

// Update 推进所有计时器并触发到期的回调
func (s *DelayedCallbackSystem) Update(deltaTime float64) {
	// 快照：回调中新建的计时器留到下一次 Update
	entities := ecs.GetEntitiesWith2[
		*components.TimerComponent,
		*components.CallbackComponent,
	](s.entityManager)

	for _, entityID := range entities {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, entityID)
		callback, _ := ecs.GetComponent[*components.CallbackComponent](s.entityManager, entityID)

		// 已取消（可能是本次 Update 中前面的回调取消的）
		if !timer.Enabled || timer.IsReady {
			continue
		}

		timer.CurrentTime += deltaTime
		if !timer.NextFrame && timer.CurrentTime < timer.TargetTime {
			continue
		}

		timer.IsReady = true
		timer.Enabled = false
		s.entityManager.DestroyEntity(entityID)

		if callback.Fn != nil {
			callback.Fn()
		}
	}
}

// Pending 返回指定名称的活动计时器数量，name 为空时统计全部
func (s *DelayedCallbackSystem) Pending(name string) int {
	count := 0
	for _, entityID := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, entityID)
		if !timer.Enabled || timer.IsReady {
			continue
		}
		if name == "" || timer.Name == name {
			count++
		}
	}
	return count
}

// CancelAll 取消所有活动计时器（场景销毁时调用）
func (s *DelayedCallbackSystem) CancelAll() {
	cancelled := 0
	for _, entityID := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, entityID)
		if timer.Enabled && !timer.IsReady {
			timer.Enabled = false
			s.entityManager.DestroyEntity(entityID)
			cancelled++
		}
	}
	if cancelled > 0 {
		log.Printf("[DelayedCallbackSystem] Cancelled %d pending timers", cancelled)
	}
}
