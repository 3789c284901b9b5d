package components

// TimerComponent 通用计时器组件
// 用于延迟回调（如打字机逐字显示、光标闪烁、下一帧布局检查）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "sticky_note_typing"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成（回调已触发）
	Enabled     bool    // false 表示已取消，不再触发
	NextFrame   bool    // true 表示忽略时间，在下一次 Update 时触发
}

// CallbackComponent 计时器完成时调用的回调
type CallbackComponent struct {
	Fn func()
}
