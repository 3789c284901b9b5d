package stickynote

// TypingState 打字机动画状态
type TypingState int

const (
	// TypingIdle 没有动画（初始状态，或动画被中途停止）
	TypingIdle TypingState = iota

	// TypingActive 正在逐字显示
	TypingActive

	// TypingSettled 动画完成，完整文本已提交
	TypingSettled
)

// String 返回 TypingState 的字符串表示
func (s TypingState) String() string {
	switch s {
	case TypingIdle:
		return "Idle"
	case TypingActive:
		return "Typing"
	case TypingSettled:
		return "Settled"
	default:
		return "Unknown"
	}
}

// 打字机计时器名称
const (
	TimerTyping      = "sticky_note_typing"
	TimerCursorBlink = "sticky_note_cursor_blink"
)

// StartTypingAnimation 开始打字机动画
//
// 状态转换: 任意状态 → Typing → Settled
//
// 先停止进行中的动画（取消两个计时器），再截断文本、清空显示，
// 然后立即显示第一个字符并启动光标闪烁。
// 之后每 typingSpeed 秒显示一个字符，每 CursorBlinkSpeed 秒切换一次光标。
func (c *Controller) StartTypingAnimation(newText string) {
	if c.text == nil {
		return
	}
	if c.scheduler == nil {
		c.UpdateText(newText)
		return
	}

	c.StopTypingAnimation()

	c.targetText = []rune(TruncateText(newText, c.cfg.MaxCharacters))
	c.currentCharIndex = 0
	c.state = TypingActive

	c.text.SetText("")
	c.ensureTextColorIsBlack()

	c.startCursorBlink()
	c.typeNextCharacter()
}

// typeNextCharacter 显示下一个字符；全部显示后的下一次 tick 提交完整文本
func (c *Controller) typeNextCharacter() {
	c.typingEvent = nil

	if c.state != TypingActive || c.currentCharIndex >= len(c.targetText) {
		c.finishTyping()
		return
	}

	c.currentCharIndex++
	c.text.SetText(withCursor(runePrefix(c.targetText, c.currentCharIndex), c.showCursor))
	c.ensureTextColorIsBlack()

	c.typingEvent = c.scheduler.After(TimerTyping, c.typingSpeed, c.typeNextCharacter)
}

// finishTyping 结束动画：取消计时器，显示不带光标的完整文本，执行字号自适应
func (c *Controller) finishTyping() {
	cancelHandle(&c.typingEvent)
	c.stopCursorBlink()
	c.state = TypingSettled

	c.text.SetText(string(c.targetText))
	c.ensureTextColorIsBlack()
	c.EnsureTextFits()
}

// startCursorBlink 启动光标闪烁（第一次闪烁立即执行）
func (c *Controller) startCursorBlink() {
	c.showCursor = true
	c.blinkCursor()
}

// blinkCursor 切换光标可见性并安排下一次闪烁
// 动画已结束时触发的闪烁直接忽略
func (c *Controller) blinkCursor() {
	c.cursorBlinkEvent = nil
	if c.state != TypingActive {
		return
	}

	c.showCursor = !c.showCursor

	// 只在部分显示时重绘
	if c.currentCharIndex < len(c.targetText) {
		c.text.SetText(withCursor(runePrefix(c.targetText, c.currentCharIndex), c.showCursor))
		c.ensureTextColorIsBlack()
	}

	c.cursorBlinkEvent = c.scheduler.After(TimerCursorBlink, c.cfg.CursorBlinkSpeed, c.blinkCursor)
}

// stopCursorBlink 取消光标计时器并隐藏光标
func (c *Controller) stopCursorBlink() {
	cancelHandle(&c.cursorBlinkEvent)
	c.showCursor = false
}

// StopTypingAnimation 停止打字机动画
//
// 取消并丢弃两个计时器，隐藏光标，进入 Idle。
// 已显示的文本保持不变。
func (c *Controller) StopTypingAnimation() {
	c.state = TypingIdle

	cancelHandle(&c.typingEvent)
	c.stopCursorBlink()
}

// TypingProgress 返回已显示字符数和目标字符数
func (c *Controller) TypingProgress() (revealed, total int) {
	return c.currentCharIndex, len(c.targetText)
}

// IsTyping 打字机动画是否进行中
func (c *Controller) IsTyping() bool {
	return c.state == TypingActive
}

// CursorVisible 光标当前是否可见
func (c *Controller) CursorVisible() bool {
	return c.showCursor
}
