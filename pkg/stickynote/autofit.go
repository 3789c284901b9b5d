package stickynote

import (
	"log"
	"math"
	"unicode/utf8"
)

// AreaFactor 经验系数：每个字符大约占 fontSize² * 0.6 的面积
const AreaFactor = 0.6

// TimerFit 字号自适应第二阶段的计时器名称
const TimerFit = "sticky_note_fit"

// EstimateTextArea 估算文本占用面积
func EstimateTextArea(charCount, fontSize int) float64 {
	size := float64(fontSize)
	return float64(charCount) * size * size * AreaFactor
}

// FitFontSize 单次估算文本在 width×height 区域内的字号
//
// 规则：
//   - 估算面积 = 字符数 × 字号² × 0.6
//   - 估算面积超过可用面积且字号大于下限时，按 sqrt(可用/估算) 缩小并向下取整
//   - 结果始终在 [minSize, maxSize] 范围内
//
// 只做一次计算，不迭代收敛；严重溢出时文本仍可能略微超出边界。
func FitFontSize(charCount, fontSize int, width, height float64, minSize, maxSize int) int {
	if maxSize < minSize {
		maxSize = minSize
	}

	size := fontSize
	estimated := EstimateTextArea(charCount, size)
	available := math.Abs(width) * math.Abs(height)

	if estimated > available && size > minSize {
		scaled := int(math.Floor(float64(size) * math.Sqrt(available/estimated)))
		size = max(minSize, scaled)
	}

	return min(max(size, minSize), maxSize)
}

// EnsureTextFits 字号自适应第一阶段
//
// 布局数据只有在渲染之后才有效，因此先把字号设为最大值，
// 再在下一帧读取渲染后的布局矩形进行第二阶段调整。
// 重复调用只保留最后一次的第二阶段回调。
func (c *Controller) EnsureTextFits() {
	if c.text == nil {
		return
	}

	c.text.SetFontSize(c.cfg.MaxFontSize)

	cancelHandle(&c.fitEvent)
	if c.scheduler == nil {
		c.checkAndAdjustTextSize()
		return
	}
	c.fitEvent = c.scheduler.NextFrame(TimerFit, c.checkAndAdjustTextSize)
}

// checkAndAdjustTextSize 字号自适应第二阶段
func (c *Controller) checkAndAdjustTextSize() {
	c.fitEvent = nil
	if c.text == nil {
		return
	}

	fontSize := c.text.FontSize()
	charCount := utf8.RuneCountInString(c.text.Text())
	rect := c.text.LayoutRect()

	newSize := FitFontSize(charCount, fontSize, rect.Width(), rect.Height(), c.cfg.MinFontSize, c.cfg.MaxFontSize)
	if newSize != fontSize {
		c.text.SetFontSize(newSize)
		log.Printf("[StickyNote %s] font size %d -> %d (%d chars, layout %.0fx%.0f)",
			c.shortID(), fontSize, newSize, charCount, rect.Width(), rect.Height())
	}
}
