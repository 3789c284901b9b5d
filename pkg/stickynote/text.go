package stickynote

import "unicode/utf8"

// Ellipsis 超长文本的截断标记
const Ellipsis = "..."

// CursorGlyph 打字机动画的光标字符
const CursorGlyph = "|"

// TruncateText 将文本限制在 maxChars 个字符以内（按 rune 计数）
//
// 超出时保留前 maxChars 个字符并追加 "..."；
// 未超出时原样返回。maxChars <= 0 时任何非空文本都只剩 "..."。
func TruncateText(s string, maxChars int) string {
	if maxChars < 0 {
		maxChars = 0
	}
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}

	// 找到第 maxChars 个 rune 的字节偏移
	count := 0
	for i := range s {
		if count == maxChars {
			return s[:i] + Ellipsis
		}
		count++
	}
	return s + Ellipsis
}

// runePrefix 返回 runes 的前 n 个字符
func runePrefix(runes []rune, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(runes) {
		return string(runes)
	}
	return string(runes[:n])
}

// withCursor 根据光标可见性拼接显示文本
func withCursor(s string, visible bool) string {
	if visible {
		return s + CursorGlyph
	}
	return s
}
