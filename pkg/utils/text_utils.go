package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 测量一行文本的宽度
type MeasureFunc func(s string) float64

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	return WrapLines(textStr, maxWidth, func(s string) float64 {
		return measureTextWidth(s, font)
	})
}

// WrapLines 按宽度换行（与字体无关，便于测试）
//
// 换行规则:
//   - 保留原文中的换行符
//   - 优先在空格处断行
//   - 单词本身超过最大宽度时按字符强制断行
//   - 支持多字节字符
func WrapLines(textStr string, maxWidth float64, measure MeasureFunc) []string {
	if textStr == "" || maxWidth <= 0 || measure == nil {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, measure)...)
	}
	return lines
}

// wrapParagraph 对不含换行符的一段文本进行换行
func wrapParagraph(paragraph string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}

		if measure(candidate) <= maxWidth {
			currentLine = candidate
			continue
		}

		// 当前行结束，开始新行
		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		if measure(word) <= maxWidth {
			currentLine = word
			continue
		}

		// 单词太长，按字符强制断行
		broken := breakWord(word, maxWidth, measure)
		lines = append(lines, broken[:len(broken)-1]...)
		currentLine = broken[len(broken)-1]
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// breakWord 按字符拆分超宽单词，至少返回一个元素
func breakWord(word string, maxWidth float64, measure MeasureFunc) []string {
	var parts []string
	current := ""
	for _, r := range word {
		candidate := current + string(r)
		// 单个字符就超宽时也强制放入
		if current != "" && measure(candidate) > maxWidth {
			parts = append(parts, current)
			current = string(r)
			continue
		}
		current = candidate
	}
	return append(parts, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
