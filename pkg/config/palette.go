package config

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// stickyNoteColors 便利贴背景颜色（柔和的马卡龙色）
// 顺序固定，初始化后只读
var stickyNoteColors = [...]color.NRGBA{
	rgba(1.0, 1.0, 0.7),   // 浅黄（经典便利贴）
	rgba(1.0, 0.9, 0.7),   // 浅橙
	rgba(0.9, 1.0, 0.7),   // 浅绿
	rgba(0.7, 0.9, 1.0),   // 浅蓝
	rgba(1.0, 0.8, 0.9),   // 浅粉
	rgba(0.9, 0.8, 1.0),   // 浅紫
	rgba(1.0, 0.95, 0.8),  // 浅桃
	rgba(0.8, 1.0, 0.9),   // 薄荷
	rgba(0.95, 0.95, 0.8), // 奶油
	rgba(0.85, 0.95, 1.0), // 天蓝
}

// TextColor 便利贴文本颜色，任何文本修改后都会重新设置
var TextColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// StickyNoteColors 返回调色板的副本
func StickyNoteColors() []color.NRGBA {
	out := make([]color.NRGBA, len(stickyNoteColors))
	copy(out, stickyNoteColors[:])
	return out
}

// PaletteSize 返回调色板颜色数量
func PaletteSize() int {
	return len(stickyNoteColors)
}

// PaletteColor 返回第 i 个调色板颜色，越界时返回第一个（经典浅黄）
func PaletteColor(i int) color.NRGBA {
	if i < 0 || i >= len(stickyNoteColors) {
		return stickyNoteColors[0]
	}
	return stickyNoteColors[i]
}

// rgba 将 0.0~1.0 的分量转换为不透明 NRGBA
func rgba(r, g, b float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 255,
	}
}

// ColorHex 返回颜色的 "#rrggbb" 表示（忽略透明度），用于日志和终端样式
func ColorHex(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "#000000"
	}
	// 去预乘，得到与 NRGBA 一致的分量
	cf := colorful.Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
	}
	return cf.Clamped().Hex()
}
