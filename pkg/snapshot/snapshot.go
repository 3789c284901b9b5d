// Package snapshot 把便利贴当前的显示状态导出为 PNG 图片
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/stickynote"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Snapshot 便利贴某一时刻的显示状态
type Snapshot struct {
	Text       string
	FontSize   int
	Background color.Color
	TextColor  color.Color
	Padding    float64
}

// FromController 读取控制器当前的显示状态
// 背景色尚未设置时使用调色板第一个颜色
func FromController(c *stickynote.Controller) Snapshot {
	snap := Snapshot{
		Text:       c.CurrentText(),
		FontSize:   c.FontSize(),
		Background: config.PaletteColor(0),
		TextColor:  config.TextColor,
		Padding:    config.NotePadding,
	}
	if bg, ok := c.BackgroundColor(); ok {
		snap.Background = bg
	}
	return snap
}

var parsedFont *truetype.Font

// loadFont 解析内置等宽字体（只解析一次）
func loadFont() (*truetype.Font, error) {
	if parsedFont != nil {
		return parsedFont, nil
	}
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	parsedFont = f
	return f, nil
}

// Render 把便利贴绘制到 width×height 的图片上
func Render(note Snapshot, width, height int) (image.Image, error) {
	dc, err := draw(note, width, height)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG 绘制便利贴并保存为 PNG 文件
func SavePNG(note Snapshot, width, height int, path string) error {
	dc, err := draw(note, width, height)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	log.Printf("[Snapshot] Saved %dx%d note to %s", width, height, path)
	return nil
}

func draw(note Snapshot, width, height int) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", width, height)
	}

	ttfFont, err := loadFont()
	if err != nil {
		return nil, err
	}

	background := note.Background
	if background == nil {
		background = config.PaletteColor(0)
	}
	textColor := note.TextColor
	if textColor == nil {
		textColor = config.TextColor
	}
	fontSize := float64(max(1, note.FontSize))

	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()

	// 边框
	dc.SetLineWidth(1.0)
	dc.SetColor(color.NRGBA{A: 40})
	dc.DrawRectangle(0.5, 0.5, float64(width)-1, float64(height)-1)
	dc.Stroke()

	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(textColor)

	innerWidth := max(0, float64(width)-2*note.Padding)
	lineHeight := fontSize * config.NoteLineSpacing
	y := note.Padding + fontSize

	for _, paragraph := range strings.Split(note.Text, "\n") {
		for _, line := range dc.WordWrap(paragraph, innerWidth) {
			dc.DrawString(line, note.Padding, y)
			y += lineHeight
		}
	}

	return dc, nil
}
