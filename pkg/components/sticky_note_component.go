package components

import "image/color"

// StickyNoteComponent 便利贴标记组件
// 记录便利贴的尺寸和内边距，渲染系统据此计算文本布局矩形
type StickyNoteComponent struct {
	Width   float64 // 便利贴宽度（像素）
	Height  float64 // 便利贴高度（像素）
	Padding float64 // 文本区域内边距（像素）

	// ControllerID 绑定的控制器 ID（仅用于日志）
	ControllerID string
}

// TextSurfaceComponent 文本表面组件（纯数据）
//
// 控制器通过 systems.TextSurface 适配器写入 Text/FontSize/FillColor，
// 渲染系统在绘制后回写 LayoutWidth/LayoutHeight。
type TextSurfaceComponent struct {
	Text      string
	FontSize  int
	FillColor color.Color

	// 布局矩形（渲染后有效）
	LayoutWidth  float64
	LayoutHeight float64
	LayoutValid  bool

	// 渲染后统计：换行后的行数（调试显示用）
	LineCount int
}

// BackgroundComponent 背景表面组件（材质基础色）
type BackgroundComponent struct {
	BaseColor color.Color
}
