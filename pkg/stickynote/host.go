// Package stickynote 实现便利贴文本控制器
//
// 控制器只负责 UI 状态：文本截断、点击循环、打字机动画、字号自适应、
// 背景颜色。渲染、布局、输入和计时器由宿主提供（见 Host）。
// 所有方法都在宿主的单线程回调中调用，控制器内部不加锁。
package stickynote

import (
	"image/color"
	"math"
)

// Rect 文本表面的布局矩形（宿主坐标单位）
// 不约定 Y 轴方向，宽高取绝对值
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width 返回矩形宽度
func (r Rect) Width() float64 {
	return math.Abs(r.Right - r.Left)
}

// Height 返回矩形高度
func (r Rect) Height() float64 {
	return math.Abs(r.Bottom - r.Top)
}

// Area 返回矩形面积
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// TextSurface 文本显示表面
//
// LayoutRect 只有在宿主完成一次渲染后才有效，
// 因此字号自适应分两个阶段进行（见 EnsureTextFits）。
type TextSurface interface {
	SetText(s string)
	Text() string
	SetFontSize(size int)
	FontSize() int
	SetFillColor(c color.Color)
	LayoutRect() Rect
}

// BackgroundSurface 背景网格表面（材质基础色）
type BackgroundSurface interface {
	SetBaseColor(c color.Color)
}

// TapSource 点击事件来源
// 控制器在初始化时注册一次点击回调
type TapSource interface {
	OnTap(fn func())
}

// Handle 可取消的计时器句柄
type Handle interface {
	// Cancel 取消尚未触发的回调，对已触发或已取消的句柄无效果
	Cancel()
	// Active 回调尚未触发且未被取消时返回 true
	Active() bool
}

// Scheduler 宿主计时器服务
// name 仅用于调试和统计，不要求唯一
type Scheduler interface {
	// After 在 delaySeconds 秒后调用一次 fn
	After(name string, delaySeconds float64, fn func()) Handle
	// NextFrame 在下一帧（下一次调度 tick）调用一次 fn
	NextFrame(name string, fn func()) Handle
}

// Host 控制器依赖的宿主服务集合
//
// Text 和 Scheduler 是必需的；Background 和 Input 可以为 nil。
// Rand 为 nil 时使用按时间播种的随机源。
type Host struct {
	Text       TextSurface
	Background BackgroundSurface
	Scheduler  Scheduler
	Input      TapSource
	Rand       RandSource
}

// RandSource 随机数来源（*rand.Rand 满足此接口）
type RandSource interface {
	Intn(n int) int
}
