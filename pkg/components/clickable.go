package components

// ClickableComponent 标记实体可以被点击或触摸
// 定义了可点击区域的尺寸和是否启用点击
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素)
	Height    float64 // 可点击区域的高度(像素)
	IsEnabled bool    // 是否可以被点击

	// OnClick 点击回调列表，按注册顺序调用
	OnClick []func()
}
