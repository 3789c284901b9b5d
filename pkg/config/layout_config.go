package config

// 布局配置常量
// 所有坐标使用屏幕坐标系（逻辑分辨率，左上角为原点）

const (
	// WindowWidth / WindowHeight 窗口逻辑尺寸
	WindowWidth  = 640
	WindowHeight = 480

	// NoteWidth / NoteHeight 便利贴尺寸（像素）
	NoteWidth  = 260.0
	NoteHeight = 260.0

	// NotePadding 文本区域内边距（像素）
	// 文本布局矩形 = 便利贴尺寸 - 2*NotePadding
	NotePadding = 18.0

	// NoteShadowOffset 阴影偏移（像素）
	NoteShadowOffset = 6.0

	// NoteLineSpacing 行距倍数（相对字号）
	NoteLineSpacing = 1.2
)

// NoteOrigin 返回便利贴在窗口中居中时的左上角坐标
func NoteOrigin() (x, y float64) {
	return (WindowWidth - NoteWidth) / 2, (WindowHeight - NoteHeight) / 2
}
