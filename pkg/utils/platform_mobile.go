//go:build mobile

package utils

// IsMobile 移动端构建始终返回 true（全屏运行，不响应 F11）
func IsMobile() bool {
	return true
}
