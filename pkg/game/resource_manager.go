package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontName 内置字体的缓存名称
const DefaultFontName = "builtin:goregular"

// ResourceManager 负责字体资源的集中加载和缓存
//
// 便利贴的字号由自适应逻辑动态决定，因此按 (字体, 字号) 缓存 GoTextFace，
// 同一字号只创建一次。
//
// Thread Safety Note:
// 缓存使用普通 map，非并发安全；只在游戏主循环中使用。
//
// Usage:
//
//	rm := NewResourceManager()
//	face, err := rm.LoadFont(DefaultFontName, 24)
//	if err != nil {
//	    log.Printf("Failed to load font: %v", err)
//	}
type ResourceManager struct {
	sourceCache   map[string]*text.GoTextFaceSource // 字体名 -> 字体源
	fontFaceCache map[string]*text.GoTextFace       // "字体名:字号" -> 字体
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		sourceCache:   make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadFontSource 加载字体源
//
// 参数:
//   - name: 字体文件路径，或 DefaultFontName 表示内置的 Go Regular 字体
//
// 返回:
//   - *text.GoTextFaceSource: 字体源
//   - error: 文件读取或解析失败
func (rm *ResourceManager) LoadFontSource(name string) (*text.GoTextFaceSource, error) {
	if source, exists := rm.sourceCache[name]; exists {
		return source, nil
	}

	var fontData []byte
	if name == DefaultFontName {
		fontData = goregular.TTF
	} else {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", name, err)
		}
		fontData = data
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
	}

	rm.sourceCache[name] = source
	return source, nil
}

// LoadFont 加载指定字号的字体（带缓存）
func (rm *ResourceManager) LoadFont(name string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.LoadFontSource(name)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// GetFont 获取已缓存的字体，未加载时返回 nil
func (rm *ResourceManager) GetFont(name string, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	return rm.fontFaceCache[cacheKey]
}

// CachedFaceCount 返回已缓存的字体数量
func (rm *ResourceManager) CachedFaceCount() int {
	return len(rm.fontFaceCache)
}
