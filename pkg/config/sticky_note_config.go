package config

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/gonewx/stickynote/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// StickyNoteConfigPath 内置便利贴配置文件路径（embedded data/ 目录）
const StickyNoteConfigPath = "data/sticky_note.yaml"

// 数值下限（非法值被钳制而不是拒绝）
const (
	// MinTypingSpeed 打字间隔下限（秒），避免零或负间隔的计时器
	MinTypingSpeed = 0.01

	// MinCursorBlinkSpeed 光标闪烁间隔下限（秒）
	MinCursorBlinkSpeed = 0.01

	// MinMaxCharacters 最大字符数下限
	MinMaxCharacters = 1

	// MinFontSizeFloor 字号下限
	MinFontSizeFloor = 1
)

// DefaultNoteText 默认便利贴文本
const DefaultNoteText = "Click to edit..."

// StickyNoteConfig 便利贴配置
//
// 构造后只读。控制器会复制自己需要修改的部分
// （打字机开关、打字速度、文本选项列表）。
//
// 配置文件位置: data/sticky_note.yaml
type StickyNoteConfig struct {
	// DefaultText 默认文本，始终位于文本选项列表的最后
	DefaultText string `yaml:"default_text"`

	// MaxFontSize / MinFontSize 自动适配字号的范围
	MaxFontSize int `yaml:"max_font_size"`
	MinFontSize int `yaml:"min_font_size"`

	// MaxCharacters 最大显示字符数（按 rune 计），超出部分以 "..." 截断
	MaxCharacters int `yaml:"max_characters"`

	// EnableEditing 是否响应点击切换文本
	EnableEditing bool `yaml:"enable_editing"`

	// RandomizeColorOnStart 初始化时是否随机背景颜色
	RandomizeColorOnStart bool `yaml:"randomize_color_on_start"`

	// EnableTypewriterEffect 是否启用打字机动画
	EnableTypewriterEffect bool `yaml:"enable_typewriter_effect"`

	// TypingSpeedSeconds 每个字符的显示间隔（秒）
	TypingSpeedSeconds float64 `yaml:"typing_speed_seconds"`

	// CursorBlinkSpeed 光标闪烁间隔（秒）
	CursorBlinkSpeed float64 `yaml:"cursor_blink_speed"`

	// TextOptions 点击循环的预设文本（不含默认文本，默认文本会被自动追加到末尾）
	TextOptions []string `yaml:"text_options"`
}

// DefaultTextOptions 返回预设文本列表的副本
func DefaultTextOptions() []string {
	return []string{
		"Remember this!",
		"Important meeting at 3pm",
		"Buy groceries",
		"Call mom",
		"Project deadline Friday",
		"Take a break",
		"Great idea!",
		"Follow up on this",
	}
}

// DefaultStickyNoteConfig 返回默认配置
func DefaultStickyNoteConfig() *StickyNoteConfig {
	return &StickyNoteConfig{
		DefaultText:            DefaultNoteText,
		MaxFontSize:            32,
		MinFontSize:            12,
		MaxCharacters:          50,
		EnableEditing:          true,
		RandomizeColorOnStart:  true,
		EnableTypewriterEffect: true,
		TypingSpeedSeconds:     0.05,
		CursorBlinkSpeed:       0.3,
		TextOptions:            DefaultTextOptions(),
	}
}

// LoadStickyNoteConfig 加载便利贴配置
//
// 优先从嵌入资源读取（路径以 "data/" 开头且 embedded 已初始化），
// 否则从磁盘读取。文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/sticky_note.yaml"）
//
// 返回:
//   - *StickyNoteConfig: 已钳制的配置
//   - error: 读取或解析失败时返回错误
func LoadStickyNoteConfig(path string) (*StickyNoteConfig, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sticky note config %s: %w", path, err)
		}
		return ParseStickyNoteConfig(data)
	}
	return LoadStickyNoteConfigFile(path)
}

// LoadStickyNoteConfigOrDefault 加载启动配置，失败时退回默认配置
//
// path 非空时从磁盘读取用户指定的文件；为空时读取内置配置。
// 读取或解析失败只记录警告，不阻止启动。
func LoadStickyNoteConfigOrDefault(path string) *StickyNoteConfig {
	var (
		cfg *StickyNoteConfig
		err error
	)
	if path != "" {
		cfg, err = LoadStickyNoteConfigFile(path)
	} else {
		cfg, err = LoadStickyNoteConfig(StickyNoteConfigPath)
	}
	if err != nil {
		log.Printf("[StickyNoteConfig] Warning: %v (using defaults)", err)
		return DefaultStickyNoteConfig()
	}
	return cfg
}

// LoadStickyNoteConfigFile 从磁盘加载便利贴配置
func LoadStickyNoteConfigFile(path string) (*StickyNoteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sticky note config %s: %w", path, err)
	}
	return ParseStickyNoteConfig(data)
}

// ParseStickyNoteConfig 解析 YAML 配置数据
func ParseStickyNoteConfig(data []byte) (*StickyNoteConfig, error) {
	cfg := DefaultStickyNoteConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sticky note config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize 将超出范围的数值钳制到合法范围内
//
// 规则:
//   - MinFontSize >= 1，MaxFontSize >= MinFontSize
//   - MaxCharacters >= 1
//   - TypingSpeedSeconds >= 0.01，CursorBlinkSpeed >= 0.01（NaN、无穷大按下限处理）
//   - DefaultText 为空时使用 "Click to edit..."
func (c *StickyNoteConfig) Normalize() {
	if c.MinFontSize < MinFontSizeFloor {
		log.Printf("[StickyNoteConfig] min_font_size %d clamped to %d", c.MinFontSize, MinFontSizeFloor)
		c.MinFontSize = MinFontSizeFloor
	}
	if c.MaxFontSize < c.MinFontSize {
		log.Printf("[StickyNoteConfig] max_font_size %d clamped to %d", c.MaxFontSize, c.MinFontSize)
		c.MaxFontSize = c.MinFontSize
	}
	if c.MaxCharacters < MinMaxCharacters {
		log.Printf("[StickyNoteConfig] max_characters %d clamped to %d", c.MaxCharacters, MinMaxCharacters)
		c.MaxCharacters = MinMaxCharacters
	}
	if !isFinite(c.TypingSpeedSeconds) || c.TypingSpeedSeconds < MinTypingSpeed {
		c.TypingSpeedSeconds = MinTypingSpeed
	}
	if !isFinite(c.CursorBlinkSpeed) || c.CursorBlinkSpeed < MinCursorBlinkSpeed {
		c.CursorBlinkSpeed = MinCursorBlinkSpeed
	}
	if c.DefaultText == "" {
		c.DefaultText = DefaultNoteText
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Clone 返回配置的深拷贝
func (c *StickyNoteConfig) Clone() *StickyNoteConfig {
	clone := *c
	clone.TextOptions = append([]string(nil), c.TextOptions...)
	return &clone
}
