package game

import (
	"fmt"
	"log"

	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings 查看者偏好设置
//
// 只保存用户在运行时切换过的选项；未设置的字段（nil）沿用便利贴配置文件的值。
// 注意：这里保存的是宿主偏好，不是便利贴的文本内容。
type ViewerSettings struct {
	TypewriterEnabled     *bool    `yaml:"typewriterEnabled,omitempty"`     // 打字机效果开关
	TypingSpeed           *float64 `yaml:"typingSpeed,omitempty"`           // 每个字符的显示间隔（秒）
	RandomizeColorOnStart *bool    `yaml:"randomizeColorOnStart,omitempty"` // 启动时随机背景色
}

// DefaultSettings 返回默认设置（不覆盖任何配置）
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{}
}

// ApplyTo 把已设置的偏好覆盖到便利贴配置上
func (s *ViewerSettings) ApplyTo(cfg *config.StickyNoteConfig) {
	if s == nil || cfg == nil {
		return
	}
	if s.TypewriterEnabled != nil {
		cfg.EnableTypewriterEffect = *s.TypewriterEnabled
	}
	if s.TypingSpeed != nil {
		cfg.TypingSpeedSeconds = *s.TypingSpeed
	}
	if s.RandomizeColorOnStart != nil {
		cfg.RandomizeColorOnStart = *s.RandomizeColorOnStart
	}
}

// SettingsManager 设置管理器
// 负责查看者设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ViewerSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例（加载失败时使用默认设置）
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// OpenSettingsManager 打开应用的 gdata 存储并创建设置管理器
// 存储不可用时退化为仅内存模式
func OpenSettingsManager(appName string) *SettingsManager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	return NewSettingsManager(gdataManager)
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loadedSettings ViewerSettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ViewerSettings {
	return sm.settings
}

// SetTypewriterEnabled 设置打字机效果开关
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTypewriterEnabled(enabled bool) {
	sm.settings.TypewriterEnabled = &enabled
}

// SetTypingSpeed 设置打字间隔（秒），不小于 config.MinTypingSpeed
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTypingSpeed(seconds float64) {
	seconds = max(config.MinTypingSpeed, seconds)
	sm.settings.TypingSpeed = &seconds
}

// SetRandomizeColorOnStart 设置启动时是否随机背景色
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetRandomizeColorOnStart(enabled bool) {
	sm.settings.RandomizeColorOnStart = &enabled
}
