// Package app 提供便利贴应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/game"
	"github.com/gonewx/stickynote/pkg/scenes"
	"github.com/gonewx/stickynote/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SettingsAppName gdata 存储使用的应用名
const SettingsAppName = "stickynote"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 便利贴配置文件路径，为空则使用内置配置
	ConfigPath string
	// SnapshotDir 快照导出目录，为空则为当前目录
	SnapshotDir string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	noteScene    *scenes.StickyNoteScene
	verbose      bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	noteConfig := config.LoadStickyNoteConfigOrDefault(cfg.ConfigPath)

	// 查看者设置覆盖配置文件
	settingsManager := game.OpenSettingsManager(SettingsAppName)
	settingsManager.GetSettings().ApplyTo(noteConfig)
	noteConfig.Normalize()

	resourceManager := game.NewResourceManager()
	if _, err := resourceManager.LoadFontSource(game.DefaultFontName); err != nil {
		return nil, err
	}

	noteScene := scenes.NewStickyNoteScene(resourceManager, noteConfig, settingsManager)
	if cfg.SnapshotDir != "" {
		noteScene.SetSnapshotDir(cfg.SnapshotDir)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(noteScene)

	log.Printf("[App] Sticky note ready (typewriter=%v, speed=%.2fs)",
		noteConfig.EnableTypewriterEffect, noteConfig.TypingSpeedSeconds)

	return &App{
		sceneManager: sceneManager,
		noteScene:    noteScene,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.Shutdown()
		return ebiten.Termination
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// NoteScene 返回便利贴场景（外部文本来源通过其控制器设置文本）
func (a *App) NoteScene() *scenes.StickyNoteScene {
	return a.noteScene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
