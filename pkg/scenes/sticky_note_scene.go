package scenes

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gonewx/stickynote/pkg/components"
	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/ecs"
	"github.com/gonewx/stickynote/pkg/entities"
	"github.com/gonewx/stickynote/pkg/game"
	"github.com/gonewx/stickynote/pkg/snapshot"
	"github.com/gonewx/stickynote/pkg/stickynote"
	"github.com/gonewx/stickynote/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TypingSpeedStep 每次按 +/- 调整的打字间隔（秒）
const TypingSpeedStep = 0.01

var sceneBackgroundColor = color.NRGBA{R: 236, G: 232, B: 224, A: 255}

// StickyNoteScene 便利贴场景
//
// 持有一个便利贴实体及其控制器，每帧依次执行：
// 键盘快捷键 → 点击检测 → 计时器回调 → 清理实体。
// Draw 之后渲染系统回写的布局数据在下一帧的计时器回调中被读取。
//
// 快捷键:
//   - R: 重置为默认文本
//   - C: 随机背景色
//   - T: 切换打字机效果（保存到查看者设置）
//   - +/-: 加快/减慢打字速度（保存到查看者设置）
//   - Ctrl+V: 粘贴剪贴板文本
//   - P: 导出 PNG 快照
//   - F1: 显示/隐藏调试信息
type StickyNoteScene struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager

	scheduler    *systems.DelayedCallbackSystem
	inputSystem  *systems.StickyNoteInputSystem
	renderSystem *systems.StickyNoteRenderSystem

	noteEntity ecs.EntityID
	controller *stickynote.Controller

	showDebug     bool
	snapshotDir   string
	readClipboard func() (string, error)
}

var (
	_ Scene           = (*StickyNoteScene)(nil)
	_ game.Saveable   = (*StickyNoteScene)(nil)
	_ game.Disposable = (*StickyNoteScene)(nil)
)

// NewStickyNoteScene 创建便利贴场景并激活控制器
//
// 参数：
//   - rm: 资源管理器（字体）
//   - cfg: 便利贴配置（已叠加查看者设置），nil 时使用默认配置
//   - settings: 查看者设置管理器，nil 时使用仅内存的设置
func NewStickyNoteScene(rm *game.ResourceManager, cfg *config.StickyNoteConfig, settings *game.SettingsManager) *StickyNoteScene {
	if cfg == nil {
		cfg = config.DefaultStickyNoteConfig()
	}
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	em := ecs.NewEntityManager()
	scene := &StickyNoteScene{
		entityManager:   em,
		resourceManager: rm,
		settingsManager: settings,
		scheduler:       systems.NewDelayedCallbackSystem(em),
		inputSystem:     systems.NewStickyNoteInputSystem(em),
		renderSystem:    systems.NewStickyNoteRenderSystem(em, rm, game.DefaultFontName),
		snapshotDir:     ".",
		readClipboard:   clipboard.ReadAll,
	}

	scene.noteEntity = entities.NewDefaultStickyNoteEntity(em, cfg)
	host := systems.NewStickyNoteHost(em, scene.noteEntity, scene.scheduler)
	scene.controller = stickynote.NewController(host, cfg)

	if note, ok := ecs.GetComponent[*components.StickyNoteComponent](em, scene.noteEntity); ok {
		note.ControllerID = scene.controller.ID()
	}

	scene.controller.Awake()
	log.Printf("[StickyNoteScene] Scene created (note entity %d)", scene.noteEntity)

	return scene
}

// Controller 返回便利贴控制器（外部文本来源通过它设置文本）
func (s *StickyNoteScene) Controller() *stickynote.Controller {
	return s.controller
}

// SetSnapshotDir 设置快照导出目录
func (s *StickyNoteScene) SetSnapshotDir(dir string) {
	s.snapshotDir = dir
}

// Update 更新场景
func (s *StickyNoteScene) Update(deltaTime float64) {
	s.handleKeys()
	s.inputSystem.Update(deltaTime)
	s.step(deltaTime)
}

// step 推进计时器并清理本帧销毁的实体
func (s *StickyNoteScene) step(deltaTime float64) {
	s.scheduler.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// handleKeys 处理键盘快捷键
func (s *StickyNoteScene) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV):
		s.PasteFromClipboard()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.controller.ResetText()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.controller.RandomizeColor()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		s.ToggleTypewriter()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		s.AdjustTypingSpeed(-TypingSpeedStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		s.AdjustTypingSpeed(TypingSpeedStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if _, err := s.ExportSnapshot(""); err != nil {
			log.Printf("[StickyNoteScene] Snapshot failed: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		s.showDebug = !s.showDebug
	}
}

// ToggleTypewriter 切换打字机效果并保存设置
func (s *StickyNoteScene) ToggleTypewriter() {
	enabled := !s.controller.TypewriterEnabled()
	s.controller.SetTypewriterEffect(enabled)
	s.settingsManager.SetTypewriterEnabled(enabled)
	s.saveSettings()
	log.Printf("[StickyNoteScene] Typewriter effect: %v", enabled)
}

// AdjustTypingSpeed 调整打字间隔并保存设置
func (s *StickyNoteScene) AdjustTypingSpeed(delta float64) {
	s.controller.SetTypingSpeed(s.controller.TypingSpeed() + delta)
	s.settingsManager.SetTypingSpeed(s.controller.TypingSpeed())
	s.saveSettings()
	log.Printf("[StickyNoteScene] Typing speed: %.2fs/char", s.controller.TypingSpeed())
}

// PasteFromClipboard 把剪贴板文本作为外部文本显示
func (s *StickyNoteScene) PasteFromClipboard() {
	content, err := s.readClipboard()
	if err != nil {
		log.Printf("[StickyNoteScene] Failed to read clipboard: %v", err)
		return
	}
	if content == "" {
		return
	}
	s.controller.SetTextFromExternalSource(content)
}

// ExportSnapshot 导出当前便利贴为 PNG
// path 为空时在快照目录下按时间生成文件名
func (s *StickyNoteScene) ExportSnapshot(path string) (string, error) {
	if path == "" {
		name := fmt.Sprintf("stickynote-%s.png", time.Now().Format("20060102-150405"))
		path = filepath.Join(s.snapshotDir, name)
	}

	snap := snapshot.FromController(s.controller)
	if err := snapshot.SavePNG(snap, int(config.NoteWidth), int(config.NoteHeight), path); err != nil {
		return "", err
	}
	return path, nil
}

func (s *StickyNoteScene) saveSettings() {
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[StickyNoteScene] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制场景
func (s *StickyNoteScene) Draw(screen *ebiten.Image) {
	screen.Fill(sceneBackgroundColor)
	s.renderSystem.Draw(screen)

	if s.showDebug {
		s.drawDebugInfo(screen)
	}
}

// drawDebugInfo 绘制调试信息
func (s *StickyNoteScene) drawDebugInfo(screen *ebiten.Image) {
	revealed, total := s.controller.TypingProgress()
	info := fmt.Sprintf("state=%s %d/%d font=%d speed=%.2fs typewriter=%v option=%d/%d",
		s.controller.State(), revealed, total, s.controller.FontSize(), s.controller.TypingSpeed(),
		s.controller.TypewriterEnabled(), s.controller.CurrentIndex()+1, len(s.controller.TextOptions()))
	ebitenutil.DebugPrintAt(screen, info, 8, 8)
	ebitenutil.DebugPrintAt(screen, "click: next  R: reset  C: color  T: typewriter  +/-: speed  Ctrl+V: paste  P: snapshot",
		8, config.WindowHeight-20)
}

// SaveOnExit 退出时保存查看者设置
func (s *StickyNoteScene) SaveOnExit() bool {
	return s.settingsManager.Save() == nil
}

// Dispose 取消所有计时器
func (s *StickyNoteScene) Dispose() {
	s.controller.StopTypingAnimation()
	s.scheduler.CancelAll()
	s.entityManager.RemoveMarkedEntities()
}
