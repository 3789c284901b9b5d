package stickynote

import (
	"image/color"
	"log"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/gonewx/stickynote/pkg/config"
	"github.com/oklog/ulid/v2"
)

// Controller 便利贴文本控制器
//
// 持有文本表面和背景表面的引用，管理少量可变 UI 状态：
// 当前文本选项索引、打字进度、光标可见性和活动计时器。
// 对三种外部触发作出响应：初始化（Awake）、点击（CycleText）、外部设置文本。
//
// 生命周期:
//  1. NewController 绑定宿主服务和配置
//  2. 宿主激活时调用 Awake
//  3. 之后的所有修改都发生在宿主串行派发的回调中
type Controller struct {
	id string

	// 宿主服务
	text       TextSurface
	background BackgroundSurface
	scheduler  Scheduler
	input      TapSource
	rng        RandSource

	// 只读配置（构造时复制）
	cfg *config.StickyNoteConfig

	// 控制器自己修改的设置
	textOptions       []string
	currentTextIndex  int
	typewriterEnabled bool
	typingSpeed       float64

	// 打字机动画状态
	state            TypingState
	targetText       []rune
	currentCharIndex int
	showCursor       bool

	// 计时器句柄（重新赋值前必须先取消）
	typingEvent      Handle
	cursorBlinkEvent Handle
	fitEvent         Handle

	// 背景颜色
	backgroundColor    color.NRGBA
	hasBackgroundColor bool

	awake         bool
	tapRegistered bool
}

// NewController 创建便利贴控制器
//
// 参数：
//   - host: 宿主服务（Text、Scheduler 必需）
//   - cfg: 便利贴配置，nil 时使用默认配置；控制器持有其副本
//
// 返回：
//   - *Controller: 尚未激活的控制器，需调用 Awake()
func NewController(host Host, cfg *config.StickyNoteConfig) *Controller {
	if cfg == nil {
		cfg = config.DefaultStickyNoteConfig()
	}
	cfg = cfg.Clone()
	cfg.Normalize()

	rng := host.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 默认文本始终位于最后
	options := make([]string, 0, len(cfg.TextOptions)+1)
	options = append(options, cfg.TextOptions...)
	options = append(options, cfg.DefaultText)

	c := &Controller{
		id:                ulid.Make().String(),
		text:              host.Text,
		background:        host.Background,
		scheduler:         host.Scheduler,
		input:             host.Input,
		rng:               rng,
		cfg:               cfg,
		textOptions:       options,
		typewriterEnabled: cfg.EnableTypewriterEffect,
		typingSpeed:       cfg.TypingSpeedSeconds,
		state:             TypingIdle,
	}

	if c.scheduler == nil {
		log.Printf("[StickyNote %s] Warning: no scheduler, typewriter effect disabled", c.shortID())
	}

	return c
}

// ID 返回控制器的唯一标识（ULID）
func (c *Controller) ID() string {
	return c.id
}

// shortID 日志用的短 ID（ULID 的随机部分末尾）
func (c *Controller) shortID() string {
	if len(c.id) < 6 {
		return c.id
	}
	return c.id[len(c.id)-6:]
}

// Awake 初始化便利贴
//
// 步骤:
//  1. 检查文本表面（缺失时记录警告并返回）
//  2. 按配置随机背景颜色
//  3. 强制文本为黑色
//  4. 显示默认文本（打字机或立即显示）
//  5. 按配置注册点击回调
//  6. 在首次布局之后执行一次字号自适应
func (c *Controller) Awake() {
	if c.text == nil {
		log.Printf("[StickyNote %s] Text surface not assigned!", c.shortID())
		return
	}
	if c.awake {
		log.Printf("[StickyNote %s] Awake called twice, ignored", c.shortID())
		return
	}
	c.awake = true

	if c.cfg.RandomizeColorOnStart {
		c.setRandomColor()
	}

	c.ensureTextColorIsBlack()

	c.display(c.cfg.DefaultText)

	if c.cfg.EnableEditing {
		c.setupInteraction()
	}

	// 首次布局完成后确保文本适配
	if c.scheduler != nil {
		c.scheduler.NextFrame("sticky_note_start", c.EnsureTextFits)
	} else {
		c.EnsureTextFits()
	}

	log.Printf("[StickyNote %s] Awake: %d text options, typewriter=%v, editing=%v",
		c.shortID(), len(c.textOptions), c.typewriterEnabled, c.cfg.EnableEditing)
}

// setupInteraction 注册点击回调，点击时循环切换文本
func (c *Controller) setupInteraction() {
	if c.input == nil {
		log.Printf("[StickyNote %s] Warning: editing enabled but no tap source", c.shortID())
		return
	}
	if c.tapRegistered {
		return
	}
	c.input.OnTap(c.CycleText)
	c.tapRegistered = true
}

// display 按当前配置选择打字机或立即显示
func (c *Controller) display(text string) {
	if c.typewriterEnabled && c.scheduler != nil {
		c.StartTypingAnimation(text)
	} else {
		c.UpdateText(text)
	}
}

// CycleText 切换到下一个文本选项（循环）
func (c *Controller) CycleText() {
	c.currentTextIndex = (c.currentTextIndex + 1) % len(c.textOptions)
	c.display(c.textOptions[c.currentTextIndex])
}

// UpdateText 立即显示文本（绕过打字机动画）
//
// 停止进行中的动画，截断超长文本，重新设置黑色，然后执行字号自适应。
func (c *Controller) UpdateText(newText string) {
	if c.text == nil {
		return
	}

	c.StopTypingAnimation()

	c.text.SetText(TruncateText(newText, c.cfg.MaxCharacters))
	c.ensureTextColorIsBlack()
	c.EnsureTextFits()
}

// SetTextFromExternalSource 设置来自外部（如网络推送）的文本
// 与点击切换使用相同的显示路径
func (c *Controller) SetTextFromExternalSource(newText string) {
	c.display(newText)
}

// SetCustomText 设置自定义文本（供其他代码调用）
func (c *Controller) SetCustomText(text string) {
	c.display(text)
}

// CurrentText 返回文本表面上当前显示的文本（可能包含光标字符）
func (c *Controller) CurrentText() string {
	if c.text == nil {
		return ""
	}
	return c.text.Text()
}

// AddTextOption 添加文本选项（插入在默认文本之前，已存在时忽略）
func (c *Controller) AddTextOption(text string) {
	if slices.Contains(c.textOptions, text) {
		return
	}
	// 当前索引不随插入调整
	c.textOptions = slices.Insert(c.textOptions, len(c.textOptions)-1, text)
}

// ResetText 重置为默认文本（索引指向默认文本槽位）
func (c *Controller) ResetText() {
	c.currentTextIndex = len(c.textOptions) - 1
	c.display(c.cfg.DefaultText)
}

// SetColor 手动设置便利贴背景颜色
func (c *Controller) SetColor(clr color.Color) {
	if c.background == nil || clr == nil {
		return
	}
	c.applyBackgroundColor(color.NRGBAModel.Convert(clr).(color.NRGBA))
}

// RandomizeColor 重新随机背景颜色
func (c *Controller) RandomizeColor() {
	c.setRandomColor()
}

// setRandomColor 从调色板中均匀随机选择颜色
func (c *Controller) setRandomColor() {
	if c.background == nil {
		log.Printf("[StickyNote %s] Background surface not found!", c.shortID())
		return
	}

	clr := config.PaletteColor(c.rng.Intn(config.PaletteSize()))
	c.applyBackgroundColor(clr)

	log.Printf("[StickyNote %s] Sticky note color set to: %s", c.shortID(), config.ColorHex(clr))
}

func (c *Controller) applyBackgroundColor(clr color.NRGBA) {
	c.background.SetBaseColor(clr)
	c.backgroundColor = clr
	c.hasBackgroundColor = true
}

// ensureTextColorIsBlack 文本始终为黑色（每次修改文本后重新设置）
func (c *Controller) ensureTextColorIsBlack() {
	if c.text == nil {
		return
	}
	c.text.SetFillColor(config.TextColor)
}

// SetTypewriterEffect 启用或禁用打字机效果
//
// 注意：动画进行中禁用时只停止计时器，不会补全目标文本，
// 便利贴会停留在已显示的部分文本上。
func (c *Controller) SetTypewriterEffect(enabled bool) {
	c.typewriterEnabled = enabled
	if !enabled {
		c.StopTypingAnimation()
	}
}

// SetTypingSpeed 设置每个字符的显示间隔（秒），不小于 0.01
// 对下一次字符 tick 生效；NaN 和无穷大被忽略
func (c *Controller) SetTypingSpeed(seconds float64) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		log.Printf("[StickyNote %s] Ignored invalid typing speed %v", c.shortID(), seconds)
		return
	}
	c.typingSpeed = max(config.MinTypingSpeed, seconds)
}

// ==========================================================================
// 只读访问器
// ==========================================================================

// State 返回打字机状态
func (c *Controller) State() TypingState {
	return c.state
}

// TextOptions 返回文本选项列表的副本（默认文本在最后）
func (c *Controller) TextOptions() []string {
	return slices.Clone(c.textOptions)
}

// CurrentIndex 返回当前文本选项索引
func (c *Controller) CurrentIndex() int {
	return c.currentTextIndex
}

// FontSize 返回文本表面的当前字号，没有文本表面时返回 0
func (c *Controller) FontSize() int {
	if c.text == nil {
		return 0
	}
	return c.text.FontSize()
}

// TypewriterEnabled 返回打字机效果是否启用
func (c *Controller) TypewriterEnabled() bool {
	return c.typewriterEnabled
}

// TypingSpeed 返回当前打字间隔（秒）
func (c *Controller) TypingSpeed() float64 {
	return c.typingSpeed
}

// BackgroundColor 返回最近一次设置的背景颜色
func (c *Controller) BackgroundColor() (color.NRGBA, bool) {
	return c.backgroundColor, c.hasBackgroundColor
}

// Config 返回控制器持有的配置副本
func (c *Controller) Config() *config.StickyNoteConfig {
	return c.cfg.Clone()
}

// cancelHandle 取消并清空句柄
func cancelHandle(h *Handle) {
	if *h != nil {
		(*h).Cancel()
		*h = nil
	}
}
