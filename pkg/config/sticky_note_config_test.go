package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/stickynote/pkg/embedded"
)

// TestDefaultStickyNoteConfig 测试默认配置值
func TestDefaultStickyNoteConfig(t *testing.T) {
	cfg := DefaultStickyNoteConfig()

	if cfg.DefaultText != "Click to edit..." {
		t.Errorf("DefaultText = %q", cfg.DefaultText)
	}
	if cfg.MaxFontSize != 32 || cfg.MinFontSize != 12 {
		t.Errorf("font range = [%d, %d], want [12, 32]", cfg.MinFontSize, cfg.MaxFontSize)
	}
	if cfg.MaxCharacters != 50 {
		t.Errorf("MaxCharacters = %d, want 50", cfg.MaxCharacters)
	}
	if !cfg.EnableEditing || !cfg.RandomizeColorOnStart || !cfg.EnableTypewriterEffect {
		t.Error("feature toggles should default to true")
	}
	if cfg.TypingSpeedSeconds != 0.05 {
		t.Errorf("TypingSpeedSeconds = %v, want 0.05", cfg.TypingSpeedSeconds)
	}
	if cfg.CursorBlinkSpeed != 0.3 {
		t.Errorf("CursorBlinkSpeed = %v, want 0.3", cfg.CursorBlinkSpeed)
	}
	if len(cfg.TextOptions) != 8 {
		t.Errorf("TextOptions has %d entries, want 8", len(cfg.TextOptions))
	}
}

// TestParseStickyNoteConfig 测试 YAML 解析与默认值叠加
func TestParseStickyNoteConfig(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, cfg *StickyNoteConfig)
	}{
		{
			name: "部分字段覆盖",
			yaml: "max_characters: 10\nenable_typewriter_effect: false\n",
			check: func(t *testing.T, cfg *StickyNoteConfig) {
				if cfg.MaxCharacters != 10 {
					t.Errorf("MaxCharacters = %d, want 10", cfg.MaxCharacters)
				}
				if cfg.EnableTypewriterEffect {
					t.Error("EnableTypewriterEffect should be false")
				}
				if cfg.MaxFontSize != 32 {
					t.Errorf("MaxFontSize = %d, want default 32", cfg.MaxFontSize)
				}
			},
		},
		{
			name: "非法数值被钳制",
			yaml: "typing_speed_seconds: -1\ncursor_blink_speed: 0\nmin_font_size: 40\nmax_font_size: 20\nmax_characters: 0\n",
			check: func(t *testing.T, cfg *StickyNoteConfig) {
				if cfg.TypingSpeedSeconds != MinTypingSpeed {
					t.Errorf("TypingSpeedSeconds = %v, want %v", cfg.TypingSpeedSeconds, MinTypingSpeed)
				}
				if cfg.CursorBlinkSpeed != MinCursorBlinkSpeed {
					t.Errorf("CursorBlinkSpeed = %v, want %v", cfg.CursorBlinkSpeed, MinCursorBlinkSpeed)
				}
				if cfg.MaxFontSize != 40 {
					t.Errorf("MaxFontSize = %d, want clamped to min 40", cfg.MaxFontSize)
				}
				if cfg.MaxCharacters != 1 {
					t.Errorf("MaxCharacters = %d, want 1", cfg.MaxCharacters)
				}
			},
		},
		{
			name: "NaN 和无穷大间隔",
			yaml: "typing_speed_seconds: .nan\ncursor_blink_speed: .inf\n",
			check: func(t *testing.T, cfg *StickyNoteConfig) {
				if cfg.TypingSpeedSeconds != MinTypingSpeed {
					t.Errorf("TypingSpeedSeconds = %v, want %v", cfg.TypingSpeedSeconds, MinTypingSpeed)
				}
				if cfg.CursorBlinkSpeed != MinCursorBlinkSpeed {
					t.Errorf("CursorBlinkSpeed = %v, want %v", cfg.CursorBlinkSpeed, MinCursorBlinkSpeed)
				}
			},
		},
		{
			name: "自定义文本选项",
			yaml: "default_text: Hello\ntext_options: [A, B]\n",
			check: func(t *testing.T, cfg *StickyNoteConfig) {
				if cfg.DefaultText != "Hello" {
					t.Errorf("DefaultText = %q, want Hello", cfg.DefaultText)
				}
				if len(cfg.TextOptions) != 2 || cfg.TextOptions[0] != "A" {
					t.Errorf("TextOptions = %v, want [A B]", cfg.TextOptions)
				}
			},
		},
		{
			name: "空默认文本回退",
			yaml: "default_text: \"\"\n",
			check: func(t *testing.T, cfg *StickyNoteConfig) {
				if cfg.DefaultText != DefaultNoteText {
					t.Errorf("DefaultText = %q, want %q", cfg.DefaultText, DefaultNoteText)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseStickyNoteConfig([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseStickyNoteConfig() error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

// TestParseStickyNoteConfigInvalidYAML 测试非法 YAML 返回错误
func TestParseStickyNoteConfigInvalidYAML(t *testing.T) {
	if _, err := ParseStickyNoteConfig([]byte("max_font_size: [oops")); err == nil {
		t.Error("expected parse error")
	}
}

// TestLoadStickyNoteConfigFile 测试从磁盘加载
func TestLoadStickyNoteConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.yaml")
	if err := os.WriteFile(path, []byte("max_font_size: 48\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadStickyNoteConfig(path)
	if err != nil {
		t.Fatalf("LoadStickyNoteConfig() error: %v", err)
	}
	if cfg.MaxFontSize != 48 {
		t.Errorf("MaxFontSize = %d, want 48", cfg.MaxFontSize)
	}

	if _, err := LoadStickyNoteConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestLoadStickyNoteConfigEmbedded 测试优先从嵌入资源加载
func TestLoadStickyNoteConfigEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		StickyNoteConfigPath: &fstest.MapFile{Data: []byte("default_text: Embedded\n")},
	})
	defer embedded.Reset()

	cfg, err := LoadStickyNoteConfig(StickyNoteConfigPath)
	if err != nil {
		t.Fatalf("LoadStickyNoteConfig() error: %v", err)
	}
	if cfg.DefaultText != "Embedded" {
		t.Errorf("DefaultText = %q, want Embedded", cfg.DefaultText)
	}
}

// TestLoadStickyNoteConfigOrDefault 测试启动配置的退回逻辑
func TestLoadStickyNoteConfigOrDefault(t *testing.T) {
	embedded.Init(fstest.MapFS{
		StickyNoteConfigPath: &fstest.MapFile{Data: []byte("max_characters: 20\n")},
	})
	defer embedded.Reset()

	// 未指定路径：读取内置配置
	if cfg := LoadStickyNoteConfigOrDefault(""); cfg.MaxCharacters != 20 {
		t.Errorf("MaxCharacters = %d, want 20 from embedded config", cfg.MaxCharacters)
	}

	// 指定的文件不存在：退回默认配置
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if cfg := LoadStickyNoteConfigOrDefault(missing); cfg.MaxCharacters != DefaultStickyNoteConfig().MaxCharacters {
		t.Errorf("MaxCharacters = %d, want default", cfg.MaxCharacters)
	}

	// 指定的文件无法解析：退回默认配置
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("max_characters: [oops"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if cfg := LoadStickyNoteConfigOrDefault(bad); cfg.DefaultText != DefaultNoteText {
		t.Errorf("DefaultText = %q, want default", cfg.DefaultText)
	}
}

// TestCloneIsDeep 测试 Clone 不共享文本选项切片
func TestCloneIsDeep(t *testing.T) {
	cfg := DefaultStickyNoteConfig()
	clone := cfg.Clone()
	clone.TextOptions[0] = "changed"

	if cfg.TextOptions[0] == "changed" {
		t.Error("Clone should copy TextOptions")
	}
}

// TestStickyNoteColors 测试调色板只读与取值
func TestStickyNoteColors(t *testing.T) {
	colors := StickyNoteColors()
	if len(colors) != 10 || PaletteSize() != 10 {
		t.Fatalf("palette size = %d, want 10", len(colors))
	}

	// 经典浅黄 (1.0, 1.0, 0.7)
	if colors[0].R != 255 || colors[0].G != 255 || colors[0].B < 175 || colors[0].B > 180 || colors[0].A != 255 {
		t.Errorf("first color = %+v, want light yellow", colors[0])
	}

	colors[0].R = 0
	if PaletteColor(0).R != 255 {
		t.Error("StickyNoteColors should return a copy")
	}

	if PaletteColor(-1) != PaletteColor(0) || PaletteColor(99) != PaletteColor(0) {
		t.Error("out of range index should fall back to the first color")
	}

	if TextColor.R != 0 || TextColor.G != 0 || TextColor.B != 0 || TextColor.A != 255 {
		t.Errorf("TextColor = %+v, want opaque black", TextColor)
	}
}

// TestColorHex 测试颜色十六进制格式化
func TestColorHex(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want string
	}{
		{name: "黑色", in: TextColor, want: "#000000"},
		{name: "白色", in: color.White, want: "#ffffff"},
		{name: "浅蓝", in: color.NRGBA{R: 179, G: 230, B: 255, A: 255}, want: "#b3e6ff"},
		{name: "完全透明", in: color.NRGBA{R: 10, A: 0}, want: "#000000"},
		{name: "nil", in: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorHex(tt.in); got != tt.want {
				t.Errorf("ColorHex() = %q, want %q", got, tt.want)
			}
		})
	}
}
