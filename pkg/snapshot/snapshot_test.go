package snapshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/stickynote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBackground(t *testing.T) {
	bg := config.PaletteColor(3)
	img, err := Render(Snapshot{Text: "Call mom", FontSize: 24, Background: bg, Padding: 10}, 200, 120)
	require.NoError(t, err)

	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())

	// 底部内边距区域只有背景色
	got := color.NRGBAModel.Convert(img.At(100, 115)).(color.NRGBA)
	assert.Equal(t, bg, got)
}

func TestRenderDrawsText(t *testing.T) {
	bg := config.PaletteColor(0)
	img, err := Render(Snapshot{Text: "WWWWWWWW", FontSize: 32, Background: bg, Padding: 10}, 240, 120)
	require.NoError(t, err)

	dark := 0
	for y := 10; y < 60; y++ {
		for x := 10; x < 230; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R < 80 && c.G < 80 && c.B < 80 {
				dark++
			}
		}
	}
	assert.Positive(t, dark, "expected black glyph pixels in the text area")
}

func TestRenderInvalidSize(t *testing.T) {
	_, err := Render(Snapshot{Text: "x"}, 0, 100)
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.png")
	require.NoError(t, SavePNG(Snapshot{Text: "Buy groceries", FontSize: 20, Padding: 8}, 160, 160, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
}

func TestFromController(t *testing.T) {
	c := stickynote.NewController(stickynote.Host{}, nil)
	snap := FromController(c)

	assert.Equal(t, "", snap.Text)
	assert.Equal(t, config.PaletteColor(0), snap.Background)
	assert.Equal(t, config.TextColor, snap.TextColor)
	assert.Equal(t, config.NotePadding, snap.Padding)
}
