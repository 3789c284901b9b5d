// Command stickynote 打开一个便利贴窗口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose            Enable verbose logging
//	--config <yaml>      Sticky note config file (default: embedded data/sticky_note.yaml)
//	--snapshot-dir <dir> Directory for PNG snapshots (P key)
//
// Controls:
//
//	Click    - Next text option
//	R        - Reset to default text
//	C        - Randomize color
//	T        - Toggle typewriter effect
//	+/-      - Typing speed
//	Ctrl+V   - Paste clipboard text
//	P        - Export PNG snapshot
//	F1       - Debug info
//	F11      - Fullscreen
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/stickynote/pkg/app"
	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag     = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag      = flag.String("config", "", "Sticky note config file (default: embedded data/sticky_note.yaml)")
	snapshotDirFlag = flag.String("snapshot-dir", "", "Directory for PNG snapshots")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	noteApp, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		ConfigPath:  *configFlag,
		SnapshotDir: *snapshotDirFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Sticky Note")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(noteApp); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
