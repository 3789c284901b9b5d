// Command stickynote-term 在终端中预览便利贴
//
// Usage:
//
//	stickynote-term [flags]
//
// Flags:
//
//	--config <yaml>    Sticky note config file (default: data/sticky_note.yaml or built-in defaults)
//	--text <string>    Text to show after start-up
//	--no-typewriter    Disable the typewriter effect
//	--speed <seconds>  Seconds per revealed character
//	--export <png>     Render the settled note to a PNG and exit (no TUI)
//	--verbose          Write logs to stickynote-term.log
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gonewx/stickynote/pkg/config"
	"github.com/gonewx/stickynote/pkg/snapshot"
	"github.com/urfave/cli/v2"
)

// Version 版本号
const Version = "0.1.0"

// exportStep / exportMaxSteps 无界面导出时推进计时器的步长和步数上限
const (
	exportStep     = 1.0 / 30.0
	exportMaxSteps = 100000
)

func main() {
	if err := newCLIApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newCLIApp creates the CLI application.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:    "stickynote-term",
		Usage:   "Preview a sticky note in the terminal",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Sticky note config file"},
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "Text to show after start-up"},
			&cli.BoolFlag{Name: "no-typewriter", Usage: "Disable the typewriter effect"},
			&cli.Float64Flag{Name: "speed", Usage: "Seconds per revealed character"},
			&cli.StringFlag{Name: "export", Aliases: []string{"o"}, Usage: "Render the settled note to a PNG and exit"},
			&cli.BoolFlag{Name: "verbose", Usage: "Write logs to stickynote-term.log"},
		},
		Action: run,
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func run(c *cli.Context) error {
	exportPath := c.String("export")

	if c.Bool("verbose") {
		if exportPath != "" {
			log.SetOutput(c.App.ErrWriter)
		} else {
			f, err := tea.LogToFile("stickynote-term.log", "")
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer f.Close()
		}
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := noteConfig(c)
	note := newTerminalNote(cfg, nil)
	if text := c.String("text"); text != "" {
		note.controller.SetCustomText(text)
	}

	if exportPath != "" {
		return exportNote(note, exportPath, c.App.Writer)
	}

	p := tea.NewProgram(newModel(note), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

// noteConfig 加载配置并应用命令行覆盖
func noteConfig(c *cli.Context) *config.StickyNoteConfig {
	cfg := config.LoadStickyNoteConfigOrDefault(c.String("config"))
	if c.Bool("no-typewriter") {
		cfg.EnableTypewriterEffect = false
	}
	if c.IsSet("speed") {
		cfg.TypingSpeedSeconds = c.Float64("speed")
	}
	cfg.Normalize()
	return cfg
}

// exportNote 推进到动画结束后导出 PNG
func exportNote(note *terminalNote, path string, out io.Writer) error {
	if !note.runUntilSettled(exportStep, exportMaxSteps) {
		return fmt.Errorf("note did not settle after %d steps", exportMaxSteps)
	}

	snap := snapshot.FromController(note.controller)
	if err := snapshot.SavePNG(snap, int(config.NoteWidth), int(config.NoteHeight), path); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved %s\n", path)
	return nil
}
