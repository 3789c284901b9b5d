//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.stickynote -o build/android/stickynote.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/StickyNote.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/stickynote/pkg/app"
	"github.com/gonewx/stickynote/pkg/embedded"
)

var noteApp *app.App

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	var err error
	noteApp, err = app.NewApp(app.Config{
		Verbose: true, // Enable verbose logging for debugging
	})
	if err != nil {
		log.Fatalf("便利贴初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(noteApp)
}

// SetText 供宿主平台推送外部文本（如通知内容）
func SetText(text string) {
	if noteApp == nil {
		return
	}
	noteApp.NoteScene().Controller().SetTextFromExternalSource(text)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
