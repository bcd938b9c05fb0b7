//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前先复制资源：
//
//	go generate -tags mobile ./mobile
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.portfolio -o build/android/portfolio.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Portfolio.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/portfolio/pkg/app"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端没有配置文件，使用默认配置；窗口尺寸只作为首次 Layout 之前的初始值
	cfg := app.Config{
		Verbose:  true,
		Settings: config.DefaultConfig(),
	}

	pageApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("页面初始化失败: %v", err)
	}

	mobile.SetGame(pageApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
