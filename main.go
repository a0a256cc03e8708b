package main

import (
	"flag"
	"log"

	"github.com/decker502/hudkit/pkg/app"
	"github.com/decker502/hudkit/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose       = flag.Bool("verbose", false, "显示详细调试信息")
	configPath    = flag.String("config", "", "HUD 配置文件路径（默认使用内置 data/hud.yaml）")
	resourcesPath = flag.String("resources", "", "资源配置文件路径（默认使用内置 data/resources.yaml）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		ConfigPath:    *configPath,
		ResourcesPath: *resourcesPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	width, height := gameApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(gameApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	gameApp.Close()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
