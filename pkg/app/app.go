// Package app 提供 HUD 演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：配置加载、资源管理器、设置、场景管理。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/hudkit/pkg/config"
	"github.com/decker502/hudkit/pkg/embedded"
	"github.com/decker502/hudkit/pkg/game"
	"github.com/decker502/hudkit/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// AppName gdata 存储使用的应用名
	AppName = "hudkit"

	// DefaultConfigPath 默认 HUD 配置（嵌入二进制）
	DefaultConfigPath = "data/hud.yaml"
	// DefaultResourcesPath 默认资源配置（嵌入二进制）
	DefaultResourcesPath = "data/resources.yaml"

	sampleRate = 48000
	deltaTime  = 1.0 / 60.0
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath HUD 配置文件路径，为空时使用 DefaultConfigPath
	ConfigPath string
	// ResourcesPath 资源配置文件路径，为空时使用 DefaultResourcesPath
	ResourcesPath string
}

// App 是 HUD 演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	hudConfig    *config.HUDConfig
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

	hudConfig := loadHUDConfig(cfg.ConfigPath)

	audioContext := audio.NewContext(sampleRate)
	resourceManager := game.NewResourceManager(audioContext)
	resourceManager.RegisterDefaultFrames()

	resourcesPath := cfg.ResourcesPath
	if resourcesPath == "" {
		resourcesPath = DefaultResourcesPath
	}
	if err := resourceManager.LoadResourceConfig(resourcesPath); err != nil {
		// 没有资源配置时使用内置帧
		log.Printf("[App] Warning: %v (using built-in frames)", err)
	}

	settings := game.OpenSettingsManager(AppName)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		if name != scenes.SceneHUD {
			return nil
		}
		scene, err := scenes.NewHUDScene(resourceManager, settings, hudConfig, nil)
		if err != nil {
			log.Printf("[App] 错误: 无法创建 HUD 场景: %v", err)
			return nil
		}
		return scene
	})

	sceneManager.Load(scenes.SceneHUD)
	if sceneManager.GetCurrentScene() == nil {
		return nil, fmt.Errorf("HUD 场景创建失败")
	}

	return &App{
		sceneManager: sceneManager,
		hudConfig:    hudConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadHUDConfig 按 指定路径 → 嵌入默认配置 → 内置默认值 的顺序加载配置
func loadHUDConfig(path string) *config.HUDConfig {
	if path != "" {
		hudConfig, err := config.LoadHUDConfig(path)
		if err == nil {
			log.Printf("[App] Loaded HUD config: %s", path)
			return hudConfig
		}
		log.Printf("[App] Warning: %v (falling back to %s)", err, DefaultConfigPath)
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		log.Printf("[App] Warning: embedded HUD config unavailable: %v (using defaults)", err)
		return config.DefaultHUDConfig()
	}

	hudConfig, err := config.ParseHUDConfig(data)
	if err != nil {
		log.Printf("[App] Warning: %v (using defaults)", err)
		return config.DefaultHUDConfig()
	}
	return hudConfig
}

// WindowSize 返回配置的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.hudConfig.Window.Width, a.hudConfig.Window.Height
}

// WindowTitle 返回配置的窗口标题
func (a *App) WindowTitle() string {
	return a.hudConfig.Window.Title
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色
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
	return a.WindowSize()
}

// Close 关闭当前场景（保存设置）
func (a *App) Close() {
	a.sceneManager.Close()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
