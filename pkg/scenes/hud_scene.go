package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/decker502/hudkit/pkg/components"
	"github.com/decker502/hudkit/pkg/config"
	"github.com/decker502/hudkit/pkg/ecs"
	"github.com/decker502/hudkit/pkg/entities"
	"github.com/decker502/hudkit/pkg/game"
	"github.com/decker502/hudkit/pkg/render"
	"github.com/decker502/hudkit/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 按钮布局
const (
	barButtonMarginRight = 60.0 // "-" 按钮距窗口右边缘的距离
	barButtonGap         = 26.0 // "-" 与 "+" 按钮的水平间距
	bottomRowMargin      = 28.0 // 底部文字按钮距窗口下边缘的距离
	refillDelay          = 0.5  // 悬停多久后开始自动补满（秒）
)

// 文字按钮颜色
const (
	labelColorDefault = "e0e0e0"
	labelColorHover   = "ffd24a"
	labelColorClicked = "ff7a3c"
)

var hudBackground = color.RGBA{R: 24, G: 28, B: 36, A: 255}

// hudBar 条形指示器及其最大值
type hudBar struct {
	layout config.BarLayoutConfig
	bar    *components.BarComponent
}

// HUDScene HUD 演示场景
//
// 包含：
//   - 配置中的每个条形指示器，右侧各有 "-" / "+" 动画按钮
//   - "Refill" 自动点击按钮：悬停一段时间后持续为所有条加 1
//   - "Hints" 开关按钮：切换并保存提示显示设置
//
// 系统执行顺序：ClickableSystem → ButtonSystem；绘制顺序：条 → 动画按钮 → 文字（含提示标签）
type HUDScene struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	settings        *game.SettingsManager
	config          *config.HUDConfig
	font            text.Face

	clickableSystem   *systems.ClickableSystem
	buttonSystem      *systems.ButtonSystem
	barRenderSystem   *systems.BarRenderSystem
	animRenderSystem  *systems.AnimRenderSystem
	labelRenderSystem *systems.LabelRenderSystem

	bars        []*hudBar
	hintsToggle *components.LabelComponent
}

// NewHUDScene 创建 HUD 演示场景
//
// 参数：
//   - rm: 资源管理器（动画帧、字体、音效）
//   - settings: 设置管理器（提示开关、音效）
//   - cfg: HUD 配置
//   - pointer: 指针输入，nil 表示使用鼠标/触摸
func NewHUDScene(
	rm *game.ResourceManager,
	settings *game.SettingsManager,
	cfg *config.HUDConfig,
	pointer systems.PointerSource,
) (*HUDScene, error) {
	font, err := loadHUDFont(rm, cfg.Font)
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	scene := &HUDScene{
		entityManager:     em,
		resourceManager:   rm,
		settings:          settings,
		config:            cfg,
		font:              font,
		clickableSystem:   systems.NewClickableSystem(em, pointer),
		buttonSystem:      systems.NewButtonSystem(em, cfg.Button, cfg.HintLabel),
		barRenderSystem:   systems.NewBarRenderSystem(em, rm),
		animRenderSystem:  systems.NewAnimRenderSystem(em, rm),
		labelRenderSystem: systems.NewLabelRenderSystem(em),
	}

	scene.buttonSystem.SetHintsEnabled(settings.GetSettings().ShowHints)
	scene.initClickSound()

	for i, layout := range cfg.Bars {
		if err := scene.addBar(layout); err != nil {
			return nil, fmt.Errorf("failed to create bar %d: %w", i, err)
		}
	}

	if err := scene.addBottomButtons(); err != nil {
		return nil, err
	}

	log.Printf("[HUDScene] Created with %d bars", len(scene.bars))
	return scene, nil
}

// loadHUDFont 加载配置的字体，失败时回退到内置字体
func loadHUDFont(rm *game.ResourceManager, fontCfg config.FontConfig) (text.Face, error) {
	if fontCfg.Path != "" {
		face, err := rm.LoadFont(fontCfg.Path, fontCfg.Size)
		if err == nil {
			return face, nil
		}
		log.Printf("[HUDScene] Warning: %v (using built-in font)", err)
	}

	face, err := rm.DefaultFont(fontCfg.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	return face, nil
}

// initClickSound 加载按钮点击音效，失败时静音
func (s *HUDScene) initClickSound() {
	path := s.config.Sound.ButtonClick
	if path == "" {
		return
	}

	if resolved, ok := s.resourceManager.ResolvePath(path); ok {
		path = resolved
	}

	player, err := s.resourceManager.LoadSoundEffect(path)
	if err != nil {
		log.Printf("[HUDScene] Warning: click sound unavailable: %v", err)
		return
	}
	s.buttonSystem.SetClickSound(game.NewSoundEffect(player, s.settings))
}

// addBar 创建条形指示器和它的 "-" / "+" 按钮
func (s *HUDScene) addBar(layout config.BarLayoutConfig) error {
	_, bar, err := entities.NewBar(s.entityManager, layout)
	if err != nil {
		return err
	}
	hb := &hudBar{layout: layout, bar: bar}
	s.bars = append(s.bars, hb)

	name := strings.TrimSpace(layout.Text)
	if name == "" {
		name = layout.ID
	}

	buttonX := float64(s.config.Window.Width) - barButtonMarginRight
	if _, err := entities.NewAnimButton(s.entityManager, s.resourceManager, buttonX, layout.Y, entities.ButtonOptions{
		Default: game.FrameMinus,
		Hover:   game.FrameMinusHover,
		Clicked: game.FrameMinusClicked,
		Hint:    "Decrease " + name,
		Enabled: func() bool { return hb.bar.Value > 0 },
		OnClick: func() { hb.add(-1) },
	}); err != nil {
		return err
	}

	if _, err := entities.NewAnimButton(s.entityManager, s.resourceManager, buttonX+barButtonGap, layout.Y, entities.ButtonOptions{
		Default: game.FramePlus,
		Hover:   game.FramePlusHover,
		Clicked: game.FramePlusClicked,
		Hint:    "Increase " + name,
		Enabled: hb.canGrow,
		OnClick: func() { hb.add(1) },
	}); err != nil {
		return err
	}

	return nil
}

// addBottomButtons 创建底部的 Refill 和 Hints 文字按钮
func (s *HUDScene) addBottomButtons() error {
	y := float64(s.config.Window.Height) - bottomRowMargin

	if _, _, err := entities.NewLabelButton(s.entityManager, s.font, 10, y, "Refill", entities.ButtonOptions{
		Default:        labelColorDefault,
		Hover:          labelColorHover,
		Clicked:        labelColorClicked,
		Hint:           "Hover to refill all bars",
		Enabled:        s.anyBarCanGrow,
		OnClick:        s.refillStep,
		Autoclick:      true,
		AutoclickDelay: refillDelay,
	}); err != nil {
		return err
	}

	_, toggle, err := entities.NewLabelButton(s.entityManager, s.font, 90, y, hintsToggleText(s.settings.GetSettings().ShowHints), entities.ButtonOptions{
		Default: labelColorDefault,
		Hover:   labelColorHover,
		Clicked: labelColorClicked,
		Hint:    "Show or hide button hints",
		OnClick: s.toggleHints,
	})
	if err != nil {
		return err
	}
	s.hintsToggle = toggle

	return nil
}

func hintsToggleText(show bool) string {
	if show {
		return "Hints: on "
	}
	return "Hints: off"
}

// toggleHints 切换提示显示并保存设置
func (s *HUDScene) toggleHints() {
	show := s.settings.ToggleShowHints()
	s.buttonSystem.SetHintsEnabled(show)
	s.hintsToggle.Text = hintsToggleText(show)

	if err := s.settings.Save(); err != nil {
		log.Printf("[HUDScene] Warning: failed to save settings: %v", err)
	}
}

// refillStep 所有未满的条加 1
func (s *HUDScene) refillStep() {
	for _, hb := range s.bars {
		if hb.canGrow() {
			hb.add(1)
		}
	}
}

func (s *HUDScene) anyBarCanGrow() bool {
	for _, hb := range s.bars {
		if hb.canGrow() {
			return true
		}
	}
	return false
}

func (hb *hudBar) canGrow() bool {
	return hb.bar.Value < hb.layout.Max
}

// add 修改条的值，保持 Value + EmptyCount = Max
func (hb *hudBar) add(delta int) {
	value := hb.bar.Value + delta
	if value < 0 {
		value = 0
	}
	if value > hb.layout.Max {
		value = hb.layout.Max
	}
	hb.bar.Value = value
	hb.bar.EmptyCount = hb.layout.Max - value
}

// Bar 返回指定 ID 的条形指示器组件
func (s *HUDScene) Bar(id string) (*components.BarComponent, bool) {
	for _, hb := range s.bars {
		if hb.layout.ID == id {
			return hb.bar, true
		}
	}
	return nil, false
}

// HintText 返回当前提示标签文字
func (s *HUDScene) HintText() string {
	return s.buttonSystem.HintText()
}

// Update 更新交互状态和按钮
func (s *HUDScene) Update(deltaTime float64) {
	s.clickableSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制 HUD
func (s *HUDScene) Draw(screen *ebiten.Image) {
	screen.Fill(hudBackground)
	s.DrawTo(render.NewScreenBatch(screen, s.font))
}

// DrawTo 使用指定的绘制批次绘制 HUD
func (s *HUDScene) DrawTo(batch render.Batch) {
	s.barRenderSystem.Draw(batch)
	s.animRenderSystem.Draw(batch)
	s.labelRenderSystem.Draw(batch)
}

// Close 保存设置
func (s *HUDScene) Close() error {
	return s.settings.Save()
}
