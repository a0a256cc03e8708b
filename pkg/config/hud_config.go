package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HUDConfig HUD 演示程序与按钮/条形指示器系统的配置
//
// 配置文件位置: data/hud.yaml（已嵌入二进制，可通过 --config 覆盖）
// 未在 YAML 中出现的字段保留 DefaultHUDConfig 中的默认值。
type HUDConfig struct {
	// Window 窗口配置
	Window WindowConfig `yaml:"window"`

	// Button 按钮交互配置
	Button ButtonConfig `yaml:"button"`

	// HintLabel 悬停提示标签配置
	HintLabel HintLabelConfig `yaml:"hintLabel"`

	// Font 标签字体配置
	Font FontConfig `yaml:"font"`

	// Sound 音效配置
	Sound SoundConfig `yaml:"sound"`

	// Bars 条形指示器布局（出现时整体替换默认列表）
	Bars []BarLayoutConfig `yaml:"bars"`
}

// WindowConfig 窗口尺寸与标题
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ButtonConfig 按钮交互参数
type ButtonConfig struct {
	// ClickCooldown 点击后按钮保持按下外观、不再响应的时间（秒）
	ClickCooldown float64 `yaml:"clickCooldown"`

	// DisabledTint 禁用按钮的颜色缩放比例（0.5 表示变灰一半）
	DisabledTint float64 `yaml:"disabledTint"`
}

// HintLabelConfig 悬停提示标签的位置与颜色
type HintLabelConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"` // 十六进制颜色，如 "004290"
}

// FontConfig 字体配置
type FontConfig struct {
	// Path TTF/OTF 字体路径，为空时使用内置的 Go Regular 字体
	Path string `yaml:"path"`
	// Size 字号（像素）
	Size float64 `yaml:"size"`
}

// SoundConfig 音效配置
type SoundConfig struct {
	// ButtonClick 按钮点击音效路径（.ogg/.wav），为空时不播放
	ButtonClick string `yaml:"buttonClick"`
}

// BarLayoutConfig 单个条形指示器的布局
type BarLayoutConfig struct {
	ID          string  `yaml:"id"`          // 唯一标识，场景通过它绑定数值
	Text        string  `yaml:"text"`        // 标签文字
	X           float64 `yaml:"x"`           // 标签左上角 X
	Y           float64 `yaml:"y"`           // 标签左上角 Y
	TextColor   string  `yaml:"textColor"`   // 十六进制颜色
	AnimID      string  `yaml:"animId"`      // "满"图标动画 ID
	AnimIDEmpty string  `yaml:"animIdEmpty"` // "空"图标动画 ID
	Layer       int     `yaml:"layer"`       // 绘制层级，小的先画
	Max         int     `yaml:"max"`         // 最大值，空图标数 = Max - 当前值
	Initial     int     `yaml:"initial"`     // 初始值
}

// 默认值
const (
	DefaultWindowWidth   = 640
	DefaultWindowHeight  = 360
	DefaultClickCooldown = 0.15
	DefaultDisabledTint  = 0.5
	DefaultHintLabelX    = 10.0
	DefaultHintLabelY    = 6.0
	DefaultHintColor     = "004290"
	DefaultFontSize      = 14.0
)

// DefaultHUDConfig 返回默认配置
func DefaultHUDConfig() *HUDConfig {
	return &HUDConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  "HUD Demo",
		},
		Button: ButtonConfig{
			ClickCooldown: DefaultClickCooldown,
			DisabledTint:  DefaultDisabledTint,
		},
		HintLabel: HintLabelConfig{
			X:     DefaultHintLabelX,
			Y:     DefaultHintLabelY,
			Color: DefaultHintColor,
		},
		Font: FontConfig{
			Size: DefaultFontSize,
		},
		Bars: []BarLayoutConfig{
			{
				ID: "health", Text: "HP ", X: 10, Y: 30, TextColor: "ffffff",
				AnimID: "heart", AnimIDEmpty: "heart-empty", Layer: 1, Max: 10, Initial: 7,
			},
			{
				ID: "ammo", Text: "Ammo ", X: 10, Y: 60, TextColor: "ffd24a",
				AnimID: "ammo", AnimIDEmpty: "ammo-empty", Layer: 0, Max: 12, Initial: 12,
			},
		},
	}
}

// Bar 按 ID 查找条形指示器布局
func (c *HUDConfig) Bar(id string) (BarLayoutConfig, bool) {
	for _, bar := range c.Bars {
		if bar.ID == id {
			return bar, true
		}
	}
	return BarLayoutConfig{}, false
}

// LoadHUDConfig 从文件加载 HUD 配置
//
// 参数:
//   - path: 配置文件路径（如 "data/hud.yaml"）
//
// 返回:
//   - *HUDConfig: 加载成功后的配置（缺省字段使用默认值）
//   - error: 读取、解析或校验失败时返回错误
func LoadHUDConfig(path string) (*HUDConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hud config: %w", err)
	}

	return ParseHUDConfig(data)
}

// ParseHUDConfig 解析 YAML 格式的 HUD 配置
func ParseHUDConfig(data []byte) (*HUDConfig, error) {
	config := DefaultHUDConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse hud config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hud config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *HUDConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive: %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Button.ClickCooldown < 0 {
		return fmt.Errorf("button clickCooldown must not be negative: %.3f", c.Button.ClickCooldown)
	}

	if c.Button.DisabledTint < 0 || c.Button.DisabledTint > 1 {
		return fmt.Errorf("button disabledTint must be within [0, 1]: %.2f", c.Button.DisabledTint)
	}

	if c.Font.Size <= 0 {
		return fmt.Errorf("font size must be positive: %.1f", c.Font.Size)
	}

	seen := make(map[string]bool, len(c.Bars))
	for i, bar := range c.Bars {
		if bar.ID == "" {
			return fmt.Errorf("bars[%d]: id is required", i)
		}
		if seen[bar.ID] {
			return fmt.Errorf("bars[%d]: duplicate id %q", i, bar.ID)
		}
		seen[bar.ID] = true

		if bar.Max < 0 || bar.Initial < 0 || bar.Initial > bar.Max {
			return fmt.Errorf("bar %q: initial must be within [0, max]: initial=%d max=%d", bar.ID, bar.Initial, bar.Max)
		}
	}

	return nil
}
