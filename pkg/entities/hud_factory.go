package entities

import (
	"fmt"

	"github.com/decker502/hudkit/pkg/components"
	"github.com/decker502/hudkit/pkg/config"
	"github.com/decker502/hudkit/pkg/ecs"
	"github.com/decker502/hudkit/pkg/render"
	"github.com/decker502/hudkit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonOptions 按钮的外观与行为
//
// Default/Hover/Clicked 对动画按钮是动画 ID，对文字按钮是十六进制颜色
type ButtonOptions struct {
	Default string
	Hover   string
	Clicked string

	Hint    string
	Enabled func() bool
	OnClick func()

	// Autoclick 悬停时自动点击，AutoclickDelay 为首次自动点击前的等待时间（秒）
	Autoclick      bool
	AutoclickDelay float64
}

// NewBar 按布局配置创建条形指示器实体
//
// 参数：
//   - em: 实体管理器
//   - layout: 条形指示器布局（位置、文字、图标、层级）
//
// 返回：
//   - 实体ID
//   - 条形指示器组件（调用方通过它修改 Value/EmptyCount）
//   - 错误信息（颜色无法解析时）
func NewBar(em *ecs.EntityManager, layout config.BarLayoutConfig) (ecs.EntityID, *components.BarComponent, error) {
	textColor, err := utils.ParseHexColor(layout.TextColor)
	if err != nil {
		return 0, nil, fmt.Errorf("bar %q: invalid text color: %w", layout.ID, err)
	}

	bar := &components.BarComponent{
		Value:       layout.Initial,
		EmptyCount:  layout.Max - layout.Initial,
		Text:        layout.Text,
		TextColor:   textColor,
		AnimID:      layout.AnimID,
		AnimIDEmpty: layout.AnimIDEmpty,
		Layer:       layout.Layer,
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: layout.X, Y: layout.Y})
	ecs.AddComponent(em, entity, bar)

	return entity, bar, nil
}

// NewAnimButton 创建以动画帧为外观的按钮实体
// 点击范围取默认外观关键帧的尺寸
func NewAnimButton(
	em *ecs.EntityManager,
	animations render.AnimationLibrary,
	x, y float64,
	opts ButtonOptions,
) (ecs.EntityID, error) {
	frame, ok := animations.KeyFrame(opts.Default)
	if !ok || frame == nil {
		return 0, fmt.Errorf("button animation not found: %s", opts.Default)
	}
	bounds := frame.Bounds()

	entity := newButtonEntity(em, x, y, float64(bounds.Dx()), float64(bounds.Dy()), opts)
	ecs.AddComponent(em, entity, components.NewAnimComponent(opts.Default))

	return entity, nil
}

// NewLabelButton 创建以文字为外观的按钮实体
// 点击范围取文字的测量尺寸
func NewLabelButton(
	em *ecs.EntityManager,
	font text.Face,
	x, y float64,
	label string,
	opts ButtonOptions,
) (ecs.EntityID, *components.LabelComponent, error) {
	labelColor, err := utils.ParseHexColor(opts.Default)
	if err != nil {
		return 0, nil, fmt.Errorf("label button %q: invalid color: %w", label, err)
	}

	width, height := utils.MeasureText(label, font)

	labelComp := &components.LabelComponent{
		Text:  label,
		Color: labelColor,
	}

	entity := newButtonEntity(em, x, y, width, height, opts)
	ecs.AddComponent(em, entity, labelComp)

	return entity, labelComp, nil
}

// newButtonEntity 添加按钮共有的组件：位置、范围、可点击、按钮
func newButtonEntity(em *ecs.EntityManager, x, y, width, height float64, opts ButtonOptions) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.BoundsComponent{MaxX: width, MaxY: height})
	ecs.AddComponent(em, entity, &components.ClickableComponent{IsEnabled: true})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Enabled:           opts.Enabled,
		OnClick:           opts.OnClick,
		Autoclick:         opts.Autoclick,
		AutoclickCooldown: opts.AutoclickDelay,
		AnimDefault:       opts.Default,
		AnimHover:         opts.Hover,
		AnimClicked:       opts.Clicked,
		Hint:              opts.Hint,
	})

	return entity
}
