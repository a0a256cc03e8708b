package systems

import (
	"image/color"
	"log"

	"github.com/decker502/hudkit/pkg/components"
	"github.com/decker502/hudkit/pkg/config"
	"github.com/decker502/hudkit/pkg/ecs"
	"github.com/decker502/hudkit/pkg/utils"
)

// tintActive 可用按钮的动画染色（不染色）
var tintActive = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// SoundPlayer 点击音效
type SoundPlayer interface {
	Play()
}

// ButtonSystem 按钮交互系统
// 根据指针交互状态（ClickableComponent.State）和按钮可用性更新按钮外观，并触发点击回调
//
// 每帧处理流程：
//  1. 清空提示标签文字
//  2. 按顺序处理每个按钮：冷却中 → 按下外观；禁用 → 默认外观并变灰；
//     悬停 → 悬停外观并写入提示（自动点击按钮在等待结束后直接点击）；按下 → 点击
//
// 同一帧有多个按钮悬停时，最后处理的按钮的提示生效。
//
// 注意：指针命中检测由 ClickableSystem 负责，本系统只消费其结果
type ButtonSystem struct {
	source ClickSource

	clickCooldown float64
	disabledTint  float64

	// 全局唯一的提示标签实体
	hintLabelEntity ecs.EntityID
	hintLabel       *components.LabelComponent
	hintsEnabled    bool

	clickSound SoundPlayer

	// 已报告过颜色解析错误的按钮，避免每帧刷日志
	badColorReported map[ecs.EntityID]bool
}

// NewButtonSystem 创建按钮交互系统，并创建提示标签实体
func NewButtonSystem(em *ecs.EntityManager, buttonCfg config.ButtonConfig, hintCfg config.HintLabelConfig) *ButtonSystem {
	s := NewButtonSystemWithSource(NewECSClickSource(em), buttonCfg)

	hintColor, err := utils.ParseHexColor(hintCfg.Color)
	if err != nil {
		log.Printf("[ButtonSystem] Warning: invalid hint label color %q: %v (using default)", hintCfg.Color, err)
		hintColor, _ = utils.ParseHexColor(config.DefaultHintColor)
	}

	s.hintLabel = &components.LabelComponent{Color: hintColor}
	s.hintLabelEntity = em.CreateEntity()
	ecs.AddComponent(em, s.hintLabelEntity, &components.PositionComponent{X: hintCfg.X, Y: hintCfg.Y})
	ecs.AddComponent(em, s.hintLabelEntity, s.hintLabel)

	return s
}

// NewButtonSystemWithSource 使用自定义数据源创建按钮系统
// 提示标签只存在于内存中，不对应任何实体
func NewButtonSystemWithSource(source ClickSource, buttonCfg config.ButtonConfig) *ButtonSystem {
	return &ButtonSystem{
		source:           source,
		clickCooldown:    buttonCfg.ClickCooldown,
		disabledTint:     buttonCfg.DisabledTint,
		hintLabel:        &components.LabelComponent{},
		hintsEnabled:     true,
		badColorReported: make(map[ecs.EntityID]bool),
	}
}

// SetHintsEnabled 设置是否显示悬停提示
func (s *ButtonSystem) SetHintsEnabled(enabled bool) {
	s.hintsEnabled = enabled
}

// SetClickSound 设置点击音效（nil 表示不播放）
func (s *ButtonSystem) SetClickSound(sound SoundPlayer) {
	s.clickSound = sound
}

// HintLabelEntity 返回提示标签实体 ID（通过 NewButtonSystemWithSource 创建时为 0）
func (s *ButtonSystem) HintLabelEntity() ecs.EntityID {
	return s.hintLabelEntity
}

// HintText 返回本帧提示标签文字
func (s *ButtonSystem) HintText() string {
	return s.hintLabel.Text
}

// Update 更新所有按钮
func (s *ButtonSystem) Update(deltaTime float64) {
	// 每帧先清空提示，由本帧悬停的按钮重新写入
	s.hintLabel.Text = ""

	for _, entityID := range s.source.Buttons() {
		s.updateButton(entityID, deltaTime)
	}
}

func (s *ButtonSystem) updateButton(entityID ecs.EntityID, deltaTime float64) {
	button, clickable, ok := s.source.Button(entityID)
	if !ok {
		return
	}

	visual, dimmed := s.nextVisual(entityID, button, clickable, deltaTime)
	if visual == "" {
		return
	}

	if anim, ok := s.source.Anim(entityID); ok {
		anim.ID = visual
		return
	}

	if label, ok := s.source.Label(entityID); ok {
		labelColor, err := utils.ParseHexColor(visual)
		if err != nil {
			if !s.badColorReported[entityID] {
				s.badColorReported[entityID] = true
				log.Printf("[ButtonSystem] Warning: entity %d has invalid label color %q: %v", entityID, visual, err)
			}
			return
		}
		if dimmed {
			labelColor = utils.ScaleColor(labelColor, s.disabledTint)
		}
		label.Color = labelColor
	}
}

// nextVisual 计算按钮本帧的外观 ID，dimmed 表示按钮处于禁用变灰状态
func (s *ButtonSystem) nextVisual(
	entityID ecs.EntityID,
	button *components.ButtonComponent,
	clickable *components.ClickableComponent,
	deltaTime float64,
) (visual string, dimmed bool) {
	if button.Autoclick {
		button.AutoclickCooldown -= deltaTime
	}

	// 点击后短暂锁定，防止按住时每帧重复触发
	if button.Cooldown > 0 {
		button.Cooldown -= deltaTime
		return button.AnimClicked, false
	}

	active := button.IsEnabled()
	if anim, ok := s.source.Anim(entityID); ok {
		if active {
			anim.Tint = tintActive
		} else {
			anim.Tint = utils.ScaleColor(tintActive, s.disabledTint)
		}
	}
	if !active {
		return button.AnimDefault, true
	}

	switch clickable.State {
	case components.ClickHover:
		if button.Autoclick && button.AutoclickCooldown <= 0 {
			return s.click(button), false
		}
		if s.hintsEnabled {
			s.hintLabel.Text = button.Hint
		}
		return button.AnimHover, false
	case components.ClickClicked:
		return s.click(button), false
	default:
		return button.AnimDefault, false
	}
}

// click 进入冷却并触发回调，返回按下外观
func (s *ButtonSystem) click(button *components.ButtonComponent) string {
	button.Cooldown = s.clickCooldown
	s.trigger(button)
	return button.AnimClicked
}

// trigger 仅在按钮仍可用时调用回调
func (s *ButtonSystem) trigger(button *components.ButtonComponent) {
	if !button.IsEnabled() {
		return
	}
	if button.OnClick != nil {
		button.OnClick()
	}
	if s.clickSound != nil {
		s.clickSound.Play()
	}
}
