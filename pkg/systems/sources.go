package systems

import (
	"github.com/decker502/hudkit/pkg/components"
	"github.com/decker502/hudkit/pkg/ecs"
)

// RenderableBarSource 条形指示器实体的遍历与字段访问能力
// BarRenderSystem 只通过该接口读取实体数据，不直接依赖实体存储
type RenderableBarSource interface {
	// Track 注册观察者，实体进入/离开条形指示器集合时收到通知
	Track(observer ecs.EntityObserver)
	// Bar 返回实体的位置与条形数据
	Bar(id ecs.EntityID) (*components.PositionComponent, *components.BarComponent, bool)
}

// ClickSource 按钮实体的遍历与字段访问能力
type ClickSource interface {
	// Buttons 返回本帧需要处理的按钮实体（按处理顺序）
	Buttons() []ecs.EntityID
	// Button 返回按钮数据与指针交互状态
	Button(id ecs.EntityID) (*components.ButtonComponent, *components.ClickableComponent, bool)
	// Anim 返回按钮的动画外观（可选）
	Anim(id ecs.EntityID) (*components.AnimComponent, bool)
	// Label 返回按钮的文字外观（可选）
	Label(id ecs.EntityID) (*components.LabelComponent, bool)
}

// ECSBarSource 基于 EntityManager 的 RenderableBarSource 实现
type ECSBarSource struct {
	entityManager *ecs.EntityManager
}

// NewECSBarSource 创建 ECSBarSource
func NewECSBarSource(em *ecs.EntityManager) *ECSBarSource {
	return &ECSBarSource{entityManager: em}
}

// Track 关注 Position + Bar 组合
func (s *ECSBarSource) Track(observer ecs.EntityObserver) {
	ecs.Observe2[*components.PositionComponent, *components.BarComponent](s.entityManager, observer)
}

// Bar 读取实体的位置与条形数据
func (s *ECSBarSource) Bar(id ecs.EntityID) (*components.PositionComponent, *components.BarComponent, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	bar, ok := ecs.GetComponent[*components.BarComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	return pos, bar, true
}

// ECSClickSource 基于 EntityManager 的 ClickSource 实现
// 按钮实体需要 Button + Clickable + Bounds，且至少拥有 Anim 或 Label 之一
type ECSClickSource struct {
	entityManager *ecs.EntityManager
}

// NewECSClickSource 创建 ECSClickSource
func NewECSClickSource(em *ecs.EntityManager) *ECSClickSource {
	return &ECSClickSource{entityManager: em}
}

// Buttons 返回所有按钮实体（按实体 ID 顺序）
func (s *ECSClickSource) Buttons() []ecs.EntityID {
	candidates := ecs.GetEntitiesWith3[
		*components.ButtonComponent,
		*components.ClickableComponent,
		*components.BoundsComponent,
	](s.entityManager)

	result := candidates[:0]
	for _, id := range candidates {
		if ecs.HasComponent[*components.AnimComponent](s.entityManager, id) ||
			ecs.HasComponent[*components.LabelComponent](s.entityManager, id) {
			result = append(result, id)
		}
	}
	return result
}

// Button 读取按钮与可点击组件
func (s *ECSClickSource) Button(id ecs.EntityID) (*components.ButtonComponent, *components.ClickableComponent, bool) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	return button, clickable, true
}

// Anim 读取动画组件
func (s *ECSClickSource) Anim(id ecs.EntityID) (*components.AnimComponent, bool) {
	return ecs.GetComponent[*components.AnimComponent](s.entityManager, id)
}

// Label 读取文字组件
func (s *ECSClickSource) Label(id ecs.EntityID) (*components.LabelComponent, bool) {
	return ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
}
