package systems

import (
	"github.com/decker502/hudkit/pkg/components"
	"github.com/decker502/hudkit/pkg/ecs"
	"github.com/decker502/hudkit/pkg/utils"
)

// PointerSource 提供当前帧的指针状态
type PointerSource interface {
	PointerState() utils.PointerState
}

// ebitenPointer 读取 Ebitengine 的鼠标/触摸输入
type ebitenPointer struct{}

func (ebitenPointer) PointerState() utils.PointerState {
	return utils.GetPointerState()
}

// ClickableSystem 指针命中检测系统
// 为每个 Position + Bounds + Clickable 实体计算本帧的 ClickState
//
// 规则：
//   - 指针在范围外 → ClickNone
//   - 指针在范围内且本帧刚按下 → ClickClicked
//   - 指针在范围内 → ClickHover
//   - 禁用的实体始终为 ClickNone
//
// 重叠的实体会同时收到相同的状态（不做遮挡处理）
type ClickableSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerSource
}

// NewClickableSystem 创建指针命中检测系统
// pointer 为 nil 时使用 Ebitengine 的鼠标/触摸输入
func NewClickableSystem(em *ecs.EntityManager, pointer PointerSource) *ClickableSystem {
	if pointer == nil {
		pointer = ebitenPointer{}
	}
	return &ClickableSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// Update 更新所有可点击实体的交互状态
func (s *ClickableSystem) Update(deltaTime float64) {
	pointer := s.pointer.PointerState()

	entities := ecs.GetEntitiesWith3[
		*components.ClickableComponent,
		*components.PositionComponent,
		*components.BoundsComponent,
	](s.entityManager)

	for _, entityID := range entities {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, entityID)

		clickable.State = resolveClickState(clickable, pos, bounds, pointer)
	}
}

// resolveClickState 计算单个实体的交互状态
func resolveClickState(
	clickable *components.ClickableComponent,
	pos *components.PositionComponent,
	bounds *components.BoundsComponent,
	pointer utils.PointerState,
) components.ClickState {
	if !clickable.IsEnabled {
		return components.ClickNone
	}

	relX := float64(pointer.X) - pos.X
	relY := float64(pointer.Y) - pos.Y
	if !bounds.Contains(relX, relY) {
		return components.ClickNone
	}

	if pointer.JustPressed {
		return components.ClickClicked
	}
	return components.ClickHover
}
