package systems

import (
	"github.com/decker502/hudkit/pkg/components"
	"github.com/decker502/hudkit/pkg/ecs"
	"github.com/decker502/hudkit/pkg/render"
)

// AnimRenderSystem 动画渲染系统
// 绘制所有 Position + Anim 实体（取动画第一帧，按 Tint 染色）
// 实体有 BoundsComponent 时缩放到 Bounds 尺寸，否则按原始帧尺寸绘制
type AnimRenderSystem struct {
	entityManager *ecs.EntityManager
	animations    render.AnimationLibrary
}

// NewAnimRenderSystem 创建动画渲染系统
func NewAnimRenderSystem(em *ecs.EntityManager, animations render.AnimationLibrary) *AnimRenderSystem {
	return &AnimRenderSystem{
		entityManager: em,
		animations:    animations,
	}
}

// Draw 绘制所有动画实体
func (s *AnimRenderSystem) Draw(batch render.Batch) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.AnimComponent](s.entityManager)

	for _, entityID := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		anim, _ := ecs.GetComponent[*components.AnimComponent](s.entityManager, entityID)

		frame, ok := s.animations.KeyFrame(anim.ID)
		if !ok || frame == nil {
			continue
		}

		x, y := pos.X, pos.Y
		width := float64(frame.Bounds().Dx())
		height := float64(frame.Bounds().Dy())
		if bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, entityID); ok {
			x += bounds.MinX
			y += bounds.MinY
			width = bounds.Width()
			height = bounds.Height()
		}

		batch.DrawRegion(frame, x, y, width, height, anim.Tint)
	}
}
