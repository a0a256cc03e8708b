package systems

import (
	"github.com/decker502/hudkit/pkg/components"
	"github.com/decker502/hudkit/pkg/ecs"
	"github.com/decker502/hudkit/pkg/render"
)

// LabelRenderSystem 文字标签渲染系统
// 绘制所有 Position + Label 实体（包括按钮系统的提示标签）
type LabelRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewLabelRenderSystem 创建文字标签渲染系统
func NewLabelRenderSystem(em *ecs.EntityManager) *LabelRenderSystem {
	return &LabelRenderSystem{entityManager: em}
}

// Draw 绘制所有标签，空文字跳过
func (s *LabelRenderSystem) Draw(batch render.Batch) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.LabelComponent](s.entityManager)

	for _, entityID := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, entityID)

		if label.Text == "" {
			continue
		}
		batch.DrawText(label.Text, pos.X, pos.Y, label.Color)
	}
}
