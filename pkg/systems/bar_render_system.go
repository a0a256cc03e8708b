package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/hudkit/pkg/ecs"
	"github.com/decker502/hudkit/pkg/render"
)

// 图标间距随图标总数收紧：每满 barSpacingStep 个图标间距减 1 像素，最多减 barSpacingMaxSteps 次
const (
	barSpacingStep     = 10
	barSpacingMaxSteps = 4
)

// BarRenderSystem 条形指示器渲染系统
//
// 职责：
//   - 绘制标签文字
//   - 在标签右下方依次绘制"满"图标和"空"图标
//   - 按 Layer 排序绘制，排序仅在实体集合变化后进行一次
//
// 动画资源缺失时跳过该实体的图标（标签照常绘制），不报错。
type BarRenderSystem struct {
	source     RenderableBarSource
	animations render.AnimationLibrary

	// 按 Layer 排好序的实体列表，实体增删时标记为脏
	sortedEntities []ecs.EntityID
	sortedDirty    bool
}

// NewBarRenderSystem 创建条形指示器渲染系统
func NewBarRenderSystem(em *ecs.EntityManager, animations render.AnimationLibrary) *BarRenderSystem {
	return NewBarRenderSystemWithSource(NewECSBarSource(em), animations)
}

// NewBarRenderSystemWithSource 使用自定义数据源创建渲染系统
func NewBarRenderSystemWithSource(source RenderableBarSource, animations render.AnimationLibrary) *BarRenderSystem {
	s := &BarRenderSystem{
		source:     source,
		animations: animations,
	}
	source.Track(s)
	return s
}

// Inserted 实体进入条形指示器集合
func (s *BarRenderSystem) Inserted(id ecs.EntityID) {
	s.sortedEntities = append(s.sortedEntities, id)
	s.sortedDirty = true
}

// Removed 实体离开条形指示器集合
func (s *BarRenderSystem) Removed(id ecs.EntityID) {
	for i, existing := range s.sortedEntities {
		if existing == id {
			s.sortedEntities = append(s.sortedEntities[:i], s.sortedEntities[i+1:]...)
			s.sortedDirty = true
			return
		}
	}
}

// Draw 按 Layer 顺序绘制所有条形指示器
func (s *BarRenderSystem) Draw(batch render.Batch) {
	if s.sortedDirty {
		s.sortedDirty = false
		s.sortByLayer()
	}

	for _, id := range s.sortedEntities {
		s.DrawBar(batch, id)
	}
}

// DrawOrder 返回当前绘制顺序（不触发排序）
func (s *BarRenderSystem) DrawOrder() []ecs.EntityID {
	order := make([]ecs.EntityID, len(s.sortedEntities))
	copy(order, s.sortedEntities)
	return order
}

// DrawBar 绘制单个条形指示器
func (s *BarRenderSystem) DrawBar(batch render.Batch, id ecs.EntityID) {
	pos, bar, ok := s.source.Bar(id)
	if !ok {
		return
	}

	batch.DrawText(bar.Text, pos.X, pos.Y, bar.TextColor)
	labelWidth, labelHeight := batch.MeasureText(bar.Text)

	if s.animations == nil {
		return
	}
	filled, ok := s.animations.KeyFrame(bar.AnimID)
	if !ok || filled == nil {
		return
	}
	empty, ok := s.animations.KeyFrame(bar.AnimIDEmpty)
	if !ok || empty == nil {
		return
	}

	frameWidth := filled.Bounds().Dx()
	frameHeight := filled.Bounds().Dy()
	spacing := barIconSpacing(frameWidth, bar.Value+bar.EmptyCount)
	emptyCount := barEmptyIconCount(bar.Value, bar.EmptyCount)

	originX := math.Trunc(pos.X) + labelWidth
	originY := math.Trunc(pos.Y) + labelHeight

	for i := 0; i < bar.Value; i++ {
		batch.DrawRegion(filled,
			originX+float64(i*spacing), originY,
			float64(frameWidth), float64(frameHeight),
			color.White)
	}
	for i := 0; i < emptyCount; i++ {
		batch.DrawRegion(empty,
			originX+float64((i+bar.Value)*spacing), originY,
			float64(frameWidth), float64(frameHeight),
			color.White)
	}
}

// sortByLayer 稳定排序，同一 Layer 保持插入顺序
func (s *BarRenderSystem) sortByLayer() {
	layers := make(map[ecs.EntityID]int, len(s.sortedEntities))
	for _, id := range s.sortedEntities {
		if _, bar, ok := s.source.Bar(id); ok {
			layers[id] = bar.Layer
		}
	}

	sort.SliceStable(s.sortedEntities, func(i, j int) bool {
		return layers[s.sortedEntities[i]] < layers[s.sortedEntities[j]]
	})
}

// barEmptyIconCount 计算"空"图标数量
// 值和空槽都为 0 时仍显示一个空图标，保证条形指示器可见
func barEmptyIconCount(value, emptyCount int) int {
	if value == 0 && emptyCount == 0 {
		return 1
	}
	return emptyCount
}

// barIconSpacing 计算相邻图标的水平间距
func barIconSpacing(frameWidth, total int) int {
	spacing := frameWidth + 1
	for step := 1; step <= barSpacingMaxSteps; step++ {
		if total >= step*barSpacingStep {
			spacing--
		}
	}
	return spacing
}
