package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/hudkit/pkg/components"
	"github.com/decker502/hudkit/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	testFrameWidth  = 8
	testFrameHeight = 7
)

// newBarTestWorld 创建带"满/空"两种图标的测试环境
func newBarTestWorld() (*ecs.EntityManager, *BarRenderSystem, *ebiten.Image, *ebiten.Image) {
	em := ecs.NewEntityManager()
	filled := ebiten.NewImage(testFrameWidth, testFrameHeight)
	empty := ebiten.NewImage(testFrameWidth, testFrameHeight)
	animations := fakeAnimations{
		"heart":       filled,
		"heart-empty": empty,
	}
	return em, NewBarRenderSystem(em, animations), filled, empty
}

func addBar(em *ecs.EntityManager, x, y float64, bar *components.BarComponent) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, bar)
	return id
}

func heartBar(text string, value, emptyCount, layer int) *components.BarComponent {
	return &components.BarComponent{
		Value:       value,
		EmptyCount:  emptyCount,
		Text:        text,
		TextColor:   color.White,
		AnimID:      "heart",
		AnimIDEmpty: "heart-empty",
		Layer:       layer,
	}
}

func TestBarEmptyBarShowsOneEmptyIcon(t *testing.T) {
	em, system, filled, empty := newBarTestWorld()
	addBar(em, 0, 0, heartBar("HP", 0, 0, 0))

	batch := newRecordingBatch()
	system.Draw(batch)

	regions := batch.regions()
	if len(regions) != 1 {
		t.Fatalf("期望绘制 1 个图标, got %d", len(regions))
	}
	if regions[0].region != empty {
		t.Error("唯一的图标应为空图标")
	}
	if regions[0].region == filled {
		t.Error("不应绘制满图标")
	}
}

func TestBarFilledThenEmptyContiguous(t *testing.T) {
	em, system, filled, empty := newBarTestWorld()
	addBar(em, 10, 20, heartBar("HP", 7, 3, 0))

	batch := newRecordingBatch()
	system.Draw(batch)

	regions := batch.regions()
	if len(regions) != 10 {
		t.Fatalf("期望 7 满 + 3 空 = 10 个图标, got %d", len(regions))
	}

	// 标签 "HP" 宽 12、高 10；总数 10 触发一次间距收紧：8 + 1 - 1 = 8
	labelWidth, labelHeight := 12.0, 10.0
	spacing := float64(testFrameWidth)
	for i, call := range regions {
		wantImage := filled
		if i >= 7 {
			wantImage = empty
		}
		if call.region != wantImage {
			t.Errorf("图标 %d 类型错误", i)
		}

		wantX := 10 + labelWidth + float64(i)*spacing
		if call.x != wantX {
			t.Errorf("图标 %d x = %.1f, want %.1f", i, call.x, wantX)
		}
		if call.y != 20+labelHeight {
			t.Errorf("图标 %d y = %.1f, want %.1f", i, call.y, 20+labelHeight)
		}
		if call.w != testFrameWidth || call.h != testFrameHeight {
			t.Errorf("图标 %d 尺寸 = %.0fx%.0f, want %dx%d", i, call.w, call.h, testFrameWidth, testFrameHeight)
		}
	}
}

func TestBarLabelDrawnFirst(t *testing.T) {
	em, system, _, _ := newBarTestWorld()
	red := color.RGBA{R: 255, A: 255}
	bar := heartBar("Ammo", 2, 1, 0)
	bar.TextColor = red
	addBar(em, 5, 6, bar)

	batch := newRecordingBatch()
	system.Draw(batch)

	if len(batch.calls) == 0 || batch.calls[0].kind != "text" {
		t.Fatal("第一个绘制调用应为标签文字")
	}
	first := batch.calls[0]
	if first.text != "Ammo" || first.x != 5 || first.y != 6 {
		t.Errorf("标签绘制错误: %+v", first)
	}
	if first.tint != red {
		t.Errorf("标签颜色 = %v, want %v", first.tint, red)
	}
}

func TestBarIconSpacing(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 9},
		{9, 9},
		{10, 8},
		{19, 8},
		{20, 7},
		{30, 6},
		{39, 6},
		{40, 5},
		{100, 5}, // 最多收紧 4 次
	}

	for _, tt := range tests {
		if got := barIconSpacing(8, tt.total); got != tt.want {
			t.Errorf("barIconSpacing(8, %d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestBarEmptyIconCount(t *testing.T) {
	tests := []struct {
		value, emptyCount, want int
	}{
		{0, 0, 1},
		{0, 3, 3},
		{5, 0, 0},
		{5, 2, 2},
	}

	for _, tt := range tests {
		if got := barEmptyIconCount(tt.value, tt.emptyCount); got != tt.want {
			t.Errorf("barEmptyIconCount(%d, %d) = %d, want %d", tt.value, tt.emptyCount, got, tt.want)
		}
	}
}

func TestBarMissingAnimationSkipsIcons(t *testing.T) {
	tests := []struct {
		name        string
		animID      string
		animIDEmpty string
	}{
		{"满图标缺失", "missing", "heart-empty"},
		{"空图标缺失", "heart", "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, system, _, _ := newBarTestWorld()
			bar := heartBar("HP", 3, 2, 0)
			bar.AnimID = tt.animID
			bar.AnimIDEmpty = tt.animIDEmpty
			addBar(em, 0, 0, bar)

			batch := newRecordingBatch()
			system.Draw(batch)

			if n := len(batch.regions()); n != 0 {
				t.Errorf("动画缺失时不应绘制图标, got %d", n)
			}
			if texts := batch.texts(); len(texts) != 1 || texts[0] != "HP" {
				t.Errorf("标签仍应绘制, got %v", texts)
			}
		})
	}
}

func TestBarLayerSortAfterInsertion(t *testing.T) {
	em, system, _, _ := newBarTestWorld()
	addBar(em, 0, 0, heartBar("three", 1, 0, 3))
	addBar(em, 0, 0, heartBar("one", 1, 0, 1))
	addBar(em, 0, 0, heartBar("two", 1, 0, 2))

	batch := newRecordingBatch()
	system.Draw(batch)

	assertTexts(t, batch.texts(), []string{"one", "two", "three"})
}

func TestBarNoResortWithoutStructuralChange(t *testing.T) {
	em, system, _, _ := newBarTestWorld()
	barA := heartBar("a", 1, 0, 1)
	barB := heartBar("b", 1, 0, 2)
	addBar(em, 0, 0, barA)
	addBar(em, 0, 0, barB)

	system.Draw(newRecordingBatch())

	// 只修改 Layer，不增删实体：绘制顺序保持不变
	barA.Layer = 10
	batch := newRecordingBatch()
	system.Draw(batch)
	assertTexts(t, batch.texts(), []string{"a", "b"})
	if system.sortedDirty {
		t.Error("未发生增删时不应标记为脏")
	}

	// 新增实体后重新排序
	addBar(em, 0, 0, heartBar("c", 1, 0, 5))
	if !system.sortedDirty {
		t.Error("新增实体后应标记为脏")
	}
	batch = newRecordingBatch()
	system.Draw(batch)
	assertTexts(t, batch.texts(), []string{"b", "c", "a"})
}

func TestBarStableSortForEqualLayers(t *testing.T) {
	em, system, _, _ := newBarTestWorld()
	addBar(em, 0, 0, heartBar("first", 1, 0, 1))
	addBar(em, 0, 0, heartBar("second", 1, 0, 1))
	addBar(em, 0, 0, heartBar("zero", 1, 0, 0))

	batch := newRecordingBatch()
	system.Draw(batch)

	assertTexts(t, batch.texts(), []string{"zero", "first", "second"})
}

func TestBarRemovedEntityNotDrawn(t *testing.T) {
	em, system, _, _ := newBarTestWorld()
	keep := addBar(em, 0, 0, heartBar("keep", 1, 0, 0))
	drop := addBar(em, 0, 0, heartBar("drop", 1, 0, 1))

	em.DestroyEntity(drop)
	em.RemoveMarkedEntities()

	batch := newRecordingBatch()
	system.Draw(batch)

	assertTexts(t, batch.texts(), []string{"keep"})
	order := system.DrawOrder()
	if len(order) != 1 || order[0] != keep {
		t.Errorf("DrawOrder = %v, want [%d]", order, keep)
	}

	// 移除 Bar 组件同样离开集合
	ecs.RemoveComponent[*components.BarComponent](em, keep)
	if len(system.DrawOrder()) != 0 {
		t.Errorf("移除 BarComponent 后不应再跟踪实体")
	}
}

func TestBarTracksEntitiesCreatedBeforeSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	addBar(em, 0, 0, heartBar("late", 1, 0, 2))
	addBar(em, 0, 0, heartBar("early", 1, 0, 1))

	system := NewBarRenderSystem(em, fakeAnimations{
		"heart":       ebiten.NewImage(4, 4),
		"heart-empty": ebiten.NewImage(4, 4),
	})

	batch := newRecordingBatch()
	system.Draw(batch)
	assertTexts(t, batch.texts(), []string{"early", "late"})
}

func assertTexts(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("绘制顺序 = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("绘制顺序 = %v, want %v", got, want)
		}
	}
}
