package scenes

import (
	"image/color"
	"testing"

	"github.com/decker502/hudkit/pkg/config"
	"github.com/decker502/hudkit/pkg/game"
	"github.com/decker502/hudkit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const testDeltaTime = 1.0 / 60.0

// scriptedPointer 测试中手动设置的指针
type scriptedPointer struct {
	state utils.PointerState
}

func (p *scriptedPointer) PointerState() utils.PointerState {
	return p.state
}

func (p *scriptedPointer) hover(x, y int) {
	p.state = utils.PointerState{X: x, Y: y}
}

func (p *scriptedPointer) press(x, y int) {
	p.state = utils.PointerState{X: x, Y: y, Pressed: true, JustPressed: true}
}

// textBatch 只记录文字绘制的 render.Batch
type textBatch struct {
	texts   []string
	regions int
}

func (b *textBatch) DrawRegion(region *ebiten.Image, x, y, width, height float64, tint color.Color) {
	b.regions++
}

func (b *textBatch) DrawText(str string, x, y float64, clr color.Color) {
	b.texts = append(b.texts, str)
}

func (b *textBatch) MeasureText(str string) (float64, float64) {
	return float64(len(str)) * 6, 10
}

func newTestScene(t *testing.T) (*HUDScene, *scriptedPointer) {
	t.Helper()

	rm := game.NewResourceManager(nil)
	rm.RegisterDefaultFrames()

	pointer := &scriptedPointer{}
	scene, err := NewHUDScene(rm, game.NewSettingsManager(nil), config.DefaultHUDConfig(), pointer)
	if err != nil {
		t.Fatalf("NewHUDScene() error: %v", err)
	}
	return scene, pointer
}

// 默认窗口 640x360：health 条的按钮在 y=30，"+" 按钮 x=606
const (
	healthPlusX = 615
	healthPlusY = 40
	refillX     = 15
	refillY     = 337
	hintsX      = 95
	hintsY      = 337
)

func runFrames(scene *HUDScene, frames int) {
	for i := 0; i < frames; i++ {
		scene.Update(testDeltaTime)
	}
}

func TestHUDSceneCreatesBars(t *testing.T) {
	scene, _ := newTestScene(t)

	health, ok := scene.Bar("health")
	if !ok {
		t.Fatal("missing health bar")
	}
	if health.Value != 7 || health.EmptyCount != 3 {
		t.Errorf("health = %d/%d, want 7/3", health.Value, health.EmptyCount)
	}

	if _, ok := scene.Bar("unknown"); ok {
		t.Error("unknown bar should not exist")
	}
}

func TestHUDSceneHoverShowsHint(t *testing.T) {
	scene, pointer := newTestScene(t)

	pointer.hover(healthPlusX, healthPlusY)
	scene.Update(testDeltaTime)
	if got := scene.HintText(); got != "Increase HP" {
		t.Errorf("HintText = %q, want %q", got, "Increase HP")
	}

	pointer.hover(0, 0)
	scene.Update(testDeltaTime)
	if got := scene.HintText(); got != "" {
		t.Errorf("离开按钮后提示应清空, got %q", got)
	}
}

func TestHUDSceneClickChangesBar(t *testing.T) {
	scene, pointer := newTestScene(t)
	health, _ := scene.Bar("health")

	pointer.press(healthPlusX, healthPlusY)
	scene.Update(testDeltaTime)
	if health.Value != 8 || health.EmptyCount != 2 {
		t.Fatalf("health = %d/%d, want 8/2", health.Value, health.EmptyCount)
	}

	// 冷却期间再次按下不生效
	scene.Update(testDeltaTime)
	if health.Value != 8 {
		t.Errorf("冷却期间不应再次触发, health = %d", health.Value)
	}

	// 冷却结束后可以继续点击，直到满值后按钮禁用
	for i := 0; i < 10; i++ {
		runFrames(scene, 20)
	}
	if health.Value != 10 || health.EmptyCount != 0 {
		t.Errorf("health = %d/%d, want 10/0", health.Value, health.EmptyCount)
	}
}

func TestHUDSceneRefillAutoclick(t *testing.T) {
	scene, pointer := newTestScene(t)
	health, _ := scene.Bar("health")

	pointer.hover(refillX, refillY)
	scene.Update(testDeltaTime)
	if got := scene.HintText(); got != "Hover to refill all bars" {
		t.Errorf("HintText = %q", got)
	}
	if health.Value != 7 {
		t.Errorf("等待期间不应自动点击, health = %d", health.Value)
	}

	runFrames(scene, 120)
	if health.Value != 10 {
		t.Errorf("悬停足够久后应补满, health = %d", health.Value)
	}
}

func TestHUDSceneToggleHints(t *testing.T) {
	scene, pointer := newTestScene(t)

	pointer.press(hintsX, hintsY)
	scene.Update(testDeltaTime)
	if scene.settings.GetSettings().ShowHints {
		t.Fatal("点击后应关闭提示")
	}
	if scene.hintsToggle.Text != hintsToggleText(false) {
		t.Errorf("toggle text = %q", scene.hintsToggle.Text)
	}

	pointer.hover(healthPlusX, healthPlusY)
	runFrames(scene, 2)
	if got := scene.HintText(); got != "" {
		t.Errorf("关闭提示后不应显示提示, got %q", got)
	}
}

func TestHUDSceneDrawTo(t *testing.T) {
	scene, _ := newTestScene(t)

	batch := &textBatch{}
	scene.DrawTo(batch)

	want := map[string]bool{"HP ": false, "Ammo ": false, "Refill": false}
	for _, s := range batch.texts {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for s, found := range want {
		if !found {
			t.Errorf("未绘制文字 %q (got %v)", s, batch.texts)
		}
	}

	// 7+3 个生命图标 + 12 个弹药图标 + 每条 2 个按钮
	if wantRegions := 10 + 12 + 4; batch.regions != wantRegions {
		t.Errorf("绘制了 %d 个图像, want %d", batch.regions, wantRegions)
	}
}
