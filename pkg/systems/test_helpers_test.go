package systems

import (
	"image/color"

	"github.com/decker502/hudkit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// drawCall 记录一次绘制调用
type drawCall struct {
	kind   string // "region" 或 "text"
	region *ebiten.Image
	text   string
	x, y   float64
	w, h   float64
	tint   color.Color
}

// recordingBatch 记录绘制调用的 render.Batch 实现
// 文字宽度按 charWidth * 字节数计算，高度固定为 lineHeight
type recordingBatch struct {
	calls      []drawCall
	charWidth  float64
	lineHeight float64
}

func newRecordingBatch() *recordingBatch {
	return &recordingBatch{charWidth: 6, lineHeight: 10}
}

func (b *recordingBatch) DrawRegion(region *ebiten.Image, x, y, width, height float64, tint color.Color) {
	b.calls = append(b.calls, drawCall{kind: "region", region: region, x: x, y: y, w: width, h: height, tint: tint})
}

func (b *recordingBatch) DrawText(str string, x, y float64, clr color.Color) {
	b.calls = append(b.calls, drawCall{kind: "text", text: str, x: x, y: y, tint: clr})
}

func (b *recordingBatch) MeasureText(str string) (float64, float64) {
	if str == "" {
		return 0, 0
	}
	return float64(len(str)) * b.charWidth, b.lineHeight
}

// regions 返回所有图像绘制调用
func (b *recordingBatch) regions() []drawCall {
	var result []drawCall
	for _, c := range b.calls {
		if c.kind == "region" {
			result = append(result, c)
		}
	}
	return result
}

// texts 按顺序返回所有绘制的文字
func (b *recordingBatch) texts() []string {
	var result []string
	for _, c := range b.calls {
		if c.kind == "text" {
			result = append(result, c.text)
		}
	}
	return result
}

// fakeAnimations 以 map 实现的动画库
type fakeAnimations map[string]*ebiten.Image

func (f fakeAnimations) KeyFrame(animID string) (*ebiten.Image, bool) {
	img, ok := f[animID]
	return img, ok
}

// fakePointer 固定状态的指针
type fakePointer struct {
	state utils.PointerState
}

func (p *fakePointer) PointerState() utils.PointerState {
	return p.state
}

// countingSound 统计播放次数
type countingSound struct {
	plays int
}

func (s *countingSound) Play() {
	s.plays++
}
