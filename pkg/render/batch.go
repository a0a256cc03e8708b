// Package render 提供 2D 绘制批处理与动画帧查询的抽象
//
// 渲染系统只依赖这里的接口，屏幕绘制由 ScreenBatch 基于 Ebitengine 实现，
// 测试中可以替换为记录绘制调用的假实现。
package render

import (
	"image/color"

	"github.com/decker502/hudkit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Batch 一帧内的 2D 绘制目标
type Batch interface {
	// DrawRegion 将 region 绘制到 (x, y)，缩放到 width x height，并以 tint 染色
	DrawRegion(region *ebiten.Image, x, y, width, height float64, tint color.Color)
	// DrawText 以左上角 (x, y) 绘制单行文字
	DrawText(str string, x, y float64, clr color.Color)
	// MeasureText 返回单行文字的宽高
	MeasureText(str string) (width, height float64)
}

// AnimationLibrary 按动画 ID 查询可绘制的关键帧
type AnimationLibrary interface {
	// KeyFrame 返回动画的第一帧，动画不存在时返回 false
	KeyFrame(animID string) (*ebiten.Image, bool)
}

// ScreenBatch 基于 Ebitengine 的 Batch 实现
type ScreenBatch struct {
	screen *ebiten.Image
	font   text.Face
}

// NewScreenBatch 创建绘制到 screen 的批处理
// font 为 nil 时不绘制文字，文字尺寸按 0 计算
func NewScreenBatch(screen *ebiten.Image, font text.Face) *ScreenBatch {
	return &ScreenBatch{
		screen: screen,
		font:   font,
	}
}

// DrawRegion 绘制图像区域
func (b *ScreenBatch) DrawRegion(region *ebiten.Image, x, y, width, height float64, tint color.Color) {
	if region == nil {
		return
	}

	bounds := region.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(bounds.Dx()), height/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	b.screen.DrawImage(region, op)
}

// DrawText 绘制文字
func (b *ScreenBatch) DrawText(str string, x, y float64, clr color.Color) {
	if str == "" || b.font == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	text.Draw(b.screen, str, b.font, op)
}

// MeasureText 测量文字
func (b *ScreenBatch) MeasureText(str string) (width, height float64) {
	return utils.MeasureText(str, b.font)
}
