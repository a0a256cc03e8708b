package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 内置动画 ID
// 资源配置未提供对应图片时，HUD 使用这些程序生成的帧
const (
	FrameHeart        = "heart"
	FrameHeartEmpty   = "heart-empty"
	FrameAmmo         = "ammo"
	FrameAmmoEmpty    = "ammo-empty"
	FramePlus         = "button-plus"
	FramePlusHover    = "button-plus-hover"
	FramePlusClicked  = "button-plus-clicked"
	FrameMinus        = "button-minus"
	FrameMinusHover   = "button-minus-hover"
	FrameMinusClicked = "button-minus-clicked"
)

const (
	iconFrameSize   = 12
	buttonFrameSize = 20
)

var (
	heartRed     = color.RGBA{R: 220, G: 40, B: 60, A: 255}
	ammoGold     = color.RGBA{R: 230, G: 180, B: 40, A: 255}
	emptySlot    = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	buttonFace   = color.RGBA{R: 60, G: 90, B: 140, A: 255}
	buttonHover  = color.RGBA{R: 90, G: 130, B: 190, A: 255}
	buttonPress  = color.RGBA{R: 30, G: 50, B: 90, A: 255}
	buttonBorder = color.RGBA{R: 200, G: 210, B: 230, A: 255}
	glyphWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// RegisterDefaultFrames 生成并注册 HUD 演示所需的全部内置帧
func (rm *ResourceManager) RegisterDefaultFrames() {
	rm.RegisterFrame(FrameHeart, newHeartFrame(heartRed))
	rm.RegisterFrame(FrameHeartEmpty, newHeartFrame(emptySlot))
	rm.RegisterFrame(FrameAmmo, newAmmoFrame(ammoGold))
	rm.RegisterFrame(FrameAmmoEmpty, newAmmoFrame(emptySlot))

	rm.RegisterFrame(FramePlus, newButtonFrame(buttonFace, true))
	rm.RegisterFrame(FramePlusHover, newButtonFrame(buttonHover, true))
	rm.RegisterFrame(FramePlusClicked, newButtonFrame(buttonPress, true))
	rm.RegisterFrame(FrameMinus, newButtonFrame(buttonFace, false))
	rm.RegisterFrame(FrameMinusHover, newButtonFrame(buttonHover, false))
	rm.RegisterFrame(FrameMinusClicked, newButtonFrame(buttonPress, false))
}

// newHeartFrame 两个圆 + 逐行收窄的下半部分
func newHeartFrame(clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(iconFrameSize, iconFrameSize)
	vector.DrawFilledCircle(img, 3.5, 4, 3, clr, true)
	vector.DrawFilledCircle(img, 8.5, 4, 3, clr, true)
	for row := 0; row < 6; row++ {
		inset := float32(row)
		vector.DrawFilledRect(img, 0.5+inset, 5+float32(row), 11-2*inset, 1, clr, false)
	}
	return img
}

// newAmmoFrame 弹头 + 弹壳
func newAmmoFrame(clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(iconFrameSize, iconFrameSize)
	vector.DrawFilledCircle(img, 6, 3, 2.5, clr, true)
	vector.DrawFilledRect(img, 3.5, 3, 5, 8, clr, false)
	return img
}

// newButtonFrame 带边框的方形按钮，plus 为 true 时绘制 "+"，否则绘制 "-"
func newButtonFrame(face color.Color, plus bool) *ebiten.Image {
	img := ebiten.NewImage(buttonFrameSize, buttonFrameSize)
	vector.DrawFilledRect(img, 0, 0, buttonFrameSize, buttonFrameSize, face, false)
	vector.StrokeRect(img, 0.5, 0.5, buttonFrameSize-1, buttonFrameSize-1, 1, buttonBorder, false)

	mid := float32(buttonFrameSize) / 2
	vector.StrokeLine(img, 5, mid, buttonFrameSize-5, mid, 2, glyphWhite, false)
	if plus {
		vector.StrokeLine(img, mid, 5, mid, buttonFrameSize-5, 2, glyphWhite, false)
	}
	return img
}
