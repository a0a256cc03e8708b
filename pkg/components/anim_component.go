package components

import "image/color"

// AnimComponent 动画组件
// ID 指向资源管理器中的动画（取其第一帧绘制），Tint 为绘制时的颜色缩放
type AnimComponent struct {
	ID   string
	Tint color.RGBA
}

// NewAnimComponent 创建白色（不染色）的动画组件
func NewAnimComponent(id string) *AnimComponent {
	return &AnimComponent{
		ID:   id,
		Tint: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
