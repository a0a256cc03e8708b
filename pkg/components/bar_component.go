package components

import "image/color"

// BarComponent 条形指示器组件（生命值、弹药等图标计数条）
//
// 渲染效果：先绘制文字标签，随后在标签右下方依次绘制
// Value 个"满"图标和 EmptyCount 个"空"图标。
// 数值由玩法代码直接修改，渲染系统每帧读取。
type BarComponent struct {
	// Value 当前值（"满"图标数量）
	Value int
	// EmptyCount 剩余空槽数量（"空"图标数量）
	EmptyCount int

	// Text 标签文字
	Text string
	// TextColor 标签文字颜色
	TextColor color.Color

	// AnimID "满"图标的动画 ID
	AnimID string
	// AnimIDEmpty "空"图标的动画 ID
	AnimIDEmpty string

	// Layer 绘制顺序，数值小的先绘制
	Layer int
}
