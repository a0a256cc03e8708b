package components

import "image/color"

// LabelComponent 文字标签组件
// 用作按钮的可视部分时，按钮状态通过修改 Color 表现
type LabelComponent struct {
	Text  string
	Color color.Color
}
