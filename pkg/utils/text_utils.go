package utils

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureText 测量单行文本的宽高（像素）
// 空文本或字体为 nil 时返回 0, 0
func MeasureText(textStr string, font text.Face) (width, height float64) {
	if textStr == "" || font == nil {
		return 0, 0
	}

	// 行距取字体度量的行高，避免不同字符集的高度跳变
	metrics := font.Metrics()
	width, height = text.Measure(textStr, font, metrics.HAscent+metrics.HDescent+metrics.HLineGap)
	return width, height
}
