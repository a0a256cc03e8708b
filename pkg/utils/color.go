package utils

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor 解析十六进制颜色字符串
// 支持 "004290"、"#004290"、"#abc" 三种写法，返回不透明颜色
func ParseHexColor(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// ScaleColor 将颜色的 RGB 分量按比例缩放（透明度不变）
// 用于禁用状态的变灰效果
func ScaleColor(c color.Color, factor float64) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return color.RGBA{
		R: uint8(float64(rgba.R) * factor),
		G: uint8(float64(rgba.G) * factor),
		B: uint8(float64(rgba.B) * factor),
		A: rgba.A,
	}
}
