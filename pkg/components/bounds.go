package components

// BoundsComponent 实体的矩形范围（相对于 PositionComponent）
type BoundsComponent struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Contains 判断相对坐标 (x, y) 是否落在范围内（含边界）
func (b *BoundsComponent) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Width 返回范围宽度
func (b *BoundsComponent) Width() float64 {
	return b.MaxX - b.MinX
}

// Height 返回范围高度
func (b *BoundsComponent) Height() float64 {
	return b.MaxY - b.MinY
}
