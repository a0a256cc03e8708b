package components

// PositionComponent 存储实体在屏幕空间中的位置（左上角，Y 轴向下）
type PositionComponent struct {
	X float64
	Y float64
}
