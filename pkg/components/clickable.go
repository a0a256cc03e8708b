package components

// ClickState 指针与实体的交互结果，每帧由 ClickableSystem 计算
type ClickState int

const (
	// ClickNone 指针不在实体范围内
	ClickNone ClickState = iota
	// ClickHover 指针悬停在实体上
	ClickHover
	// ClickClicked 指针在实体上按下
	ClickClicked
)

// String 返回状态名称（用于日志）
func (s ClickState) String() string {
	switch s {
	case ClickHover:
		return "hover"
	case ClickClicked:
		return "clicked"
	default:
		return "none"
	}
}

// ClickableComponent 标记实体可以被鼠标点击
// 可点击区域由 BoundsComponent 定义
type ClickableComponent struct {
	State     ClickState // 当前帧的交互状态
	IsEnabled bool       // 是否可以被点击（禁用时状态恒为 ClickNone）
}
