package components

// ButtonComponent 按钮组件（ECS 架构）
//
// 按钮的可视部分由同一实体上的 AnimComponent 或 LabelComponent 提供：
//   - AnimComponent: 状态切换时替换动画 ID
//   - LabelComponent: 状态切换时替换文字颜色（此时 AnimXxx 字段为十六进制颜色，如 "004290"）
//
// 设计原则：
//   - 纯数据组件，交互逻辑全部在 ButtonSystem 中
//   - 冷却计时单位为秒，由 ButtonSystem 按帧扣减
type ButtonComponent struct {
	// ===== 回调 =====
	// Enabled 判断按钮当前是否可用，nil 表示始终可用
	Enabled func() bool
	// OnClick 点击回调，仅在触发瞬间按钮仍可用时调用
	OnClick func()

	// ===== 冷却 =====
	// Cooldown 点击后的剩余冷却时间（秒），大于 0 时按钮保持按下外观且不响应
	Cooldown float64
	// Autoclick 悬停即自动点击
	Autoclick bool
	// AutoclickCooldown 自动点击生效前的剩余等待时间（秒）
	AutoclickCooldown float64

	// ===== 外观 =====
	// AnimDefault 默认外观
	AnimDefault string
	// AnimHover 悬停外观
	AnimHover string
	// AnimClicked 按下外观
	AnimClicked string

	// Hint 悬停时显示在提示标签上的文字
	Hint string
}

// IsEnabled 返回按钮当前是否可用
func (b *ButtonComponent) IsEnabled() bool {
	return b.Enabled == nil || b.Enabled()
}
