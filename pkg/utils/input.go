// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针状态
// 统一处理鼠标和触摸输入
type PointerState struct {
	// 指针位置
	X, Y int
	// 是否处于按下状态（鼠标左键或触摸）
	Pressed bool
	// 是否刚刚按下（本帧新发生的点击/触摸）
	JustPressed bool
}

// GetPointerState 获取指针的完整状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetPointerState() PointerState {
	state := PointerState{}

	// 首先检查新的触摸事件（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.Pressed = true
		state.JustPressed = true
		return state
	}

	// 检查是否有活动的触摸（用于悬停检测）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.Pressed = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return state
}
