package scenes

import (
	"github.com/decker502/hudkit/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 场景名称，供 game.SceneManager.Load 使用
const (
	SceneHUD = "hud"
)
