package flight

import "github.com/vovakirdan/rockflight/internal/scene"

func init() {
	scene.Register(SceneLoad, func(ctx *scene.Context) (scene.Scene, error) {
		return NewLoadScene(ctx)
	})
	scene.Register(SceneGame, func(ctx *scene.Context) (scene.Scene, error) {
		return NewGameScene(ctx)
	})
}
