package config

import "github.com/yohamta/donburi/ecs"

// Render layers. Everything draws on Default; renderers are added in
// draw order within the layer.
const (
	Default ecs.LayerID = iota
)
